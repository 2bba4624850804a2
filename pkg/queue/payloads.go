package queue

// AssetRef 标识一条资产记录及其对象存储位置.
type AssetRef struct {
	ID        string `json:"id"`
	ObjectKey string `json:"object_key,omitempty"`
	Title     string `json:"title,omitempty"`
	Category  string `json:"category,omitempty"`
}

// AssetUploadedPayload 新资产入库.
type AssetUploadedPayload struct {
	Asset      AssetRef `json:"asset"`
	UploaderID string   `json:"uploader_id"`
	Status     string   `json:"status"`   // 初始状态：管理员直通 approved，普通用户 pending
	Official   bool     `json:"official"` // 入库时的官方标记
	Size       int64    `json:"size,omitempty"`
}

// AssetStatusChangedPayload 审核状态变更.
type AssetStatusChangedPayload struct {
	Asset      AssetRef `json:"asset"`
	OldStatus  string   `json:"old_status,omitempty"`
	NewStatus  string   `json:"new_status"`
	ActorID    string   `json:"actor_id"` // 执行审核的管理员
	UploaderID string   `json:"uploader_id,omitempty"`
}

// AssetUpdatedPayload 元数据或文件被修改.
type AssetUpdatedPayload struct {
	Asset        AssetRef `json:"asset"`
	ActorID      string   `json:"actor_id"`
	FileReplaced bool     `json:"file_replaced,omitempty"`
	OldObjectKey string   `json:"old_object_key,omitempty"`
}

// AssetDeletedPayload 资产被删除.
type AssetDeletedPayload struct {
	Asset   AssetRef `json:"asset"`
	ActorID string   `json:"actor_id"`
}

// AdminGrantedPayload 用户被授予管理权限.
type AdminGrantedPayload struct {
	UserID  string `json:"user_id"`
	ActorID string `json:"actor_id"`
}

// AdminRevokedPayload 用户管理权限被移除.
type AdminRevokedPayload struct {
	UserID  string `json:"user_id"`
	ActorID string `json:"actor_id"`
}
