package types

import "time"

// MaxUploadBytes 上传文件大小上限（10 MiB）.
const MaxUploadBytes int64 = 10 << 20

// 资产审核状态固定词表.
const (
	StatusPending  = "pending"  // 待审核
	StatusApproved = "approved" // 已通过，公开可见
	StatusRejected = "rejected" // 已驳回
)

// 资产分类固定词表.
const (
	CategoryLogo   = "logo"
	CategoryMoveus = "moveus"
	CategoryFon    = "fon"
	CategoryText   = "text"
	CategoryArt    = "art"
)

// Categories 按展示顺序列出所有分类.
var Categories = []string{
	CategoryLogo, CategoryMoveus, CategoryFon, CategoryText, CategoryArt,
}

// ValidStatus 判断状态是否在词表内.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}

	return false
}

// ValidCategory 判断分类是否在词表内.
func ValidCategory(c string) bool {
	switch c {
	case CategoryLogo, CategoryMoveus, CategoryFon, CategoryText, CategoryArt:
		return true
	}

	return false
}

// SubmitAssetRequest 上传资产请求（multipart 表单字段部分，文件另取）.
type SubmitAssetRequest struct {
	Title    string `form:"title"    json:"title"    rule:"required,max=255"`                       // 标题
	Category string `form:"category" json:"category" rule:"required,oneof=logo moveus fon text art"` // 分类
}

// BrowseAssetsRequest 公共画廊查询参数.
type BrowseAssetsRequest struct {
	Category string `form:"category" json:"category,omitempty"` // 可选：按分类过滤
	Official string `form:"official" json:"official,omitempty"` // 可选："true"/"false" 过滤官方资产
	Search   string `form:"search"   json:"search,omitempty"`   // 可选：标题或上传者模糊匹配
	Limit    int    `form:"limit"    json:"limit,omitempty"`    // 可选：返回条数上限
	Offset   int    `form:"offset"   json:"offset,omitempty"`   // 可选：偏移量
}

// UpdateStatusRequest 审核状态变更请求.
type UpdateStatusRequest struct {
	Status string `form:"status" json:"status" rule:"required,oneof=pending approved rejected"`
}

// UpdateAssetRequest 管理员编辑资产元数据请求，文件替换走 multipart 的 file 字段.
type UpdateAssetRequest struct {
	Title    string `form:"title"    json:"title,omitempty"    rule:"omitempty,max=255"`
	Category string `form:"category" json:"category,omitempty" rule:"omitempty,oneof=logo moveus fon text art"`
	Official *bool  `form:"official" json:"official,omitempty"`
}

// AssetInfo 对外暴露的资产视图.
type AssetInfo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	FilePath   string    `json:"file_path"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name,omitempty"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Status     string    `json:"status"`
	Official   bool      `json:"official"`
	CreatedAt  time.Time `json:"created_at"`
}

// BrowseAssetsResponse 画廊查询响应.
type BrowseAssetsResponse struct {
	Assets []AssetInfo `json:"assets"`
	Total  int         `json:"total"`
}

// UserAssetsResponse 用户主页：某个用户的作品列表。
// 名称与头像取自其最近一条投稿的冗余字段（无独立用户表）.
type UserAssetsResponse struct {
	UserID     string      `json:"user_id"`
	UserName   string      `json:"user_name,omitempty"`
	UserAvatar string      `json:"user_avatar,omitempty"`
	Assets     []AssetInfo `json:"assets"`
	Total      int         `json:"total"`
}

// SubmitAssetResponse 上传结果.
type SubmitAssetResponse struct {
	Asset AssetInfo `json:"asset"`
	// Queued 为 true 表示进入待审核队列，false 表示管理员直通已发布.
	Queued bool `json:"queued"`
}
