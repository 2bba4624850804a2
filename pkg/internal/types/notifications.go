package types

// NotificationsResponse 用户最近投稿及其审核进度.
type NotificationsResponse struct {
	// Recent 当前用户最近的投稿（按时间倒序，最多 10 条）.
	Recent []AssetInfo `json:"recent"`
	// PendingCount 当前用户仍在待审核状态的投稿数.
	PendingCount int `json:"pending_count"`
}
