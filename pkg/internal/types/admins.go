package types

import "time"

// AdminInfo 管理员注册表条目.
type AdminInfo struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"` // 授权时间
}

// AddAdminRequest 授予管理权限请求.
type AddAdminRequest struct {
	UserID string `form:"user_id" json:"user_id" rule:"required,max=64"`
}

// ListAdminsResponse 注册表全量视图.
type ListAdminsResponse struct {
	Admins []AdminInfo `json:"admins"`
	Total  int         `json:"total"`
}

// MeResponse 当前会话视图，含管理员标记.
type MeResponse struct {
	Session Session `json:"session"`
	IsAdmin bool    `json:"is_admin"`
}
