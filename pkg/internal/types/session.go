// Package types 定义 HTTP 层请求/响应结构体与领域常量.
package types

// Session 代表由认证代理传递的已登录用户身份.
// 通常由网关注入请求头，后端只做解析不做校验.
type Session struct {
	UserID    string `json:"user_id"`              // 唯一用户标识
	UserName  string `json:"user_name,omitempty"`  // 展示名
	AvatarURL string `json:"avatar_url,omitempty"` // 头像地址
}

// Valid 判断会话是否携带有效身份.
func (s Session) Valid() bool {
	return s.UserID != ""
}
