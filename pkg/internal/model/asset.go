// Package model 定义画廊的数据库模型.
package model

import (
	"time"
)

// Asset 资产模型：一条上传记录对应对象存储中的一个文件.
// 上传者的名称和头像来自登录会话并冗余存储在行上，身份提供方侧的
// 后续变更不会回写（无独立用户表）。
type Asset struct {
	// ULID，按创建时间有序，同时用作对象键前缀
	ID       string `gorm:"primaryKey;size:26" json:"id"`
	Title    string `gorm:"size:255;index"     json:"title"`
	Category string `gorm:"size:32;index"      json:"category"`
	// 对象存储中的键（<ulid>.<ext>）
	FilePath   string `gorm:"size:512"       json:"file_path"`
	UserID     string `gorm:"size:64;index"  json:"user_id"`
	UserName   string `gorm:"size:255;index" json:"user_name"`
	UserAvatar string `gorm:"size:512"       json:"user_avatar"`
	// pending / approved / rejected
	Status   string `gorm:"size:16;index" json:"status"`
	Official bool   `gorm:"index"         json:"official"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Admin 管理员注册表：存在行即具备管理权限.
type Admin struct {
	UserID    string    `gorm:"primaryKey;size:64" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
