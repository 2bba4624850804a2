package service

import "errors"

// 业务错误，由 handle 层映射为 HTTP 状态码.
var (
	// ErrUnauthorized 未登录，或管理操作的执行者不在管理员注册表内.
	// 注册表查询失败同样返回该错误：无法确认权限时一律拒绝.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAssetNotFound 资产不存在.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrFileTooLarge 上传文件超过大小上限.
	ErrFileTooLarge = errors.New("file exceeds upload size limit")

	// ErrPendingSubmissionExists 普通用户已有待审核投稿，须等待审核完成.
	ErrPendingSubmissionExists = errors.New("a pending submission already exists")

	// ErrInvalidCategory 分类不在固定词表内.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidStatus 状态不在固定词表内.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrAlreadyAdmin 目标用户已在管理员注册表内.
	ErrAlreadyAdmin = errors.New("user is already an admin")

	// ErrAdminNotFound 目标用户不在管理员注册表内.
	ErrAdminNotFound = errors.New("user is not an admin")

	// ErrCannotRemoveSelf 管理员不能移除自己的权限.
	ErrCannotRemoveSelf = errors.New("cannot remove your own admin access")
)
