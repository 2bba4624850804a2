// Package queue 定义消息主题常量，供发布/订阅使用.
package queue

// 主题命名规范：av.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：asset(资产)、admin(管理员注册表)
// 动作：uploaded/updated/deleted、status.changed、granted/revoked

const (
	// 资产生命周期.
	TopicAssetUploaded      = "av.asset.uploaded"       // 新资产入库（含初始状态 pending/approved）
	TopicAssetStatusChanged = "av.asset.status.changed" // 审核状态变更（approve/reject/重置 pending）
	TopicAssetUpdated       = "av.asset.updated"        // 元数据或文件被管理员修改
	TopicAssetDeleted       = "av.asset.deleted"        // 资产被删除（文件与记录均已移除）

	// 管理员注册表.
	TopicAdminGranted = "av.admin.granted" // 用户被授予管理权限
	TopicAdminRevoked = "av.admin.revoked" // 用户管理权限被移除
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 资产相关主题集合.
	AssetTopics = []string{
		TopicAssetUploaded, TopicAssetStatusChanged,
		TopicAssetUpdated, TopicAssetDeleted,
	}

	// 管理员相关主题集合.
	AdminTopics = []string{
		TopicAdminGranted, TopicAdminRevoked,
	}
)
