// Package main 启动应用程序
package main

import "github.com/yeisme/assetvault/pkg/cmd"

//	@title			AssetVault API
//	@version		1.0
//	@description	AssetVault 是一个社区资产画廊服务：登录用户上传图片投稿，管理员审核发布，访客自由浏览已发布内容。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
