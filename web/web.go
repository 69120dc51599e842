package web

import "embed"

// StaticFS 嵌入的看板静态文件
//
//go:embed index.html
var StaticFS embed.FS
