// Package web 嵌入构建产物之外的单页前端
package web

import _ "embed"

//go:embed static/index.html
var IndexHTML []byte
