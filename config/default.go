package config

import _ "embed"

// DefaultConfigYAML 嵌入的默认配置，保证无外部文件时也能直接启动
//
//go:embed default.yaml
var DefaultConfigYAML []byte
