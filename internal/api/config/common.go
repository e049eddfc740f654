package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Prompt PromptConfig `mapstructure:"prompt"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	ClientOrigin string `mapstructure:"client_origin"` // 允许携带凭证跨域的前端源
}

// MongoConfig 数据库配置
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// PromptConfig 每日一问配置
type PromptConfig struct {
	PoolPath  string `mapstructure:"pool_path"`  // 题库文件路径（yaml 字符串数组），缺失时使用内置题库
	RemoteURL string `mapstructure:"remote_url"` // 可选的远端生成服务地址，为空则禁用
	RemoteKey string `mapstructure:"remote_key"`
}
