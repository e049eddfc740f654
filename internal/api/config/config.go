package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量优先于文件，文件缺失时使用默认值
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 4000)
	viper.SetDefault("server.client_origin", "http://localhost:3000")
	viper.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017/wellspring")
	viper.SetDefault("mongo.database", "wellspring")
	viper.SetDefault("prompt.pool_path", "prompts.yaml")
	viper.SetDefault("prompt.remote_url", "")
	viper.SetDefault("prompt.remote_key", "")

	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("server.client_origin", "CLIENT_ORIGIN")
	_ = viper.BindEnv("mongo.uri", "MONGODB_URI")
	_ = viper.BindEnv("mongo.database", "MONGODB_DATABASE")
	_ = viper.BindEnv("prompt.pool_path", "PROMPTS_PATH")
	_ = viper.BindEnv("prompt.remote_url", "PROMPT_REMOTE_URL")
	_ = viper.BindEnv("prompt.remote_key", "PROMPT_REMOTE_KEY")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
