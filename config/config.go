package config

import (
	"github.com/spf13/viper"

	"github.com/zckv/action-update-release/internal/logger"
)

func Init() {
	viper.SetConfigName("config") // config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		logger.Log.Debug("No config file found; using defaults.")
	}

	viper.SetDefault("app.theme", "dark")
	viper.SetDefault("github.api_base", "https://api.github.com")
	viper.SetDefault("http.timeout", "60s")
}
