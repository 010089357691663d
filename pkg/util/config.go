package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads the scenario config file (config.yaml) from configPath.
func ReadConfig(configPath string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath(configPath)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
