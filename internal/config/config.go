package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Load reads optional app settings from soupheatmap.cfg.json in configDir
// and sets defaults for everything else. A missing config file is fine,
// the app just runs on defaults; only a malformed file is an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("batch.size", 10)
	viper.SetDefault("batch.delayMillis", 10)

	viper.SetConfigName("soupheatmap.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}
