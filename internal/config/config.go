package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the application, loaded from a
// config file or environment variables.
type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	IPEchoURL     string        `mapstructure:"IP_ECHO_URL"`
	GeoIPURL      string        `mapstructure:"GEOIP_URL"`
	OverpassURL   string        `mapstructure:"OVERPASS_URL"`
	HTTPTimeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// LoadConfig reads configuration from app.env in the given path, with
// environment variables taking precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
