package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	Port            string
}

// Env holds process-level settings that are read straight from the environment.
var Env *EnvConfig

func init() {
	Env = LoadEnv()
}

// LoadEnv reads the environment again, e.g. after a .env file has been loaded.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "weather-dashboard"),
		ContextPath:     getStringOrDefault(v, "CONTEXT_PATH", "/weather-dashboard"),
		Port:            getStringOrDefault(v, "PORT", "8080"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
