package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

// New loads the optional config.yaml from the working directory. A missing
// file is fine, the providers fall back to viper defaults; a malformed file
// is not.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{}
	return config, nil
}
