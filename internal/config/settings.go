package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Settings are the CLI preferences read from firstdebit.yaml and FIRSTDEBIT_* variables
type Settings struct {
	PolicyFile string `mapstructure:"policy_file"`
	Format     string `mapstructure:"format"`
	LogLevel   string `mapstructure:"log_level"`
	Insurer    string `mapstructure:"insurer"`
}

// NewViper returns a viper instance wired to the settings file and environment
func NewViper(configDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("firstdebit")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("firstdebit")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("policy_file", "")
	v.SetDefault("format", "console")
	v.SetDefault("log_level", "warn")
	v.SetDefault("insurer", "neoliane")
	return v
}

// LoadSettings reads the settings file if there is one and fills defaults
func LoadSettings(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	if s.Format == "" {
		s.Format = "console"
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}
	return &s, nil
}
