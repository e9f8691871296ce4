package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const Version = "v1.0.0"

// Defaults for the orders API. The chain is fixed for the token check.
const (
	DefaultAPIBaseURL = "https://api.dexscreener.com/orders/v1"
	DefaultChain      = "solana"
	DefaultBrand      = "avo"
	DefaultUpdateRepo = "avolabs/avoterm"
)

type Config struct {
	APIBaseURL     string        `mapstructure:"api_base_url"`
	Chain          string        `mapstructure:"chain"`
	Brand          string        `mapstructure:"brand"`
	TypingDelay    time.Duration `mapstructure:"typing_delay"`
	FallbackDelay  time.Duration `mapstructure:"fallback_delay"`
	StatusInterval time.Duration `mapstructure:"status_interval"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout"` // 0 keeps the client default
	LogFile        string        `mapstructure:"log_file"`
	LogLevel       string        `mapstructure:"log_level"`
	UpdateRepo     string        `mapstructure:"update_repo"`
}

// configFile is set by the --config flag; empty means ~/.avoterm.yaml.
var configFile string

func SetConfigFile(path string) {
	configFile = path
}

func setDefaults() {
	viper.SetDefault("api_base_url", DefaultAPIBaseURL)
	viper.SetDefault("chain", DefaultChain)
	viper.SetDefault("brand", DefaultBrand)
	viper.SetDefault("typing_delay", 50*time.Millisecond)
	viper.SetDefault("fallback_delay", time.Second)
	viper.SetDefault("status_interval", 3*time.Second)
	viper.SetDefault("http_timeout", time.Duration(0))
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("update_repo", DefaultUpdateRepo)
}

// Read loads the config file and environment into viper without decoding
// them, so a file holding a bad value can still be inspected and repaired.
func Read() error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".avoterm")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("AVOTERM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// Defaults are enough to run.
		case configFile != "" && errors.Is(err, os.ErrNotExist):
		default:
			return err
		}
	}
	return nil
}

func LoadConfig() (*Config, error) {
	if err := Read(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func SaveConfig(key string, value interface{}) error {
	viper.Set(key, value)
	return Write()
}

func Write() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return viper.WriteConfigAs(path)
}

// Path returns the file Write targets.
func Path() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".avoterm.yaml"), nil
}

func Set(key string, value interface{}) {
	viper.Set(key, value)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// Keys lists every recognised setting, in display order.
func Keys() []string {
	return []string{
		"api_base_url",
		"chain",
		"brand",
		"typing_delay",
		"fallback_delay",
		"status_interval",
		"http_timeout",
		"log_file",
		"log_level",
		"update_repo",
	}
}

// IsKey reports whether key is a recognised setting.
func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
