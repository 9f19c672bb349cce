package config

import (
	"os"
	"path/filepath"

	"github.com/coordination-oru/demolauncher/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyStrictExit = "strict_exit"
	KeyLogLevel   = "log_level"
	KeyBanner     = "banner"
)

// Dir returns the path to the launcher config directory (~/.demolauncher/).
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.demolauncher/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetDefault(KeyStrictExit, false)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyBanner, true)

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// StrictExit reports whether a failed dispatch should produce a non-zero exit status.
func StrictExit() bool {
	return viper.GetBool(KeyStrictExit)
}

// LogLevel returns the configured diagnostic log level.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// Banner reports whether the startup banner is printed.
func Banner() bool {
	return viper.GetBool(KeyBanner)
}
