// Package branding provides compile-time identity values for the launcher.
//
// branding.yaml is embedded into the binary; hard defaults apply when a
// field is missing from it.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	Namespace   string `yaml:"namespace"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "demolauncher",
			DisplayName: "coordination_oru demo launcher",
			Description: "Lists and runs the coordination_oru demos",
			HomeDir:     ".demolauncher",
			EnvPrefix:   "DEMOLAUNCHER",
			Namespace:   "coordination_oru.tests",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "demolauncher").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".demolauncher").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "DEMOLAUNCHER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Namespace returns the qualifying prefix every launchable demo is registered under.
func Namespace() string { load(); return defaults.Namespace }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "DEMOLAUNCHER_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
