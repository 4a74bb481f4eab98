// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
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
	StatusLabel string `yaml:"status_label"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "fvmctl",
			DisplayName: "FVM Control",
			Description: "Flutter SDK version switching and project tooling on top of fvm",
			HomeDir:     ".fvmctl",
			EnvPrefix:   "FVMCTL",
			StatusLabel: "FVM",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "fvmctl").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".fvmctl").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FVMCTL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// StatusLabel returns the fixed prefix of the status line (e.g., "FVM").
func StatusLabel() string { load(); return defaults.StatusLabel }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("WORKSPACE") → "FVMCTL_WORKSPACE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
