// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the application settings from defaults, a YAML
// file, PENDATAAN_AKUN_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "pendataan-akun"
	configName = "pendataan-akun"
	envPrefix  = "pendataan_akun"
)

// Config is the full application configuration.
type Config struct {
	Storage  StorageConfig `mapstructure:"storage" yaml:"storage"`
	Export   ExportConfig  `mapstructure:"export" yaml:"export"`
	Language string        `mapstructure:"language" yaml:"language"`
}

// StorageConfig selects the persistence port. Type is one of json,
// sqlite, postgres or mysql; Dsn is a file path for json and a driver
// DSN otherwise.
type StorageConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// ExportConfig controls where CSV exports are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Storage:  StorageConfig{Type: "json", Dsn: "./accounts.json"},
		Export:   ExportConfig{Dir: "."},
		Language: "en",
	}
}

// Defaults returns DefaultConfig keyed by dotted config path, in the form
// LoadConfig expects.
func Defaults() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"storage.type": d.Storage.Type,
		"storage.dsn":  d.Storage.Dsn,
		"export.dir":   d.Export.Dir,
		"language":     d.Language,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "PendataanAkun")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appName)
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadConfig builds a T from defaults, the config file, the environment and
// the flags of cmd. An explicit configFile must exist; the standard
// locations are optional.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flags are named after their config keys (--storage.type, --language).
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Exists reports whether a config file is present at the user or system
// location.
func Exists(system bool) bool {
	path, err := GetConfigPath(system)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// WriteConfigFile stores c as YAML at the user or system location,
// creating the directory when needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: a database DSN may carry credentials.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
