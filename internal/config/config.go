package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings of punch.
type Config struct {
	// HoursDir is the directory holding one hours file per month.
	HoursDir string `mapstructure:"hours_dir"`
	// Editor opens an hours file for --edit.
	Editor string `mapstructure:"editor"`
	// Opener opens the hours directory for --brf.
	Opener string `mapstructure:"opener"`
	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`
}

const (
	// DefaultHoursDir is relative to the working directory.
	DefaultHoursDir = "./hours"
	// DefaultEditor is used when $EDITOR is unset.
	DefaultEditor = "vim"
	// DefaultLogLevel keeps the output quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

// DefaultOpener returns the platform's command for opening a directory.
func DefaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	}
	return "xdg-open"
}

// configDir returns ~/.punch.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".punch"), nil
}

// Load reads the configuration. Sources, highest first: environment
// variables (PUNCH_HOURS_DIR, EDITOR, PUNCH_OPENER, PUNCH_LOG_LEVEL), a .env
// file in the working directory, ~/.punch/config.yaml, built-in defaults.
// Both files are optional.
func Load() (Config, error) {
	// .env never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}

	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	return load(viper.New(), dir)
}

func load(v *viper.Viper, dir string) (Config, error) {
	v.SetDefault("hours_dir", DefaultHoursDir)
	v.SetDefault("editor", DefaultEditor)
	v.SetDefault("opener", DefaultOpener())
	v.SetDefault("log_level", DefaultLogLevel)

	for key, env := range map[string]string{
		"hours_dir": "PUNCH_HOURS_DIR",
		"editor":    "EDITOR",
		"opener":    "PUNCH_OPENER",
		"log_level": "PUNCH_LOG_LEVEL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return Config{}, fmt.Errorf("parsing config file in %s: %w", dir, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
