// Package config resolves tada settings from defaults, an optional .tada
// config file, TADA_* environment variables and command-line flags, in that
// order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Viper keys. Flags are bound to the same keys by the CLI.
const (
	KeyBackend  = "storage.backend"
	KeyDataDir  = "storage.dir"
	KeySlot     = "storage.key"
	KeyLogFile  = "log.file"
	KeyLogLevel = "log.level"
	KeyVerbose  = "log.verbose"
	KeyTheme    = "ui.theme"
	KeyNoColor  = "ui.no_color"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Storage selects where the todo collection lives.
type Storage struct {
	Backend string
	Dir     string
	Key     string
}

type Log struct {
	File    string
	Level   string
	Verbose bool
}

type UI struct {
	Theme   string
	NoColor bool
}

type Config struct {
	Storage Storage
	Log     Log
	UI      UI

	// File is the config file that was read, empty when none was found.
	File string
}

// New returns a viper instance with tada's defaults and env bindings.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBackend, BackendFile)
	v.SetDefault(KeyDataDir, "~/.tada")
	v.SetDefault(KeySlot, "todos")
	v.SetDefault(KeyLogFile, "~/.tada/tada.log")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix("TADA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Short aliases documented in the help text.
	_ = v.BindEnv(KeyBackend, "TADA_BACKEND")
	_ = v.BindEnv(KeyDataDir, "TADA_DATA_DIR")
	_ = v.BindEnv(KeySlot, "TADA_KEY")
	_ = v.BindEnv(KeyLogFile, "TADA_LOG_FILE")
	_ = v.BindEnv(KeyLogLevel, "TADA_LOG_LEVEL")
	_ = v.BindEnv(KeyTheme, "TADA_THEME")
	return v
}

// Load reads the optional config file into v and returns the resolved
// settings. A missing .tada file is fine; an explicit file that cannot be
// read, or any malformed file, is an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".tada") // .yaml, .toml, .json are all accepted
		if override := os.Getenv("TADA_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Expand("~/.tada"); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Storage: Storage{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
			Dir:     v.GetString(KeyDataDir),
			Key:     strings.TrimSpace(v.GetString(KeySlot)),
		},
		Log: Log{
			File:    v.GetString(KeyLogFile),
			Level:   v.GetString(KeyLogLevel),
			Verbose: v.GetBool(KeyVerbose),
		},
		UI: UI{
			Theme:   v.GetString(KeyTheme),
			NoColor: v.GetBool(KeyNoColor),
		},
		File: v.ConfigFileUsed(),
	}

	var err error
	if cfg.Storage.Dir, err = homedir.Expand(cfg.Storage.Dir); err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyDataDir, err)
	}
	if cfg.Log.File, err = homedir.Expand(cfg.Log.File); err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyLogFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the storage settings.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendDiskv, BackendSQLite:
	default:
		return fmt.Errorf("%w: %q (want %s, %s or %s)",
			ErrUnknownBackend, c.Storage.Backend, BackendFile, BackendDiskv, BackendSQLite)
	}
	if c.Storage.Dir == "" {
		return fmt.Errorf("%s is empty", KeyDataDir)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("%s is empty", KeySlot)
	}
	if strings.ContainsAny(c.Storage.Key, `/\`) {
		return fmt.Errorf("%s must not contain path separators: %q", KeySlot, c.Storage.Key)
	}
	return nil
}
