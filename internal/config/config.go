package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/multitimer/internal/util"
	"github.com/spf13/viper"
)

// Config is the runtime configuration, merged from defaults, an optional
// YAML file and MULTITIMER_* environment variables.
type Config struct {
	DataDir      string        `mapstructure:"data_dir"`
	DBFile       string        `mapstructure:"db_file"`
	ExportDir    string        `mapstructure:"export_dir"`
	Theme        string        `mapstructure:"theme"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	ResumeOnLoad bool          `mapstructure:"resume_on_load"`
	LogLevel     string        `mapstructure:"log_level"`
}

// DBPath is the SQLite file holding timer state.
func (c Config) DBPath() string {
	if filepath.IsAbs(c.DBFile) {
		return c.DBFile
	}
	return filepath.Join(c.DataDir, c.DBFile)
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		DataDir:      util.DataDir(AppName),
		DBFile:       DBFileName,
		ExportDir:    util.ExportDir(AppName),
		Theme:        ThemeLight,
		TickInterval: TickInterval,
		LogLevel:     "warn",
	}
}

// Load reads configuration. An empty path searches the working directory and
// the user config dir for config.yaml; a missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("db_file", def.DBFile)
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("tick_interval", def.TickInterval)
	v.SetDefault("resume_on_load", def.ResumeOnLoad)
	v.SetDefault("log_level", def.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(util.ConfigDir(AppName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	def := Default()
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = def.DataDir
	}
	if strings.TrimSpace(c.DBFile) == "" {
		c.DBFile = def.DBFile
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = def.ExportDir
	}
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme != ThemeLight && c.Theme != ThemeDark {
		c.Theme = def.Theme
	}
	return c
}
