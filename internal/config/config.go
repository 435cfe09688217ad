package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Listen         string        `mapstructure:"listen"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// RedisConfig holds the hosted mirror and change feed connection.
type RedisConfig struct {
	Addr           string        `mapstructure:"addr"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	DB             int           `mapstructure:"db"`
	Prefix         string        `mapstructure:"prefix"`
	Channel        string        `mapstructure:"channel"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// FeedConfig toggles publishing writes to the realtime feed.
type FeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ShellConfig holds shell prompt integration configuration.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl"`
	TodayIcon   string `mapstructure:"today_icon"`
	NoTodayIcon string `mapstructure:"no_today_icon"`
	StreakIcon  string `mapstructure:"streak_icon"`
	ShowMood    bool   `mapstructure:"show_mood"`
	ShowBackend bool   `mapstructure:"show_backend"`
}

// ThemeConfig holds theme configuration.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Muted         string `mapstructure:"muted"`
	Accent        string `mapstructure:"accent"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Storage    string      `mapstructure:"storage"`
	DataDir    string      `mapstructure:"data_dir"`
	StorageKey string      `mapstructure:"storage_key"`
	Editor     string      `mapstructure:"editor"`
	MaxWidth   int         `mapstructure:"max_width"`
	Log        LogConfig   `mapstructure:"log"`
	HTTP       HTTPConfig  `mapstructure:"http"`
	Redis      RedisConfig `mapstructure:"redis"`
	Feed       FeedConfig  `mapstructure:"feed"`
	Shell      ShellConfig `mapstructure:"shell"`
	Theme      ThemeConfig `mapstructure:"theme"`
}

// DefaultDataDir returns the default data directory (~/.moodmemo/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".moodmemo")
	}
	return filepath.Join(home, ".moodmemo")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "file")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("storage_key", "mood-diary-entries")
	v.SetDefault("editor", "")
	v.SetDefault("max_width", 100)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)
	v.SetDefault("http.listen", ":8080")
	v.SetDefault("http.request_timeout", "5s")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "moodmemo")
	v.SetDefault("redis.channel", "moodmemo:entries")
	v.SetDefault("redis.connect_timeout", "10s")
	v.SetDefault("feed.enabled", false)
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.today_icon", "✓")
	v.SetDefault("shell.no_today_icon", "✗")
	v.SetDefault("shell.streak_icon", "🔥")
	v.SetDefault("shell.show_mood", true)
	v.SetDefault("shell.show_backend", false)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "moodmemo"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MOODMEMO_STORAGE, MOODMEMO_LOG_LEVEL, etc.
	v.SetEnvPrefix("MOODMEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
