package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/fronteditor-cli/internal/store"
	"github.com/KaramelBytes/fronteditor-cli/internal/utils"
)

// Global configuration structure.
type Global struct {
	// Local store
	StoreBackend string `mapstructure:"store_backend" yaml:"store_backend"`
	StorePath    string `mapstructure:"store_path" yaml:"store_path"`
	SQLitePath   string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// Redis backend
	RedisAddr       string `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisPassword   string `mapstructure:"redis_password" yaml:"redis_password"`
	RedisDB         int    `mapstructure:"redis_db" yaml:"redis_db"`
	RedisTimeoutSec int    `mapstructure:"redis_timeout_sec" yaml:"redis_timeout_sec"`

	// Where archives and packs are written by default
	DownloadsDir string `mapstructure:"downloads_dir" yaml:"downloads_dir"`
	// Persisted location of the active project
	StateFile string `mapstructure:"state_file" yaml:"state_file"`
	Locale    string `mapstructure:"locale" yaml:"locale"`
}

// Dir returns ~/.fronteditor.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".fronteditor"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.fronteditor/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("FRONTEDITOR")
	v.AutomaticEnv()

	v.SetDefault("store_backend", store.BackendBolt)
	v.SetDefault("store_path", filepath.Join(dir, "store.db"))
	v.SetDefault("sqlite_path", filepath.Join(dir, "store.sqlite"))
	v.SetDefault("redis_addr", "127.0.0.1:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_timeout_sec", 3)
	v.SetDefault("downloads_dir", ".")
	v.SetDefault("state_file", filepath.Join(dir, "location"))
	v.SetDefault("locale", "en")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	for _, p := range []*string{&c.StorePath, &c.SQLitePath, &c.StateFile, &c.DownloadsDir} {
		if *p == "" {
			continue
		}
		expanded, err := utils.ExpandHome(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}
	return &c, nil
}

// StoreOptions maps the configuration onto store.Open options.
func (c *Global) StoreOptions() store.Options {
	return store.Options{
		Backend:       c.StoreBackend,
		BoltPath:      c.StorePath,
		SQLitePath:    c.SQLitePath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisTimeout:  time.Duration(c.RedisTimeoutSec) * time.Second,
	}
}
