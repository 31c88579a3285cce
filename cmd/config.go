package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/fronteditor-cli/internal/config"
	"github.com/KaramelBytes/fronteditor-cli/internal/store"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set FrontEditor configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("store_backend: %s\n", cfg.StoreBackend)
		switch cfg.StoreBackend {
		case store.BackendSQLite:
			fmt.Printf("sqlite_path: %s\n", cfg.SQLitePath)
		case store.BackendRedis:
			fmt.Printf("redis_addr: %s\n", cfg.RedisAddr)
			fmt.Printf("redis_password: %s\n", mask(cfg.RedisPassword))
			fmt.Printf("redis_db: %d\n", cfg.RedisDB)
			fmt.Printf("redis_timeout_sec: %d\n", cfg.RedisTimeoutSec)
		default:
			fmt.Printf("store_path: %s\n", cfg.StorePath)
		}
		fmt.Printf("downloads_dir: %s\n", cfg.DownloadsDir)
		fmt.Printf("state_file: %s\n", cfg.StateFile)
		fmt.Printf("locale: %s\n", cfg.Locale)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// Reload without the --store/--locale overrides so they are not persisted.
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		switch key {
		case "store_backend":
			switch val {
			case store.BackendBolt, store.BackendSQLite, store.BackendRedis, store.BackendMemory:
				c.StoreBackend = val
			default:
				return fmt.Errorf("invalid store_backend: %s (use bolt, sqlite, redis or memory)", val)
			}
		case "store_path":
			c.StorePath = val
		case "sqlite_path":
			c.SQLitePath = val
		case "redis_addr":
			c.RedisAddr = val
		case "redis_password":
			c.RedisPassword = val
		case "redis_db":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for redis_db: %v", val)
			}
			c.RedisDB = i
		case "redis_timeout_sec":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for redis_timeout_sec: %v", val)
			}
			c.RedisTimeoutSec = i
		case "downloads_dir":
			c.DownloadsDir = val
		case "state_file":
			c.StateFile = val
		case "locale":
			c.Locale = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 6 {
		return "******"
	}
	return s[:3] + "****" + s[len(s)-3:]
}
