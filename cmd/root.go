package cmd

import (
	"context"
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/fronteditor-cli/internal/config"
	"github.com/KaramelBytes/fronteditor-cli/internal/editor"
	"github.com/KaramelBytes/fronteditor-cli/internal/messages"
	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/KaramelBytes/fronteditor-cli/internal/projects"
	"github.com/KaramelBytes/fronteditor-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Overrides for config values
	flagStore  string
	flagLocale string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "fronteditor",
	Short: "FrontEditor CLI: keep html/css/js/markdown projects in a local store",
	Long: `FrontEditor keeps small four-document web projects (html, css, javascript, markdown)
in a local key/value store and moves them in and out as zip archives or .fepack files.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Runs before every execution so tests that swap HOME see fresh config.
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.fronteditor/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "store backend: bolt, sqlite, redis or memory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "message locale, e.g. en, pt-BR, es (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = nil
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	if flagStore != "" {
		cfg.StoreBackend = flagStore
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, "DEBUG: "+format+"\n", args...)
	}
}

// session bundles the handles one command works with. The store is closed
// by Close.
type session struct {
	store  store.Store
	editor *editor.Editor
	msgs   messages.Messages
}

// openSession opens the configured store and location. With loadDoc the
// editor starts from the project at the current location; commands that
// replace the live document skip it so a corrupt current record cannot
// block them.
func openSession(ctx context.Context, loadDoc bool) (*session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	s, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, err
	}
	h, err := navigation.OpenFileHistory(cfg.StateFile)
	if err != nil {
		s.Close()
		return nil, err
	}
	b := navigation.NewBinder(h)
	idx := projects.NewIndex(s)
	msgs := messages.Get(cfg.Locale)
	n := editor.NotifierFunc(func(msg string) {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	})
	debugf("store=%s location=%s locale=%s", cfg.StoreBackend, b.Pathname(), cfg.Locale)

	var e *editor.Editor
	if loadDoc {
		e, err = editor.Open(ctx, b, idx, n, msgs)
		if err != nil {
			s.Close()
			return nil, err
		}
	} else {
		e = editor.New(b, idx, n, msgs)
	}
	return &session{store: s, editor: e, msgs: msgs}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: closing store: %v\n", err)
	}
}
