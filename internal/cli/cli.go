// Package cli implements the tetracard command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kanau/tetracard/pkg/buildinfo"
	"github.com/kanau/tetracard/pkg/cache"
	"github.com/kanau/tetracard/pkg/fonts"
	"github.com/kanau/tetracard/pkg/render/card"
	"github.com/kanau/tetracard/pkg/tetraio"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tetracard"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "tetracard",
		Short:        "Tetracard renders TETR.IO statistics as image cards",
		Long:         `Tetracard fetches player profiles, ranked-league summaries, leaderboards and server statistics from the public TETR.IO API and renders them as shareable image cards.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.registerHooks()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/tetracard/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "bypass the API response cache")

	root.AddCommand(c.userCommand())
	root.AddCommand(c.leagueCommand())
	root.AddCommand(c.leaderboardCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.backgroundCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Collaborator Factories
// =============================================================================

// newClient creates the stats API client configured from cfg.
func (c *CLI) newClient(cfg *Config) *tetraio.Client {
	store := c.newCache()
	return tetraio.New(
		tetraio.WithBaseURL(cfg.API.BaseURL),
		tetraio.WithCache(store, time.Duration(cfg.API.CacheTTLSeconds)*time.Second),
		tetraio.WithUserAgent(appName+"/"+buildinfo.Version),
	)
}

func (c *CLI) newCache() cache.Cache {
	if c.noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return store
}

// newRenderer creates the card renderer with fonts from cfg.
func (c *CLI) newRenderer(cfg *Config) *card.Renderer {
	return card.New(fonts.NewSource(cfg.Render.FontPath, cfg.Render.FontBoldPath))
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/tetracard/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// defaultConfigPath returns the config file location using XDG standard.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
