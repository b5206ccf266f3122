package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/pkg/buildinfo"
	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "stacklayout"

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
		Use:   appName,
		Short: "Stacklayout computes layered graph layouts and edits pane trees",
		Long: `Stacklayout lays out directed graphs in layers (Sugiyama style) and renders
them as JSON, DOT or SVG. It also applies drag-and-drop insertions to pane
layout trees, and serves both over an HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (TOML)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.panesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Runner Factory
// =============================================================================

// loadConfig reads --config when given. A file cache without a directory
// uses the XDG cache directory.
func (c *CLI) loadConfig() (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if c.configPath != "" {
		loaded, err := pipeline.LoadConfig(c.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cfg.Cache.Backend == pipeline.CacheFile && cfg.Cache.Dir == "" {
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			cfg.Cache.Backend = pipeline.CacheNone
		} else {
			cfg.Cache.Dir = dir
		}
	}
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg pipeline.Config, noCache bool) (*pipeline.Runner, error) {
	cc := cfg.Cache
	if noCache {
		cc.Backend = pipeline.CacheNone
	}
	store, err := cc.OpenCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, cc.Keyer(), c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/stacklayout/).
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

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
