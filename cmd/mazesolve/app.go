package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/config"
	"github.com/katalvlaran/mazegraph/grid"
	"github.com/katalvlaran/mazegraph/imageio"
	"github.com/katalvlaran/mazegraph/store"
)

// app carries the state shared by every subcommand for one invocation.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	noCache bool
}

// setup resolves configuration in order: defaults, --config file, .env,
// MAZE_* variables, then command-line flags.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if err := config.LoadEnv(); err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.noCache, _ = flags.GetBool("no-cache")
	a.cfg = &cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Logging).With("run_id", uuid.NewString())

	return nil
}

func newLogger(w io.Writer, lc config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// loadGrid decodes the image (or .txt/.csv integer matrix) at path and
// validates it as a maze.
func (a *app) loadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m grid.Matrix
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".csv":
		m, err = imageio.DecodeText(f, grid.Options{PathValue: a.cfg.Input.PathValue})
	default:
		m, err = imageio.Decode(f, imageio.DecodeOptions{
			Threshold: a.cfg.Input.Threshold,
			Invert:    a.cfg.Input.Invert,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = grid.Validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("maze decoded", "file", path, "width", len(m[0]), "height", len(m))

	return grid.New(m)
}

// openCache returns nil when caching is disabled or the cache cannot be
// opened; a broken cache never fails a solve.
func (a *app) openCache() *store.Store {
	if a.noCache || !a.cfg.Cache.Enabled {
		return nil
	}
	s, err := store.Open(a.cfg.Cache.Dir, store.Options{})
	if err != nil {
		a.log.Warn("cache unavailable", "dir", a.cfg.Cache.Dir, "err", err)
		return nil
	}

	return s
}
