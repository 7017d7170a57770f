package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/specialistvlad/pwchain/internal/ctxlog"
	"github.com/specialistvlad/pwchain/internal/recipe"
	"github.com/specialistvlad/pwchain/internal/registry"
	"github.com/specialistvlad/pwchain/internal/wordstore"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	loader   *recipe.Loader
	bolt     *wordstore.BoltStore
}

// StrategyInfo describes a registered strategy for listings.
type StrategyInfo struct {
	Name        string
	Description string
	Arguments   []string // optional arguments end with "?"
}

// NewApp is the constructor for the main application. Passwords go to outW,
// logs go to errW. Without modules the core set is registered.
func NewApp(outW, errW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: config is required")
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	var (
		store wordstore.Store = wordstore.Default()
		bolt  *wordstore.BoltStore
	)
	if cfg.WordsDB != "" {
		var err error
		bolt, err = wordstore.OpenBolt(cfg.WordsDB)
		if err != nil {
			return nil, err
		}
		// Lists in the database shadow the built-in ones.
		store = wordstore.Chain(bolt, store)
		logger.Debug("Word database opened.", "path", cfg.WordsDB)
	}

	reg := registry.New(&registry.Deps{Words: store})
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		loader:   recipe.NewLoader(),
		bolt:     bolt,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Strategies describes every registered strategy, sorted by name.
func (a *App) Strategies() []StrategyInfo {
	names := a.registry.Names()
	infos := make([]StrategyInfo, 0, len(names))
	for _, name := range names {
		strategy, _ := a.registry.Lookup(name)
		info := StrategyInfo{Name: name, Description: strategy.Description}

		fields, err := recipe.Fields(reflect.TypeOf(strategy.NewInput()))
		if err != nil {
			a.logger.Warn("Strategy input is not a struct.", "strategy", name, "error", err)
		}
		for _, f := range fields {
			arg := f.Name
			if f.Optional {
				arg += "?"
			}
			info.Arguments = append(info.Arguments, arg)
		}
		infos = append(infos, info)
	}
	return infos
}

// WordLists returns the names of all word lists the strategies can use.
func (a *App) WordLists(ctx context.Context) ([]string, error) {
	return a.registry.Deps().Words.Lists(ctx)
}

// Close releases the word database, if one was opened.
func (a *App) Close() error {
	if a.bolt == nil {
		return nil
	}
	if err := a.bolt.Close(); err != nil {
		return fmt.Errorf("failed to close word database: %w", err)
	}
	a.bolt = nil
	return nil
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
