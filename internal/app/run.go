package app

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/ctxlog"
	"github.com/specialistvlad/pwchain/internal/recipe"
)

// Run executes the main application logic: it prepares the pipeline once and
// writes Count passwords to the output, one per line.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithRunID(a.context(ctx), uuid.NewString())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.config.ImportWords != "" {
		if err := a.importWords(ctx); err != nil {
			return err
		}
	}

	rc, err := a.loadRecipe(ctx)
	if err != nil {
		return err
	}

	if err := a.registry.ValidateRecipe(ctx, rc); err != nil {
		return err
	}

	var opts []algorithm.Option
	if a.config.Seed != nil {
		opts = append(opts, algorithm.WithRandSource(algorithm.SeededSource(*a.config.Seed)))
		logger.Debug("Using seeded random source.")
	}

	average := a.config.Length.AverageLength()
	alg, err := a.registry.Assemble(ctx, rc, average, opts...)
	if err != nil {
		return fmt.Errorf("failed to assemble pipeline: %w", err)
	}

	logger.Info("Generating passwords.", "count", a.config.Count, "length", a.config.Length, "strategies", alg.Len())
	for i := range a.config.Count {
		res := alg.Run(average)
		if _, err := fmt.Fprintln(a.outW, res.Value); err != nil {
			return fmt.Errorf("failed to write password: %w", err)
		}
		logger.Debug("Password generated.", "index", i, "target_length", res.TargetLength)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) loadRecipe(ctx context.Context) (*recipe.Recipe, error) {
	if a.config.RecipePath == "" {
		ctxlog.FromContext(ctx).Debug("No recipe path given, using the built-in recipe.")
		return recipe.Default(ctx)
	}
	rc, err := a.loader.Load(ctx, a.config.RecipePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return rc, nil
}

func (a *App) importWords(ctx context.Context) error {
	list, path, err := a.config.WordImport()
	if err != nil {
		return err
	}
	if a.bolt == nil {
		return fmt.Errorf("cannot import word list %q: no word database configured", list)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	n, err := a.bolt.Import(ctx, list, f)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Word list imported.", "list", list, "words", n, "file", path)
	return nil
}
