// Package handler resolves the game data files and loads them into tables.
package handler

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/JonMunkholm/pipeoptz/internal/config"
	"github.com/JonMunkholm/pipeoptz/internal/core"
	"github.com/JonMunkholm/pipeoptz/internal/core/tables"
	"golang.org/x/sync/errgroup"
)

// GameData holds the fully loaded tables. Neither map is modified after
// LoadGameFiles returns.
type GameData struct {
	Buildings map[string]tables.Building
	Recipes   map[string]tables.Recipe
}

// Paths are the resolved locations of the data files.
type Paths struct {
	Buildings string
	Recipes   string
}

// ResolvePaths returns the data file locations for cfg.
func ResolvePaths(cfg config.DataConfig) (Paths, error) {
	dir, err := cfg.DataDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolving data directory: %w", err)
	}
	return Paths{
		Buildings: filepath.Join(dir, cfg.BuildingsFile),
		Recipes:   filepath.Join(dir, cfg.RecipesFile),
	}, nil
}

// Options converts the data settings into table load options.
func Options(cfg config.DataConfig) core.Options {
	return core.Options{
		Delimiter:   cfg.DelimiterRune(),
		LenientKeys: !cfg.StrictKeys,
	}
}

// LoadGameFiles loads buildings and recipes. The two tables share nothing,
// so they load concurrently; the first failure is returned and no partial
// data is.
func LoadGameFiles(ctx context.Context, paths Paths, opts core.Options) (GameData, error) {
	var data GameData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b, err := tables.LoadBuildings(gctx, paths.Buildings, opts)
		if err != nil {
			return err
		}
		data.Buildings = b
		return nil
	})

	g.Go(func() error {
		r, err := tables.LoadRecipes(gctx, paths.Recipes, opts)
		if err != nil {
			return err
		}
		data.Recipes = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return GameData{}, err
	}
	return data, nil
}

// CheckResult is the outcome of loading one registered table.
type CheckResult struct {
	Table   string
	Path    string
	Records int
	Err     error
}

// CheckAll loads every registered table from dir and reports each outcome.
// Unlike LoadGameFiles it does not stop at the first failure.
func CheckAll(ctx context.Context, dir string, files map[string]string, opts core.Options) []CheckResult {
	defs := core.All()
	results := make([]CheckResult, len(defs))

	var wg sync.WaitGroup
	for i, def := range defs {
		file := def.Info.File
		if f, ok := files[def.Info.Key]; ok && f != "" {
			file = f
		}
		path := filepath.Join(dir, file)
		results[i] = CheckResult{Table: def.Info.Key, Path: path}

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i].Records, results[i].Err = def.Check(ctx, path, opts)
		}()
	}
	wg.Wait()

	return results
}
