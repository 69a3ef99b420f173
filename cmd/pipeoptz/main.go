package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/JonMunkholm/pipeoptz/internal/application"
	"github.com/JonMunkholm/pipeoptz/internal/config"
	"github.com/JonMunkholm/pipeoptz/internal/core"
	"github.com/JonMunkholm/pipeoptz/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/pipeoptz/internal/handler"
	"github.com/JonMunkholm/pipeoptz/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Load .env file if it exists
	envLoaded := godotenv.Load() == nil

	root := newRootCmd(envLoaded)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, application.ErrCancelled) {
			return 130
		}
		fmt.Fprintln(stderr, "error:", err)
		if core.IsUserFacing(err) {
			fmt.Fprintln(stderr, core.FormatUserError(err))
		}
		return 1
	}
	return 0
}

func newRootCmd(envLoaded bool) *cobra.Command {
	var (
		cfg     *config.Config
		dataDir string
	)

	root := &cobra.Command{
		Use:           "pipeoptz",
		Short:         "Browse factory game buildings and recipes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.Data.Dir = dataDir
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			slog.Debug("configuration loaded", "config", cfg.String(), "dotenv", envLoaded)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding buildings.csv and recipes.csv (default: ../data)")
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return application.Run(mainMenu(cmd, cfg), func(title string, options []string) (string, error) {
			return application.Select(title, options)
		})
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "recipe",
			Short: "Choose a recipe and show what it needs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := loadGameData(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				return showRecipe(cmd.OutOrStdout(), data)
			},
		},
		&cobra.Command{
			Use:   "building",
			Short: "Choose a building and show its stats",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := loadGameData(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				return showBuilding(cmd.OutOrStdout(), data)
			},
		},
		&cobra.Command{
			Use:   "tables",
			Short: "List the known data tables and their columns",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				listTables(cmd.OutOrStdout())
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Load every data table and report problems",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return checkTables(cmd.Context(), cmd.OutOrStdout(), cfg)
			},
		},
	)

	return root
}

// mainMenu is shown when no subcommand is given.
func mainMenu(cmd *cobra.Command, cfg *config.Config) *application.Menu {
	ctx, out := cmd.Context(), cmd.OutOrStdout()

	withData := func(show func(io.Writer, handler.GameData) error) func() error {
		return func() error {
			data, err := loadGameData(ctx, cfg)
			if err != nil {
				return err
			}
			return show(out, data)
		}
	}

	return &application.Menu{
		Title: "Main Menu",
		Items: []application.MenuItem{
			{Label: "Make something", Action: withData(showRecipe)},
			{Label: "Browse buildings", Action: withData(showBuilding)},
			{Label: "Data files ->", Submenu: &application.Menu{
				Title: "Data files",
				Items: []application.MenuItem{
					{Label: "List tables", Action: func() error {
						listTables(out)
						return nil
					}},
					{Label: "Check files", Action: func() error {
						return checkTables(ctx, out, cfg)
					}},
					{Label: application.BackLabel},
				},
			}},
			{Label: "Quit"},
		},
	}
}

func loadGameData(ctx context.Context, cfg *config.Config) (handler.GameData, error) {
	paths, err := handler.ResolvePaths(cfg.Data)
	if err != nil {
		return handler.GameData{}, err
	}
	return handler.LoadGameFiles(ctx, paths, handler.Options(cfg.Data))
}

func showRecipe(w io.Writer, data handler.GameData) error {
	name, err := application.Select("What would you like to make?", core.SortedKeys(data.Recipes))
	if err != nil {
		return err
	}

	recipe := data.Recipes[name]
	fmt.Fprintln(w, recipe.Detail())

	if recipe.ProducedIn.Valid {
		if b, ok := data.Buildings[recipe.ProducedIn.String]; ok {
			fmt.Fprintln(w, "  building:", b.Detail())
		}
	}
	return nil
}

func showBuilding(w io.Writer, data handler.GameData) error {
	name, err := application.Select("Which building?", core.SortedKeys(data.Buildings))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, data.Buildings[name].Detail())
	return nil
}

func listTables(w io.Writer) {
	for _, def := range core.All() {
		fmt.Fprintf(w, "%s [%s] (%s)\n", def.Info.Label, def.Info.Key, def.Info.File)
		for _, f := range def.Fields {
			names := f.Name
			if len(f.Aliases) > 0 {
				names += " | " + strings.Join(f.Aliases, " | ")
			}
			fmt.Fprintf(w, "  %-40s %s\n", names, f.Type)
		}
	}
}

func checkTables(ctx context.Context, w io.Writer, cfg *config.Config) error {
	dir, err := cfg.Data.DataDir()
	if err != nil {
		return err
	}

	files := map[string]string{
		tables.BuildingsKey: cfg.Data.BuildingsFile,
		tables.RecipesKey:   cfg.Data.RecipesFile,
	}

	var failed []error
	for _, res := range handler.CheckAll(ctx, dir, files, handler.Options(cfg.Data)) {
		if res.Err != nil {
			fmt.Fprintf(w, "FAIL %-10s %s\n", res.Table, core.FormatUserError(res.Err))
			failed = append(failed, res.Err)
			continue
		}
		fmt.Fprintf(w, "ok   %-10s %d records from %s\n", res.Table, res.Records, res.Path)
	}
	return errors.Join(failed...)
}
