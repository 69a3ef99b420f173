// Package tables defines the game data record types and registers their
// schemas with the core registry.
// Import this package to ensure all tables are registered.
package tables

import "github.com/JonMunkholm/pipeoptz/internal/core"

const (
	BuildingsKey = "buildings"
	RecipesKey   = "recipes"
)

func init() {
	core.RegisterSchema(core.TableInfo{
		Key:   BuildingsKey,
		Label: "Buildings",
		File:  "buildings.csv",
	}, BuildingSchema)

	core.RegisterSchema(core.TableInfo{
		Key:   RecipesKey,
		Label: "Recipes",
		File:  "recipes.csv",
	}, RecipeRawSchema)
}
