package tables

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/pipeoptz/internal/core"
	"github.com/jackc/pgx/v5/pgtype"
)

// SlotCount is the number of numbered product and ingredient columns.
const SlotCount = 4

// Slot is one numbered name/amount column pair of a raw recipe row.
type Slot struct {
	Name   pgtype.Text
	Amount pgtype.Float8
}

// RecipeRaw is one row of recipes.csv with its numbered columns kept as
// fixed slots.
type RecipeRaw struct {
	RecipeName      string
	AlternateRecipe bool
	MainRecipe      bool
	AvgPower        pgtype.Int4
	ProducedIn      pgtype.Text
	Products        [SlotCount]Slot
	Ingredients     [SlotCount]Slot
}

// Key implements core.Keyed.
func (r RecipeRaw) Key() string { return r.RecipeName }

// ItemAmount is an item name with a per-minute quantity.
type ItemAmount struct {
	Item   string
	Amount float64
}

// Recipe is a normalized recipe: the numbered slots are folded into ordered
// lists that hold only complete pairs.
type Recipe struct {
	RecipeName      string
	AlternateRecipe bool
	MainRecipe      bool
	AvgPower        pgtype.Int4
	ProducedIn      pgtype.Text
	Products        []ItemAmount
	Ingredients     []ItemAmount
}

// Key implements core.Keyed.
func (r Recipe) Key() string { return r.RecipeName }

// String returns the recipe name.
func (r Recipe) String() string { return r.RecipeName }

// Detail returns a one-line summary of the recipe.
func (r Recipe) Detail() string {
	return fmt.Sprintf("%s  [%s] -> [%s]  in %s  %d MW",
		r.RecipeName,
		formatItems(r.Ingredients),
		formatItems(r.Products),
		core.TextOr(r.ProducedIn, "-"),
		core.Int32Or(r.AvgPower, 0),
	)
}

func formatItems(items []ItemAmount) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%g %s", it.Amount, it.Item)
	}
	return strings.Join(parts, ", ")
}

// Column names of slot i (1-based). Slot 1 also accepts the unnumbered
// product columns used by older exports.
func productColumns(i int) (name, amount []string) {
	name = []string{fmt.Sprintf("product%d", i)}
	amount = []string{fmt.Sprintf("productsPerMinute%d", i)}
	if i == 1 {
		name = append(name, "product")
		amount = append(amount, "productsPerMinute")
	}
	return name, amount
}

func ingredientColumns(i int) (name, amount []string) {
	return []string{fmt.Sprintf("ingredient%d", i)}, []string{fmt.Sprintf("quantity%d", i)}
}

func slotFields() []core.FieldSpec {
	var specs []core.FieldSpec
	for _, columns := range []func(int) ([]string, []string){productColumns, ingredientColumns} {
		for i := 1; i <= SlotCount; i++ {
			name, amount := columns(i)
			specs = append(specs,
				core.FieldSpec{Name: name[0], Aliases: name[1:], Type: core.FieldText},
				core.FieldSpec{Name: amount[0], Aliases: amount[1:], Type: core.FieldNumeric},
			)
		}
	}
	return specs
}

func readSlots(row core.Row, columns func(int) ([]string, []string)) [SlotCount]Slot {
	var slots [SlotCount]Slot
	for i := range slots {
		name, amount := columns(i + 1)
		slots[i] = Slot{Name: row.Text(name[0]), Amount: row.Float(amount[0])}
	}
	return slots
}

// RecipeRawSchema maps recipes.csv onto RecipeRaw.
var RecipeRawSchema = core.Schema[RecipeRaw]{
	Name:      "recipes",
	KeyColumn: "recipeName",
	Fields: append([]core.FieldSpec{
		{Name: "recipeName", Type: core.FieldText, Required: true},
		{Name: "alternateRecipe", Type: core.FieldFlag},
		{Name: "mainRecipe", Type: core.FieldFlag},
		{Name: "avgPower", Type: core.FieldInteger},
		{Name: "producedIn", Type: core.FieldText},
	}, slotFields()...),
	Build: func(row core.Row) RecipeRaw {
		return RecipeRaw{
			RecipeName:      row.Text("recipeName").String,
			AlternateRecipe: row.Flag("alternateRecipe"),
			MainRecipe:      row.Flag("mainRecipe"),
			AvgPower:        row.Int("avgPower"),
			ProducedIn:      row.Text("producedIn"),
			Products:        readSlots(row, productColumns),
			Ingredients:     readSlots(row, ingredientColumns),
		}
	},
}

// LoadRecipes loads recipes.csv from path and returns normalized recipes.
func LoadRecipes(ctx context.Context, path string, opts core.Options) (map[string]Recipe, error) {
	raw, err := core.LoadTable(ctx, path, RecipeRawSchema, opts)
	if err != nil {
		return nil, err
	}
	return NormalizeRecipes(raw), nil
}
