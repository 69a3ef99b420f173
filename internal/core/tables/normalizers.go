package tables

// NormalizeRecipe folds the numbered slots of raw into ordered item lists.
// Slots are scanned 1 to 4; a slot contributes a pair only when both its
// name and amount are present.
func NormalizeRecipe(raw RecipeRaw) Recipe {
	return Recipe{
		RecipeName:      raw.RecipeName,
		AlternateRecipe: raw.AlternateRecipe,
		MainRecipe:      raw.MainRecipe,
		AvgPower:        raw.AvgPower,
		ProducedIn:      raw.ProducedIn,
		Products:        foldSlots(raw.Products),
		Ingredients:     foldSlots(raw.Ingredients),
	}
}

func foldSlots(slots [SlotCount]Slot) []ItemAmount {
	items := make([]ItemAmount, 0, SlotCount)
	for _, s := range slots {
		if !s.Name.Valid || !s.Amount.Valid {
			continue
		}
		items = append(items, ItemAmount{Item: s.Name.String, Amount: s.Amount.Float64})
	}
	return items
}

// NormalizeRecipes normalizes every record of a raw recipe table.
func NormalizeRecipes(raw map[string]RecipeRaw) map[string]Recipe {
	out := make(map[string]Recipe, len(raw))
	for key, r := range raw {
		out[key] = NormalizeRecipe(r)
	}
	return out
}
