package tables

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/pipeoptz/internal/core"
	"github.com/jackc/pgx/v5/pgtype"
)

// Building is one row of buildings.csv. Numeric attributes are absent when
// the source cell is empty or does not parse.
type Building struct {
	Name           string
	Overclockable  bool
	PowerUsage     pgtype.Float8
	PowerGenerated pgtype.Float8
	Inputs         pgtype.Float8
	Outputs        pgtype.Float8
	Width          pgtype.Float8
	Length         pgtype.Float8
	Height         pgtype.Float8
}

// Key implements core.Keyed.
func (b Building) Key() string { return b.Name }

// String returns the building name.
func (b Building) String() string { return b.Name }

// Detail returns a one-line summary of the building. Absent numbers are
// shown as zero.
func (b Building) Detail() string {
	return fmt.Sprintf("%s  in=%g  out=%g  power=%g MW",
		b.Name,
		core.Float64Or(b.Inputs, 0),
		core.Float64Or(b.Outputs, 0),
		core.Float64Or(b.PowerUsage, 0),
	)
}

// BuildingSchema maps buildings.csv onto Building.
var BuildingSchema = core.Schema[Building]{
	Name:      "buildings",
	KeyColumn: "name",
	Fields: []core.FieldSpec{
		{Name: "overclockable", Type: core.FieldFlag},
		{Name: "name", Type: core.FieldText, Required: true},
		{Name: "powerUsage", Type: core.FieldNumeric},
		{Name: "powerGenerated", Type: core.FieldNumeric},
		{Name: "inputs", Type: core.FieldNumeric},
		{Name: "outputs", Type: core.FieldNumeric},
		{Name: "width", Type: core.FieldNumeric},
		{Name: "length", Type: core.FieldNumeric},
		{Name: "height", Type: core.FieldNumeric},
	},
	Build: func(row core.Row) Building {
		return Building{
			Name:           row.Text("name").String,
			Overclockable:  row.Flag("overclockable"),
			PowerUsage:     row.Float("powerUsage"),
			PowerGenerated: row.Float("powerGenerated"),
			Inputs:         row.Float("inputs"),
			Outputs:        row.Float("outputs"),
			Width:          row.Float("width"),
			Length:         row.Float("length"),
			Height:         row.Float("height"),
		}
	},
}

// LoadBuildings loads the building table from path.
func LoadBuildings(ctx context.Context, path string, opts core.Options) (map[string]Building, error) {
	return core.LoadTable(ctx, path, BuildingSchema, opts)
}
