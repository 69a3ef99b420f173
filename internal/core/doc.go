// Package core provides the lenient ingestion layer for game data tables.
//
// The package turns semicolon-delimited reference data into keyed, typed,
// in-memory tables. It knows nothing about buildings or recipes; concrete
// record types live in the tables package and plug in through [Schema].
//
// # Architecture
//
//   - Cell coercion: ToPgText, ToPgFloat8, ToPgInt4 and FlagToBool convert one
//     cell and never fail. Numbers that do not parse become absent
//     (Valid=false), flags that are not 1 become false.
//   - Row schema: a [Schema] lists its [FieldSpec] columns, names the key
//     column and supplies a Build function over a [Row].
//   - Keyed table builder: [BuildTable] and [LoadTable] run every row through
//     a schema into a map keyed by [Keyed.Key]. The last row with a given key
//     wins.
//
// # Table Registry
//
// Schemas are registered at init time using [RegisterSchema] so the CLI can
// list and check every known table without knowing the record types:
//
//	core.RegisterSchema(core.TableInfo{Key: "buildings", File: "buildings.csv"}, BuildingSchema)
//
// # Error Handling
//
// Load-level failures come back as *[LoadError] naming the path. A row with an
// empty key is a *[RowError] wrapping [ErrMissingKey]. [MapError] maps either
// to a coded user message.
package core
