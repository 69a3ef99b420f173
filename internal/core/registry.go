package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// CheckFunc loads a table from path and returns the number of records.
type CheckFunc func(ctx context.Context, path string, opts Options) (int, error)

// TableDefinition contains everything needed to list and check a table
// without knowing its record type.
type TableDefinition struct {
	Info   TableInfo
	Fields []FieldSpec
	Check  CheckFunc
}

var (
	registry   = make(map[string]TableDefinition)
	registryMu sync.RWMutex
)

// Register adds a table definition to the registry.
// Panics if a table with the same key is already registered.
func Register(def TableDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("table already registered: %s", def.Info.Key))
	}

	registry[def.Info.Key] = def
}

// RegisterSchema registers a typed schema under info. The definition's
// Check loads the table with LoadTable.
func RegisterSchema[T Keyed](info TableInfo, schema Schema[T]) {
	Register(TableDefinition{
		Info:   info,
		Fields: schema.Fields,
		Check: func(ctx context.Context, path string, opts Options) (int, error) {
			table, err := LoadTable(ctx, path, schema, opts)
			if err != nil {
				return 0, err
			}
			return len(table), nil
		},
	})
}

// Get returns a table definition by key.
// Returns false if not found.
func Get(key string) (TableDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered table definitions sorted by key.
func All() []TableDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]TableDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// SortedKeys returns the keys of a table in ascending order.
func SortedKeys[T any](table map[string]T) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
