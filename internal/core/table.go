package core

// table.go builds keyed in-memory tables from a row source.
//
// A load has three failure levels:
//   - Load level: the source cannot be opened, has no header, misses a key or
//     required column, or breaks the delimiter structure. The load aborts and
//     no table is returned.
//   - Row level: a row has an empty key. Strict loads abort with a *RowError;
//     lenient loads drop the row and count it.
//   - Cell level: never an error. Coercion rules absorb bad cells.
//
// Rows with the same key overwrite each other: the last row in the file wins.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/pipeoptz/internal/csvsource"
	"github.com/JonMunkholm/pipeoptz/internal/logging"
	"github.com/google/uuid"
)

// RowSource supplies the header and data rows of a delimited table.
// Next returns io.EOF after the last row.
type RowSource interface {
	Header() []string
	Next() ([]string, error)
	Line() int
}

// Options controls how a table is loaded.
type Options struct {
	// Delimiter separates fields. Zero means csvsource.DefaultDelimiter.
	Delimiter rune

	// LenientKeys drops rows with an empty key instead of failing the load.
	LenientKeys bool
}

// BuildTable reads every row of src through schema and returns the records
// keyed by Keyed.Key. Later rows replace earlier rows with the same key.
func BuildTable[T Keyed](ctx context.Context, src RowSource, schema Schema[T], opts Options) (map[string]T, LoadStats, error) {
	var stats LoadStats
	log := logging.FromContext(ctx)

	if schema.Build == nil {
		return nil, stats, fmt.Errorf("schema %s has no build function", schema.Name)
	}

	idx, err := ValidateHeaders(src.Header(), schema.KeyColumn, schema.Fields)
	if err != nil {
		return nil, stats, err
	}

	table := make(map[string]T)
	for {
		cells, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("invalid csv: %w", err)
		}
		stats.Rows++

		row := NewRow(cells, idx, src.Line())

		if key, _ := row.Cell(schema.KeyColumn); key == "" {
			rowErr := &RowError{Line: row.Line(), Column: schema.KeyColumn, Err: ErrMissingKey}
			if !opts.LenientKeys {
				return nil, stats, rowErr
			}
			stats.Dropped++
			log.Warn("row dropped", "line", row.Line(), "error", rowErr.Err)
			continue
		}

		if coerced := row.coercedCells(schema.Fields); len(coerced) > 0 {
			stats.Coerced += len(coerced)
			log.Debug("cells coerced to default", "line", row.Line(), "fields", coerced)
		}

		rec := schema.Build(row)
		key := rec.Key()
		if _, exists := table[key]; exists {
			stats.Replaced++
			log.Debug("duplicate key, keeping later row", "key", key, "line", row.Line())
		}
		table[key] = rec
	}

	stats.Records = len(table)
	return table, stats, nil
}

// LoadTable opens the file at path and builds a table from it. Any failure is
// returned as a *LoadError naming the path; no partial table is returned.
func LoadTable[T Keyed](ctx context.Context, path string, schema Schema[T], opts Options) (map[string]T, error) {
	start := time.Now()
	log := logging.WithFields(ctx,
		"load_id", uuid.NewString(),
		"table", schema.Name,
		"path", path,
	)
	ctx = logging.WithLogger(ctx, log)

	src, err := csvsource.Open(path, opts.Delimiter)
	if err != nil {
		return nil, &LoadError{Table: schema.Name, Path: path, Err: err}
	}
	defer src.Close()

	table, stats, err := BuildTable(ctx, src, schema, opts)
	if err != nil {
		log.Error("load failed", "error", err)
		return nil, &LoadError{Table: schema.Name, Path: path, Err: err}
	}

	log.Info("table loaded",
		"rows", stats.Rows,
		"records", stats.Records,
		"replaced", stats.Replaced,
		"dropped", stats.Dropped,
		"coerced", stats.Coerced,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return table, nil
}
