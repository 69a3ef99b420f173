// Package csvsource reads delimited game data files row by row.
//
// Files are decoded as UTF-8 with an optional byte order mark stripped and
// invalid byte sequences replaced, so spreadsheet exports from Windows tools
// load the same as hand-written files.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultDelimiter separates fields in the game data files.
const DefaultDelimiter = ';'

// ErrEmptyFile is returned when a source has no header row.
var ErrEmptyFile = errors.New("empty file: missing header row")

// Reader iterates the data rows of a delimited file. The header row is read
// eagerly by Open/NewReader.
type Reader struct {
	r      *csv.Reader
	closer io.Closer
	header []string
	line   int
}

// Open opens the file at path and reads its header.
func Open(path string, delim rune) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	rd, err := NewReader(f, delim)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	rd.closer = f
	return rd, nil
}

// NewReader wraps r and reads its header. Every data row must have as many
// fields as the header.
func NewReader(r io.Reader, delim rune) (*Reader, error) {
	if delim == 0 {
		delim = DefaultDelimiter
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	rd := &Reader{r: cr}

	header, err := rd.read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}
	rd.header = header
	cr.FieldsPerRecord = len(header)

	return rd, nil
}

// Header returns the header row as read from the source.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next non-blank data row, or io.EOF when the source is
// exhausted.
func (r *Reader) Next() ([]string, error) {
	for {
		rec, err := r.read()
		if err != nil {
			return nil, err
		}
		if !isBlank(rec) {
			return rec, nil
		}
	}
}

// Line returns the 1-based line number of the row last returned by Next.
func (r *Reader) Line() int {
	return r.line
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func (r *Reader) read() ([]string, error) {
	rec, err := r.r.Read()
	if err != nil {
		return nil, err
	}
	r.line, _ = r.r.FieldPos(0)
	return rec, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
