package normalizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/faturai-dev/faturai/internal/model"
)

// Normalizer converts one bank's raw statement table into canonical
// transactions. Implementations filter out non-debit rows (amount <= 0)
// before classification, never log, and leave the input table untouched.
type Normalizer interface {
	Normalize(t model.RawTable) ([]model.CanonicalTransaction, error)
	Layout() string
}

// ParseError reports a statement value that could not be parsed, naming
// the source file, data row and field.
type ParseError struct {
	File  string
	Row   int // 1-based data row, excluding the header
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: parsing %s %q: %v", e.File, e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Registry holds named normalizers.
type Registry struct {
	normalizers map[string]Normalizer
}

// NewRegistry creates an empty normalizer registry.
func NewRegistry() *Registry {
	return &Registry{normalizers: make(map[string]Normalizer)}
}

// Register adds a normalizer. Panics on duplicate layout.
func (r *Registry) Register(n Normalizer) {
	key := strings.ToLower(n.Layout())
	if _, ok := r.normalizers[key]; ok {
		panic("duplicate normalizer layout: " + key)
	}
	r.normalizers[key] = n
}

// Get returns the normalizer for layout, or nil.
func (r *Registry) Get(layout string) Normalizer {
	return r.normalizers[strings.ToLower(layout)]
}

// Layouts returns the registered layout names, sorted.
func (r *Registry) Layouts() []string {
	keys := make([]string, 0, len(r.normalizers))
	for k := range r.normalizers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Normalize runs the registered normalizer for layout over t.
func (r *Registry) Normalize(layout string, t model.RawTable) ([]model.CanonicalTransaction, error) {
	n := r.Get(layout)
	if n == nil {
		return nil, fmt.Errorf("layout not supported: %q (supported: %s)", layout, strings.Join(r.Layouts(), ", "))
	}
	return n.Normalize(t)
}

// DefaultRegistry returns a registry with all built-in normalizers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&NubankNormalizer{})
	r.Register(&InterNormalizer{})
	return r
}

// cleanHeader strips the BOM, stray quote characters and surrounding
// whitespace that bank exports leave in column headers, so that a header
// cell like \ufeff"Valor" matches the plain name Valor.
func cleanHeader(s string) string {
	s = strings.ReplaceAll(s, "\ufeff", "")
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}

// requireColumn finds the index of a named column after header cleanup.
func requireColumn(t model.RawTable, name string) (int, error) {
	for i, c := range t.Columns {
		if cleanHeader(c) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: missing column %q", t.File, name)
}
