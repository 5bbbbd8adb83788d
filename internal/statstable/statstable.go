// Package statstable provides the sortable, searchable statistics table used
// by the ceremony and category views.
//
// A table is built once from a slice of records. Records are deduplicated by
// id on construction; every later change of search query, sort column or
// direction re-runs filter then sort over the deduplicated base set. None of
// the functions here modify their input slices.
package statstable

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oscy/oscy-web/internal/natsort"
)

var (
	// ErrUnknownKey is returned when a column or search key is not a field of
	// the record type.
	ErrUnknownKey = errors.New("statstable: unknown field key")

	// ErrNoColumns is returned when a table is built without columns.
	ErrNoColumns = errors.New("statstable: no columns")

	// ErrColumnIndex is returned when a selected column index is out of range.
	ErrColumnIndex = errors.New("statstable: column index out of range")
)

// Record is a single row of a statistics table. Field returns the value of
// the named field and whether the record type has such a field at all.
//
// Implementations must be value types: the zero value is used to validate
// column keys when a table is built.
type Record interface {
	StatID() int
	Field(key string) (any, bool)
}

// Align is the horizontal alignment of a column.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// ParseDirection parses "asc" or "desc" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", fmt.Errorf("statstable: invalid direction %q", s)
}

// Column describes one sortable column.
type Column struct {
	SortKey  string    `json:"sort_key"`
	Name     string    `json:"name"`
	FullName string    `json:"full_name"`
	Align    Align     `json:"align"`
	Default  Direction `json:"default"`
	Minor    bool      `json:"minor,omitempty"`
}

// Validate checks that every column sort key and the search key are fields
// of R.
func Validate[R Record](cols []Column, searchKey string) error {
	if len(cols) == 0 {
		return ErrNoColumns
	}
	var zero R
	if _, ok := zero.Field(searchKey); !ok {
		return fmt.Errorf("%w: search key %q", ErrUnknownKey, searchKey)
	}
	for i, c := range cols {
		if _, ok := zero.Field(c.SortKey); !ok {
			return fmt.Errorf("%w: column %d sort key %q", ErrUnknownKey, i, c.SortKey)
		}
	}
	return nil
}

// Dedupe keeps the first record for each id and drops later records with
// the same id. Relative order of the kept records is preserved.
func Dedupe[R Record](records []R) []R {
	seen := make(map[int]struct{}, len(records))
	out := make([]R, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.StatID()]; dup {
			continue
		}
		seen[r.StatID()] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Filter returns the records whose searchKey field contains query, compared
// case-insensitively after trimming the query. Array fields match when any
// element, or the comma-joined array, contains the query. A missing field is
// treated as the empty string; an empty query matches every record.
func Filter[R Record](records []R, searchKey, query string) []R {
	q := lower(strings.TrimSpace(query))
	out := make([]R, 0, len(records))
	for _, r := range records {
		if q == "" || matches(r, searchKey, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Record, key, q string) bool {
	v, _ := r.Field(key)
	if elems, ok := v.([]string); ok {
		for _, e := range elems {
			if strings.Contains(lower(e), q) {
				return true
			}
		}
	}
	return strings.Contains(lower(String(v)), q)
}

// Sort returns a copy of records ordered by the string form of the column's
// field under natural ordering. Descending order swaps the comparator
// operands. The sort is stable and has no secondary key.
func Sort[R Record](records []R, col Column, dir Direction) []R {
	ks := make([]keyed[R], len(records))
	for i, r := range records {
		v, _ := r.Field(col.SortKey)
		ks[i] = keyed[R]{rec: r, key: String(v)}
	}
	slices.SortStableFunc(ks, func(a, b keyed[R]) int {
		if dir == Desc {
			return natsort.Compare(b.key, a.key)
		}
		return natsort.Compare(a.key, b.key)
	})
	out := make([]R, len(ks))
	for i, k := range ks {
		out[i] = k.rec
	}
	return out
}

type keyed[R any] struct {
	rec R
	key string
}

// String renders a field value the way it is compared and searched.
// Arrays are joined with commas; nil renders as the empty string.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		return strings.Join(x, ",")
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
