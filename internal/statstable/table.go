package statstable

import "fmt"

// State is the view state of a table: the active column, its direction and
// the current search query.
type State struct {
	Column    int       `json:"column"`
	Direction Direction `json:"direction"`
	Query     string    `json:"query"`
}

// DefaultState is the state of a freshly built table: the second column
// (the first numeric one in every preset) sorted descending.
func DefaultState(cols []Column) State {
	s := State{Column: 1, Direction: Desc}
	if len(cols) < 2 {
		s.Column = 0
	}
	return s
}

// Select applies the column selection protocol. Selecting a different
// column switches to that column's default direction; selecting the active
// column flips the direction.
func (s State) Select(cols []Column, index int) (State, error) {
	if index < 0 || index >= len(cols) {
		return s, fmt.Errorf("%w: %d", ErrColumnIndex, index)
	}
	if index != s.Column {
		s.Direction = cols[index].Default
	} else {
		s.Direction = s.Direction.Flip()
	}
	s.Column = index
	return s, nil
}

// Table is a deduplicated record set plus the view state applied to it.
// A Table is not safe for concurrent use; build one per request.
type Table[R Record] struct {
	base      []R
	cols      []Column
	searchKey string
	state     State
	rows      []R
}

// New validates the column schema, deduplicates records and computes the
// initial view.
func New[R Record](records []R, cols []Column, searchKey string) (*Table[R], error) {
	if err := Validate[R](cols, searchKey); err != nil {
		return nil, err
	}
	t := &Table[R]{
		base:      Dedupe(records),
		cols:      cols,
		searchKey: searchKey,
		state:     DefaultState(cols),
	}
	t.recompute()
	return t, nil
}

// Select makes index the active column following State.Select and returns
// the resulting direction and rows.
func (t *Table[R]) Select(index int) (Direction, []R, error) {
	s, err := t.state.Select(t.cols, index)
	if err != nil {
		return t.state.Direction, t.rows, err
	}
	t.state = s
	t.recompute()
	return s.Direction, t.rows, nil
}

// Search sets the query and returns the recomputed rows.
func (t *Table[R]) Search(query string) []R {
	t.state.Query = query
	t.recompute()
	return t.rows
}

// SetState replaces the whole view state, for callers that keep the state
// outside the table between requests.
func (t *Table[R]) SetState(s State) error {
	if s.Column < 0 || s.Column >= len(t.cols) {
		return fmt.Errorf("%w: %d", ErrColumnIndex, s.Column)
	}
	if s.Direction != Asc && s.Direction != Desc {
		return fmt.Errorf("statstable: invalid direction %q", s.Direction)
	}
	t.state = s
	t.recompute()
	return nil
}

// Rows returns the current view. It is never nil.
func (t *Table[R]) Rows() []R { return t.rows }

// Empty reports whether the current view has no rows.
func (t *Table[R]) Empty() bool { return len(t.rows) == 0 }

// State returns the current view state.
func (t *Table[R]) State() State { return t.state }

// Columns returns the table's column schema.
func (t *Table[R]) Columns() []Column { return t.cols }

// Len returns the size of the deduplicated base set.
func (t *Table[R]) Len() int { return len(t.base) }

func (t *Table[R]) recompute() {
	filtered := Filter(t.base, t.searchKey, t.state.Query)
	t.rows = Sort(filtered, t.cols[t.state.Column], t.state.Direction)
}
