// Package table is a small column-oriented store for job-listing rows: named
// nullable columns aligned by row index. It is the collaborator the cleaning
// passes read raw cells from and write structured columns back to; parsing
// itself lives elsewhere.
package table

import "fmt"

type Kind int

const (
	String Kind = iota
	Float
	Int
	Bool
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return "string"
	}
}

// Column holds one named column. All slices are rows long; null marks the
// missing cells.
type Column struct {
	name string
	kind Kind

	strs   []string
	floats []float64
	ints   []int64
	bools  []bool
	null   []bool
}

func (c *Column) Name() string { return c.name }
func (c *Column) Kind() Kind   { return c.kind }
func (c *Column) Len() int     { return len(c.null) }

func (c *Column) IsNull(i int) bool { return c.null[i] }
func (c *Column) SetNull(i int)     { c.null[i] = true }

func (c *Column) String(i int) (string, bool) {
	if c.kind != String || c.null[i] {
		return "", false
	}
	return c.strs[i], true
}

func (c *Column) SetString(i int, v string) {
	c.strs[i] = v
	c.null[i] = false
}

func (c *Column) Float(i int) (float64, bool) {
	if c.null[i] {
		return 0, false
	}
	switch c.kind {
	case Float:
		return c.floats[i], true
	case Int:
		return float64(c.ints[i]), true
	}
	return 0, false
}

func (c *Column) SetFloat(i int, v float64) {
	c.floats[i] = v
	c.null[i] = false
}

func (c *Column) Int(i int) (int64, bool) {
	if c.kind != Int || c.null[i] {
		return 0, false
	}
	return c.ints[i], true
}

func (c *Column) SetInt(i int, v int64) {
	c.ints[i] = v
	c.null[i] = false
}

func (c *Column) Bool(i int) (bool, bool) {
	if c.kind != Bool || c.null[i] {
		return false, false
	}
	return c.bools[i], true
}

func (c *Column) SetBool(i int, v bool) {
	c.bools[i] = v
	c.null[i] = false
}

// Categorical dictionary-encodes a string column: the distinct values in
// first-seen order plus a per-row code (-1 for null). Low-cardinality columns
// like state or label columns compress well this way.
func (c *Column) Categorical() (values []string, codes []int) {
	codes = make([]int, c.Len())
	index := map[string]int{}
	for i := range c.null {
		if c.null[i] || c.kind != String {
			codes[i] = -1
			continue
		}
		code, ok := index[c.strs[i]]
		if !ok {
			code = len(values)
			index[c.strs[i]] = code
			values = append(values, c.strs[i])
		}
		codes[i] = code
	}
	return values, codes
}

// Compact re-interns a string column through its dictionary so duplicate
// values share one backing string.
func (c *Column) Compact() {
	if c.kind != String {
		return
	}
	values, codes := c.Categorical()
	for i, code := range codes {
		if code >= 0 {
			c.strs[i] = values[code]
		}
	}
}

// Table is a fixed-row-count set of columns. Adding a column that already
// exists replaces it: enrichment passes own their output columns.
type Table struct {
	rows   int
	cols   []*Column
	byName map[string]*Column

	// rowids is set when the table was loaded from SQLite and is what keeps
	// writebacks row-aligned.
	rowids []int64
}

func New(rows int) *Table {
	return &Table{rows: rows, byName: map[string]*Column{}}
}

func (t *Table) Rows() int          { return t.rows }
func (t *Table) Columns() []*Column { return t.cols }

// Column returns the named column or nil.
func (t *Table) Column(name string) *Column { return t.byName[name] }

func (t *Table) newColumn(name string, kind Kind) *Column {
	c := &Column{name: name, kind: kind, null: make([]bool, t.rows)}
	for i := range c.null {
		c.null[i] = true
	}
	switch kind {
	case String:
		c.strs = make([]string, t.rows)
	case Float:
		c.floats = make([]float64, t.rows)
	case Int:
		c.ints = make([]int64, t.rows)
	case Bool:
		c.bools = make([]bool, t.rows)
	}
	if old := t.byName[name]; old != nil {
		for i, oc := range t.cols {
			if oc == old {
				t.cols[i] = c
				break
			}
		}
	} else {
		t.cols = append(t.cols, c)
	}
	t.byName[name] = c
	return c
}

// StringColumn adds (or replaces) an all-null string column.
func (t *Table) StringColumn(name string) *Column { return t.newColumn(name, String) }

// FloatColumn adds (or replaces) an all-null float column.
func (t *Table) FloatColumn(name string) *Column { return t.newColumn(name, Float) }

// IntColumn adds (or replaces) an all-null integer column.
func (t *Table) IntColumn(name string) *Column { return t.newColumn(name, Int) }

// BoolColumn adds (or replaces) an all-null boolean column.
func (t *Table) BoolColumn(name string) *Column { return t.newColumn(name, Bool) }

// Require returns the named column or a caller-visible error; used by passes
// whose source column is configuration, not data.
func (t *Table) Require(name string) (*Column, error) {
	if c := t.byName[name]; c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("table has no column %q", name)
}
