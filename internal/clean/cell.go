package clean

import "strings"

// Cell is one raw value read from a table column. A NULL cell and an empty
// string both count as missing downstream, but they stay distinguishable so
// diagnostics can tell "column absent" from "blank export artifact".
type Cell struct {
	Value string
	Null  bool
}

func (c Cell) Missing() bool {
	return c.Null || strings.TrimSpace(c.Value) == ""
}
