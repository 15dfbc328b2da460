// Package enrich runs the batch cleaning passes over a table: a per-row map
// with the parsers in package clean, followed where needed by a column-wide
// reduce (statistics, frequencies) and a back-fill pass. Rows are independent,
// so the map phase fans out across workers.
package enrich

import (
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"jobclean/internal/clean"
	"jobclean/internal/table"
)

// Unknown is the placeholder written where a value could not be derived but
// the output column must stay non-null.
const Unknown = "Unknown"

// cellAt reads a cell as raw text. Numeric columns render as plain decimal
// strings so a pass re-run over an already-enriched table parses its own
// output back to the same values.
func cellAt(c *table.Column, i int) clean.Cell {
	if c == nil || c.IsNull(i) {
		return clean.Cell{Null: true}
	}
	switch c.Kind() {
	case table.String:
		// scraped exports sometimes leave HTML fragments in cells
		v, _ := c.String(i)
		return clean.Cell{Value: clean.StripMarkup(v)}
	case table.Float:
		v, _ := c.Float(i)
		return clean.Cell{Value: strconv.FormatFloat(v, 'f', -1, 64)}
	case table.Int:
		v, _ := c.Int(i)
		return clean.Cell{Value: strconv.FormatInt(v, 10)}
	}
	return clean.Cell{Null: true}
}

// forEachRow applies fn to every row index, fanning out over workers for
// larger tables. fn must only touch state owned by its own row index.
func forEachRow(rows, workers int, fn func(i int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || rows < 256 {
		for i := 0; i < rows; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	chunk := (rows + workers - 1) / workers
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}
		start := start
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; parsing is total
}
