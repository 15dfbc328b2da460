package export

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"jobclean/internal/table"
)

const parquetBatch = 1024

// writeParquet emits one optional parquet column per table column, so nulls
// survive the round trip into BI tools.
func writeParquet(w io.Writer, t *table.Table) error {
	group := parquet.Group{}
	for _, c := range t.Columns() {
		group[c.Name()] = parquet.Optional(parquetNode(c.Kind()))
	}
	schema := parquet.NewSchema("listings", group)

	pw := parquet.NewGenericWriter[map[string]any](w, schema)

	rows := make([]map[string]any, 0, parquetBatch)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		if _, err := pw.Write(rows); err != nil {
			return fmt.Errorf("write parquet rows: %w", err)
		}
		rows = rows[:0]
		return nil
	}

	for i := 0; i < t.Rows(); i++ {
		row := make(map[string]any, len(t.Columns()))
		for _, c := range t.Columns() {
			if c.IsNull(i) {
				continue
			}
			switch c.Kind() {
			case table.Float:
				v, _ := c.Float(i)
				row[c.Name()] = v
			case table.Int:
				v, _ := c.Int(i)
				row[c.Name()] = v
			case table.Bool:
				v, _ := c.Bool(i)
				row[c.Name()] = v
			default:
				v, _ := c.String(i)
				row[c.Name()] = v
			}
		}
		rows = append(rows, row)
		if len(rows) == parquetBatch {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	return pw.Close()
}

func parquetNode(k table.Kind) parquet.Node {
	switch k {
	case table.Float:
		return parquet.Leaf(parquet.DoubleType)
	case table.Int:
		return parquet.Int(64)
	case table.Bool:
		return parquet.Leaf(parquet.BooleanType)
	default:
		return parquet.String()
	}
}
