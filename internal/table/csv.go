package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadCSV loads a delimited file into an all-string table. A UTF-8 BOM on the
// header is tolerated. CSV cannot express NULL, so empty cells come back as
// blank strings, not nulls; SQLite input is what carries real NULLs.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(records)+2, err)
		}
		records = append(records, rec)
	}

	t := New(len(records))
	for j, name := range header {
		col := t.StringColumn(name)
		for i, rec := range records {
			if j < len(rec) {
				col.SetString(i, rec[j])
			}
		}
	}
	return t, nil
}

// WriteCSV writes the table with headers. Numbers are emitted with a plain
// decimal point and no thousands separators; integral floats drop the
// fraction entirely so spreadsheet tools do not re-localize them.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns()))
	for j, c := range t.Columns() {
		header[j] = c.Name()
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	rec := make([]string, len(t.Columns()))
	for i := 0; i < t.Rows(); i++ {
		for j, c := range t.Columns() {
			rec[j] = formatCell(c, i)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(c *Column, i int) string {
	if c.IsNull(i) {
		return ""
	}
	switch c.Kind() {
	case Float:
		v, _ := c.Float(i)
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Int:
		v, _ := c.Int(i)
		return strconv.FormatInt(v, 10)
	case Bool:
		v, _ := c.Bool(i)
		return strconv.FormatBool(v)
	default:
		v, _ := c.String(i)
		return v
	}
}
