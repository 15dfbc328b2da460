package table

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens a SQLite database for table load/writeback.
func Open(path string) (*sql.DB, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Load reads an entire SQLite table into memory as string columns, keeping
// rowids so Save can write enrichment columns back row-aligned. NULLs stay
// NULL here, unlike CSV input.
func Load(ctx context.Context, db *sql.DB, name string) (*Table, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT rowid, * FROM %s ORDER BY rowid;`, quoteIdent(name)))
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", name, err)
	}
	defer rows.Close()

	colNames, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var (
		rowids []int64
		cells  [][]sql.NullString // per row, without the rowid column
	)
	for rows.Next() {
		var id int64
		rec := make([]sql.NullString, len(colNames)-1)
		dest := make([]any, len(colNames))
		dest[0] = &id
		for j := range rec {
			dest[j+1] = &rec[j]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", name, len(rowids)+1, err)
		}
		rowids = append(rowids, id)
		cells = append(cells, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	t := New(len(rowids))
	t.rowids = rowids
	for j, cn := range colNames[1:] {
		col := t.StringColumn(cn)
		for i, rec := range cells {
			if rec[j].Valid {
				col.SetString(i, rec[j].String)
			}
		}
	}
	return t, nil
}

// Save writes the named columns back to the SQLite table the Table was loaded
// from, adding any that do not exist yet and updating every row by rowid.
func Save(ctx context.Context, db *sql.DB, name string, t *Table, columns ...string) error {
	if t.rowids == nil {
		return fmt.Errorf("table was not loaded from sqlite; nothing to write back to")
	}

	cols := make([]*Column, 0, len(columns))
	for _, cn := range columns {
		c, err := t.Require(cn)
		if err != nil {
			return err
		}
		cols = append(cols, c)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range cols {
		if columnExists(tx, name, c.Name()) {
			continue
		}
		stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s;`,
			quoteIdent(name), quoteIdent(c.Name()), sqliteType(c.Kind()))
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add column %s: %w", c.Name(), err)
		}
	}

	sets := make([]string, len(cols))
	for j, c := range cols {
		sets[j] = quoteIdent(c.Name()) + " = ?"
	}
	update, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`UPDATE %s SET %s WHERE rowid = ?;`, quoteIdent(name), strings.Join(sets, ", ")))
	if err != nil {
		return err
	}
	defer update.Close()

	args := make([]any, len(cols)+1)
	for i := 0; i < t.Rows(); i++ {
		for j, c := range cols {
			args[j] = sqlValue(c, i)
		}
		args[len(cols)] = t.rowids[i]
		if _, err := update.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("update rowid %d: %w", t.rowids[i], err)
		}
	}

	return tx.Commit()
}

func sqlValue(c *Column, i int) any {
	if c.IsNull(i) {
		return nil
	}
	switch c.Kind() {
	case Float:
		v, _ := c.Float(i)
		return v
	case Int:
		v, _ := c.Int(i)
		return v
	case Bool:
		v, _ := c.Bool(i)
		return v
	default:
		v, _ := c.String(i)
		return v
	}
}

func sqliteType(k Kind) string {
	switch k {
	case Float:
		return "REAL"
	case Int, Bool:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func columnExists(q interface {
	QueryRow(query string, args ...any) *sql.Row
}, tbl, col string) bool {
	query := fmt.Sprintf(`
SELECT 1
FROM pragma_table_info('%s')
WHERE name = ?
LIMIT 1;
`, strings.ReplaceAll(tbl, "'", "''"))

	var one int
	err := q.QueryRow(query, col).Scan(&one)
	return err == nil
}
