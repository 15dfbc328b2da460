package table

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `
CREATE TABLE listings (
  title TEXT,
  location TEXT,
  min_amount TEXT
);`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
INSERT INTO listings(title, location, min_amount) VALUES
  ('Data Scientist', 'Remote, US', '40k-60k'),
  ('Barista', NULL, NULL),
  (NULL, 'Austin, TX, US', '50000');`)
	require.NoError(t, err)
	return db, ctx
}

func TestSQLiteLoad(t *testing.T) {
	db, ctx := openTestDB(t)

	tbl, err := Load(ctx, db, "listings")
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Rows())

	loc := tbl.Column("location")
	require.NotNil(t, loc)
	v, ok := loc.String(0)
	require.True(t, ok)
	assert.Equal(t, "Remote, US", v)
	assert.True(t, loc.IsNull(1)) // real NULL survives the load
}

func TestSQLiteSaveAddsColumns(t *testing.T) {
	db, ctx := openTestDB(t)

	tbl, err := Load(ctx, db, "listings")
	require.NoError(t, err)

	city := tbl.StringColumn("location_city")
	city.SetString(2, "Austin")
	pay := tbl.IntColumn("min_salary")
	pay.SetInt(0, 40000)
	remote := tbl.BoolColumn("is_remote")
	remote.SetBool(0, true)
	remote.SetBool(1, false)
	remote.SetBool(2, false)

	require.NoError(t, Save(ctx, db, "listings", tbl, "location_city", "min_salary", "is_remote"))

	// reload and confirm alignment and nullability
	back, err := Load(ctx, db, "listings")
	require.NoError(t, err)
	v, ok := back.Column("location_city").String(2)
	require.True(t, ok)
	assert.Equal(t, "Austin", v)
	assert.True(t, back.Column("location_city").IsNull(0))
	v, _ = back.Column("min_salary").String(0)
	assert.Equal(t, "40000", v)
	v, _ = back.Column("is_remote").String(0)
	assert.Equal(t, "1", v)

	// saving again overwrites in place without duplicating columns
	require.NoError(t, Save(ctx, db, "listings", tbl, "location_city", "min_salary", "is_remote"))
}

func TestSQLiteSaveRequiresLoadedTable(t *testing.T) {
	db, ctx := openTestDB(t)
	tbl := New(1)
	tbl.StringColumn("x")
	err := Save(ctx, db, "listings", tbl, "x")
	assert.ErrorContains(t, err, "not loaded from sqlite")
}
