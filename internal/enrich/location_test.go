package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobclean/internal/table"
)

func locationFixture(t *testing.T, fill bool) *table.Table {
	t.Helper()
	raws := []struct {
		v    string
		null bool
	}{
		{v: "Remote, US"},
		{v: "New York, NY, US"},
		{v: "US"},
		{null: true},
		{v: ""},
		{v: "Desert Ridge, AZ, USA"},
		{v: "<b>Seattle</b>, WA, US"},
	}
	tbl := table.New(len(raws))
	col := tbl.StringColumn("location")
	for i, r := range raws {
		if !r.null {
			col.SetString(i, r.v)
		}
	}
	require.NoError(t, Locations(tbl, LocationOptions{FillUnknown: fill}))
	return tbl
}

func str(t *testing.T, tbl *table.Table, col string, i int) (string, bool) {
	t.Helper()
	c := tbl.Column(col)
	require.NotNil(t, c, col)
	return c.String(i)
}

func TestLocationsColumns(t *testing.T) {
	tbl := locationFixture(t, false)

	for _, name := range []string{
		"location_city", "location_state", "location_country",
		"is_remote", "location_missing", "location_display",
	} {
		assert.NotNil(t, tbl.Column(name), name)
	}

	// Remote, US
	remote, _ := tbl.Column("is_remote").Bool(0)
	assert.True(t, remote)
	country, _ := str(t, tbl, "location_country", 0)
	assert.Equal(t, "US", country)
	assert.True(t, tbl.Column("location_city").IsNull(0))

	// New York, NY, US
	city, _ := str(t, tbl, "location_city", 1)
	state, _ := str(t, tbl, "location_state", 1)
	assert.Equal(t, "New York", city)
	assert.Equal(t, "NY", state)

	// markup-laden cell still parses
	city, _ = str(t, tbl, "location_city", 6)
	assert.Equal(t, "Seattle", city)
}

func TestLocationsMissingFlag(t *testing.T) {
	tbl := locationFixture(t, false)
	missing := tbl.Column("location_missing")

	wants := []bool{false, false, false, true, true, false, false}
	for i, want := range wants {
		got, ok := missing.Bool(i)
		require.True(t, ok)
		assert.Equal(t, want, got, "row %d", i)
	}
}

func TestLocationsDisplay(t *testing.T) {
	tbl := locationFixture(t, true)

	wants := []string{
		"Remote",
		"New York, NY",
		"US",      // country fallback
		"Unknown", // null raw
		"Unknown", // blank raw
		"Desert Ridge, AZ",
		"Seattle, WA",
	}
	for i, want := range wants {
		got, ok := str(t, tbl, "location_display", i)
		require.True(t, ok, "display must never be null (row %d)", i)
		assert.Equal(t, want, got, "row %d", i)
	}
}

func TestLocationsFillUnknown(t *testing.T) {
	tbl := locationFixture(t, true)
	city, ok := str(t, tbl, "location_city", 3)
	require.True(t, ok)
	assert.Equal(t, Unknown, city)
	state, ok := str(t, tbl, "location_state", 0)
	require.True(t, ok)
	assert.Equal(t, Unknown, state)
}

func TestLocationsMissingColumn(t *testing.T) {
	tbl := table.New(1)
	err := Locations(tbl, LocationOptions{})
	assert.ErrorContains(t, err, `"location"`)
}

func TestLocationsIdempotent(t *testing.T) {
	tbl := locationFixture(t, true)
	first := snapshot(t, tbl, "location_city", "location_state", "location_country", "location_display")

	require.NoError(t, Locations(tbl, LocationOptions{FillUnknown: true}))
	assert.Equal(t, first, snapshot(t, tbl, "location_city", "location_state", "location_country", "location_display"))
}

// snapshot renders string columns for comparison across reruns.
func snapshot(t *testing.T, tbl *table.Table, cols ...string) map[string][]string {
	t.Helper()
	out := map[string][]string{}
	for _, name := range cols {
		c := tbl.Column(name)
		require.NotNil(t, c, name)
		vals := make([]string, c.Len())
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.String(i); ok {
				vals[i] = v
			} else {
				vals[i] = "\x00null"
			}
		}
		out[name] = vals
	}
	return out
}
