package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalaryNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50000", 50000, true},
		{"$50,000", 50000, true},
		{"40,000", 40000, true},
		{"50k", 50000, true},
		{"100K", 100000, true},
		{"1.2M", 1200000, true},
		{"(60,000)", -60000, true},
		{"€50.000,00", 50000, true},
		{"50.000,00", 50000, true},
		{"£45,000 per year", 45000, true},
		{"50000/year", 50000, true},
		{"circa 45k annually", 45000, true},
		{"salary: 70000 USD", 70000, true},
		{"50,00", 5000, true}, // comma read as thousands separator, no period present
		{"-", 0, false},
		{"NA", 0, false},
		{"n/a", 0, false},
		{"none", 0, false},
		{"[]", 0, false},
		{"", 0, false},
		{"competitive", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseSalaryNumber(tt.in)
			assert.Equal(t, tt.ok, got.Valid)
			if tt.ok {
				assert.InDelta(t, tt.want, got.Value, 1e-9)
			}
		})
	}
}

func TestParseSalaryField(t *testing.T) {
	tests := []struct {
		name          string
		in            Cell
		min, max, avg float64
		ok            bool
	}{
		{name: "k range", in: Cell{Value: "40k-60k"}, min: 40000, max: 60000, avg: 50000, ok: true},
		{name: "word range", in: Cell{Value: "50000 to 70000"}, min: 50000, max: 70000, avg: 60000, ok: true},
		{name: "en dash range", in: Cell{Value: "40,000 – 60,000"}, min: 40000, max: 60000, avg: 50000, ok: true},
		{name: "reversed range ordered", in: Cell{Value: "60k-40k"}, min: 40000, max: 60000, avg: 50000, ok: true},
		{name: "single", in: Cell{Value: "$50,000"}, min: 50000, max: 50000, avg: 50000, ok: true},
		{name: "european decimal comma", in: Cell{Value: "€50.000,00"}, min: 50000, max: 50000, avg: 50000, ok: true},
		{name: "accounting negative", in: Cell{Value: "(60,000)"}, min: -60000, max: -60000, avg: -60000, ok: true},
		{name: "serialized list", in: Cell{Value: "['40000','50000']"}, min: 40000, max: 50000, avg: 45000, ok: true},
		{name: "embedded numbers", in: Cell{Value: "base 80000 plus 20000 bonus"}, min: 20000, max: 80000, avg: 50000, ok: true},
		{name: "range with one parsable side", in: Cell{Value: "40k - competitive"}, min: 40000, max: 40000, avg: 40000, ok: true},
		{name: "null", in: Cell{Null: true}},
		{name: "blank", in: Cell{Value: "  "}},
		{name: "sentinel", in: Cell{Value: "NA"}},
		{name: "no numbers", in: Cell{Value: "market rate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSalaryField(tt.in)
			require.Equal(t, tt.ok, got.Min.Valid)
			require.Equal(t, tt.ok, got.Max.Valid)
			require.Equal(t, tt.ok, got.Mean.Valid)
			if tt.ok {
				assert.InDelta(t, tt.min, got.Min.Value, 1e-9)
				assert.InDelta(t, tt.max, got.Max.Value, 1e-9)
				assert.InDelta(t, tt.avg, got.Mean.Value, 1e-9)
			}
		})
	}
}

func TestParseSalaryFieldConsistent(t *testing.T) {
	// whenever any field is known all three are known
	inputs := []string{"40k-60k", "50k", "(1000)", "1 to 2 to 3", "9", "['1','2','3']"}
	for _, in := range inputs {
		got := ParseSalaryField(Cell{Value: in})
		assert.Equal(t, got.Min.Valid, got.Max.Valid, in)
		assert.Equal(t, got.Min.Valid, got.Mean.Valid, in)
		if got.Min.Valid {
			assert.LessOrEqual(t, got.Min.Value, got.Max.Value, in)
			assert.InDelta(t, (got.Min.Value+got.Max.Value)/2, got.Mean.Value, 1e-9, in)
		}
	}
}
