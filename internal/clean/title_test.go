package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTitle(t *testing.T) {
	coerce := DefaultTitleClassifier(true)
	strict := DefaultTitleClassifier(false)

	tests := []struct {
		in         string
		want       string
		wantStrict string
	}{
		// data patterns run first, so a data-flavored engineering title is a data role
		{"Senior Data Engineer", LabelDataScientist, LabelDataScientist},
		{"Data Scientist II", LabelDataScientist, LabelDataScientist},
		{"machine learning engineer", LabelDataScientist, LabelDataScientist},
		{"NLP Research Scientist", LabelDataScientist, LabelDataScientist},
		{"Software Engineer", LabelSoftwareEngineer, LabelSoftwareEngineer},
		{"Senior Backend Developer", LabelSoftwareEngineer, LabelSoftwareEngineer},
		{"Site Reliability Engineer", LabelSoftwareEngineer, LabelSoftwareEngineer},
		{"Full-Stack Developer", LabelSoftwareEngineer, LabelSoftwareEngineer},
		{"Barista", LabelSoftwareEngineer, LabelOther},
		{"Head of Marketing", LabelSoftwareEngineer, LabelOther},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, coerce.Classify(Cell{Value: tt.in}))
			assert.Equal(t, tt.wantStrict, strict.Classify(Cell{Value: tt.in}))
		})
	}
}

func TestClassifyTitleMissing(t *testing.T) {
	c := DefaultTitleClassifier(true)
	assert.Equal(t, LabelUnknown, c.Classify(Cell{Null: true}))
	assert.Equal(t, LabelUnknown, c.Classify(Cell{Value: "   "}))
}

func TestNewTitleClassifierCustomPatterns(t *testing.T) {
	c, err := NewTitleClassifier([]string{`\bquant\b`}, []string{`\bgame\b`}, false)
	require.NoError(t, err)
	assert.Equal(t, LabelDataScientist, c.Classify(Cell{Value: "Quant Researcher"}))
	assert.Equal(t, LabelSoftwareEngineer, c.Classify(Cell{Value: "Game Programmer"}))
	assert.Equal(t, LabelOther, c.Classify(Cell{Value: "Data Engineer"})) // custom list replaces built-ins
}

func TestNewTitleClassifierBadPattern(t *testing.T) {
	_, err := NewTitleClassifier([]string{`(`}, nil, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_patterns[0]")
}
