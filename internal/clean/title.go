package clean

import (
	"fmt"
	"regexp"
)

// Title labels form a closed set; Unknown is reserved for missing input.
const (
	LabelDataScientist    = "Data Scientist"
	LabelSoftwareEngineer = "Software Engineer"
	LabelOther            = "Other"
	LabelUnknown          = "Unknown"
)

// defaultDataPatterns is checked before defaultSoftwarePatterns, so titles
// like "data engineer" land on the data label even though they also contain
// an engineering term. Order within each list encodes precedence.
var defaultDataPatterns = []string{
	`\bdata scientist\b`,
	`\bdata science\b`,
	`\bmachine learning\b`,
	`\bml engineer\b`,
	`\bml\b`,
	`\bdeep learning\b`,
	`\bcomputer vision\b`,
	`\bnlp\b`,
	`\bnatural language\b`,
	`\bpytorch\b`,
	`\btensorflow\b`,
	`\bscikit\b`,
	`\bpyspark\b`,
	`\bspark\b`,
	`\bdata engineer\b`,
	`\bdata analyst\b`,
	`\bstatistician\b`,
	`\bresearch scientist\b`,
}

var defaultSoftwarePatterns = []string{
	`\bsoftware engineer\b`,
	`\bsoftware developer\b`,
	`\bdevops\b`,
	`\bsre\b`,
	`\bsite reliability\b`,
	`\bbackend\b`,
	`\bfront[- ]?end\b`,
	`\bfull[- ]?stack\b`,
	`\bmobile engineer\b`,
	`\bplatform engineer\b`,
	`\bapplication engineer\b`,
	`\bengineer\b`,
	`\bprogrammer\b`,
	`\bdeveloper\b`,
	`\bfrontend\b`,
}

// TitleClassifier maps free-text job titles onto the fixed label set via two
// ordered case-insensitive pattern lists, data roles first.
type TitleClassifier struct {
	data     []*regexp.Regexp
	software []*regexp.Regexp

	// CoerceOther labels unmatched titles Software Engineer instead of Other.
	CoerceOther bool
}

// NewTitleClassifier compiles custom pattern lists; empty lists fall back to
// the defaults. Pattern compilation failures are programmer/config errors and
// are reported, unlike anything on the parsing path.
func NewTitleClassifier(dataPatterns, softwarePatterns []string, coerceOther bool) (*TitleClassifier, error) {
	if len(dataPatterns) == 0 {
		dataPatterns = defaultDataPatterns
	}
	if len(softwarePatterns) == 0 {
		softwarePatterns = defaultSoftwarePatterns
	}
	compile := func(name string, pats []string) ([]*regexp.Regexp, error) {
		out := make([]*regexp.Regexp, 0, len(pats))
		for i, p := range pats {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, fmt.Errorf("%s[%d] %q: %w", name, i, p, err)
			}
			out = append(out, re)
		}
		return out, nil
	}
	data, err := compile("data_patterns", dataPatterns)
	if err != nil {
		return nil, err
	}
	software, err := compile("software_patterns", softwarePatterns)
	if err != nil {
		return nil, err
	}
	return &TitleClassifier{data: data, software: software, CoerceOther: coerceOther}, nil
}

// DefaultTitleClassifier uses the built-in pattern lists.
func DefaultTitleClassifier(coerceOther bool) *TitleClassifier {
	c, err := NewTitleClassifier(nil, nil, coerceOther)
	if err != nil {
		panic(err) // built-in patterns always compile
	}
	return c
}

// Classify is total: missing/blank titles are Unknown, everything else lands
// on one of the present-input labels.
func (c *TitleClassifier) Classify(cell Cell) string {
	if cell.Null {
		return LabelUnknown
	}
	t := Text(cell.Value)
	if t == "" {
		return LabelUnknown
	}
	for _, re := range c.data {
		if re.MatchString(t) {
			return LabelDataScientist
		}
	}
	for _, re := range c.software {
		if re.MatchString(t) {
			return LabelSoftwareEngineer
		}
	}
	if c.CoerceOther {
		return LabelSoftwareEngineer
	}
	return LabelOther
}
