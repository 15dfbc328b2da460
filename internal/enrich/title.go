package enrich

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"jobclean/internal/clean"
	"jobclean/internal/table"
)

type TitleOptions struct {
	// Column is the raw title column (default "title"); OutColumn the label
	// column (default "title_clean").
	Column    string
	OutColumn string

	// Classifier defaults to the built-in pattern lists with coercion on.
	Classifier *clean.TitleClassifier

	// KeepTopNOther preserves the N most frequent unmatched raw titles
	// verbatim instead of collapsing them to Other. Only meaningful when the
	// classifier does not coerce unmatched titles.
	KeepTopNOther int

	Workers int
}

// Titles classifies the raw title column into the fixed label set.
func Titles(t *table.Table, opts TitleOptions) error {
	if opts.Column == "" {
		opts.Column = "title"
	}
	if opts.OutColumn == "" {
		opts.OutColumn = "title_clean"
	}
	cls := opts.Classifier
	if cls == nil {
		cls = clean.DefaultTitleClassifier(true)
	}

	src, err := t.Require(opts.Column)
	if err != nil {
		return err
	}

	n := t.Rows()
	labels := make([]string, n)
	forEachRow(n, opts.Workers, func(i int) {
		labels[i] = cls.Classify(cellAt(src, i))
	})

	// optional second map: the most frequent unmatched titles survive as-is
	if opts.KeepTopNOther > 0 && !cls.CoerceOther {
		keep := topUnmatched(src, labels, opts.KeepTopNOther)
		for i := range labels {
			if labels[i] != clean.LabelOther {
				continue
			}
			raw := strings.TrimSpace(cellAt(src, i).Value)
			if keep[raw] {
				labels[i] = raw
			}
		}
	}

	out := t.StringColumn(opts.OutColumn)
	counts := map[string]int{}
	for i, l := range labels {
		out.SetString(i, l)
		counts[l]++
	}
	out.Compact()

	log.Infof("[title] rows=%d data=%d software=%d other=%d unknown=%d", n,
		counts[clean.LabelDataScientist], counts[clean.LabelSoftwareEngineer],
		counts[clean.LabelOther], counts[clean.LabelUnknown])
	return nil
}

// topUnmatched counts the trimmed raw titles of rows that classified as
// Other and returns the N most frequent, ties broken by first appearance so
// reruns stay deterministic.
func topUnmatched(src *table.Column, labels []string, n int) map[string]bool {
	counts := map[string]int{}
	var order []string
	for i, l := range labels {
		if l != clean.LabelOther {
			continue
		}
		raw := strings.TrimSpace(cellAt(src, i).Value)
		if raw == "" {
			continue
		}
		if counts[raw] == 0 {
			order = append(order, raw)
		}
		counts[raw]++
	}

	// stable sort over first-seen order keeps ties deterministic
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	if len(order) > n {
		order = order[:n]
	}
	keep := make(map[string]bool, len(order))
	for _, raw := range order {
		keep[raw] = true
	}
	return keep
}
