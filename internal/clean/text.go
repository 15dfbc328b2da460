package clean

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text collapses runs of whitespace (including NBSP) into single spaces and
// trims the result.
func Text(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripMarkup extracts the visible text from a cell that was scraped with
// HTML fragments still in it. Plain-text cells pass through untouched.
func StripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return Text(s)
	}
	return Text(doc.Text())
}
