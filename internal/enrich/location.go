package enrich

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"jobclean/internal/clean"
	"jobclean/internal/table"
)

type LocationOptions struct {
	// Column is the raw location column (default "location").
	Column string

	// FillUnknown writes the Unknown placeholder into city/state nulls; the
	// location_missing flag still reflects the original cell.
	FillUnknown bool

	Workers int
}

// Locations parses the raw location column into location_city,
// location_state, location_country, is_remote, location_missing and
// location_display.
func Locations(t *table.Table, opts LocationOptions) error {
	if opts.Column == "" {
		opts.Column = "location"
	}
	src, err := t.Require(opts.Column)
	if err != nil {
		return err
	}

	recs := make([]clean.Location, t.Rows())
	forEachRow(t.Rows(), opts.Workers, func(i int) {
		recs[i] = clean.ParseLocation(cellAt(src, i))
	})

	city := t.StringColumn("location_city")
	state := t.StringColumn("location_state")
	country := t.StringColumn("location_country")
	remote := t.BoolColumn("is_remote")
	missing := t.BoolColumn("location_missing")
	display := t.StringColumn("location_display")

	var nRemote, nMissing int
	for i, rec := range recs {
		missing.SetBool(i, rec.Raw.Missing())
		if rec.Raw.Missing() {
			nMissing++
		}
		remote.SetBool(i, rec.Remote)
		if rec.Remote {
			nRemote++
		}

		if rec.City != "" {
			city.SetString(i, rec.City)
		} else if opts.FillUnknown {
			city.SetString(i, Unknown)
		}
		if rec.State != "" {
			state.SetString(i, rec.State)
		} else if opts.FillUnknown {
			state.SetString(i, Unknown)
		}
		if rec.Country != "" {
			country.SetString(i, rec.Country)
		}

		display.SetString(i, displayLabel(rec))
	}

	for _, c := range []*table.Column{city, state, country, display} {
		c.Compact()
	}

	log.Infof("[location] rows=%d remote=%d missing=%d", t.Rows(), nRemote, nMissing)
	return nil
}

// displayLabel builds the dashboard-friendly label: "Remote" wins, then
// whatever of city/state is real, then the country code, then Unknown. The
// placeholder never leaks into a joined "city, state" string.
func displayLabel(rec clean.Location) string {
	if rec.Remote {
		return "Remote"
	}
	var parts []string
	if rec.City != "" {
		parts = append(parts, rec.City)
	}
	if rec.State != "" {
		parts = append(parts, rec.State)
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if rec.Country != "" {
		return rec.Country
	}
	return Unknown
}
