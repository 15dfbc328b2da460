package clean

import (
	"regexp"
	"strings"
)

// Location is the structured form of a free-text location cell. Empty string
// means "not derivable"; Raw keeps the original cell for diagnostics.
type Location struct {
	City    string
	State   string // 2-letter US state abbreviation
	Country string // 2-letter-ish country code
	Remote  bool
	Raw     Cell
}

var (
	locationSplitRe = regexp.MustCompile(`[,/|]+`)
	punctRe         = regexp.MustCompile(`[^\w\s]`)
)

// normalizeCountry maps a country token to a short code using countryCodes.
// Tokens that are already 2 alphabetic characters pass through upper-cased,
// even when meaningless ("XX"): real exports contain such codes and callers
// depend on them surviving. Returns "" only for blank tokens.
func normalizeCountry(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.TrimSpace(punctRe.ReplaceAllString(t, ""))
	if t == "" {
		return ""
	}
	if code, ok := countryCodes[t]; ok {
		return code
	}
	if len(t) == 2 && isAlpha(t) {
		return strings.ToUpper(t)
	}
	return strings.ToUpper(strings.TrimSpace(token))
}

// normalizeState maps a US state token to its 2-letter abbreviation, or ""
// when the token is not a known state. No fuzzy matching.
func normalizeState(token string) string {
	t := strings.TrimSpace(token)
	if t == "" {
		return ""
	}
	if up := strings.ToUpper(t); stateAbbrevs[up] {
		return up
	}
	if ab, ok := usStates[strings.ToLower(t)]; ok {
		return ab
	}
	return ""
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

// ParseLocation parses a location cell like "New York, NY, US", "Remote, US"
// or just "US" into its components. Total: malformed input produces an
// all-empty record, never an error.
//
// Country and state are only read off the tail of the token list. A single
// ambiguous token is never guessed to be a city or a state unless the
// position makes the reading evident.
func ParseLocation(cell Cell) Location {
	out := Location{Raw: cell}
	if cell.Null {
		return out
	}
	s := strings.TrimSpace(cell.Value)
	if s == "" {
		return out
	}

	var parts []string
	for _, p := range locationSplitRe.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return out
	}

	// "remote" anywhere marks the record and the exact tokens are dropped;
	// tokens that merely contain the word keep their other content.
	for _, p := range parts {
		l := strings.ToLower(p)
		if l == "remote" || strings.HasPrefix(l, "remote ") || strings.HasSuffix(l, " remote") {
			out.Remote = true
			break
		}
	}
	if out.Remote {
		kept := parts[:0]
		for _, p := range parts {
			if strings.ToLower(p) != "remote" {
				kept = append(kept, p)
			}
		}
		parts = kept
	}

	// country off the tail
	if len(parts) > 0 {
		last := parts[len(parts)-1]
		lastTrim := strings.TrimSpace(last)
		norm := normalizeCountry(last)
		_, mapped := countryCodes[strings.ToLower(lastTrim)]
		twoAlpha := len(lastTrim) == 2 && isAlpha(lastTrim)
		if norm != "" && (mapped || twoAlpha || norm != strings.ToUpper(lastTrim)) {
			out.Country = norm
			parts = parts[:len(parts)-1]
		}
	}

	// then state off the (new) tail
	if len(parts) > 0 {
		if ab := normalizeState(parts[len(parts)-1]); ab != "" {
			out.State = ab
			parts = parts[:len(parts)-1]
		}
	}

	if len(parts) > 0 {
		out.City = strings.TrimSpace(strings.Join(parts, ", "))
	}

	// a "city" that is really a bare country synonym becomes the country
	if out.City != "" && out.Country == "" {
		if code, ok := countryCodes[strings.ToLower(strings.TrimSpace(out.City))]; ok {
			out.Country = code
			out.City = ""
		}
	}

	return out
}
