package clean

// countryCodes maps lowercased country names and abbreviations to a 2-letter
// code. Small on purpose: these are the variants that actually show up in
// scraped listing exports.
var countryCodes = map[string]string{
	"us":                       "US",
	"usa":                      "US",
	"united states":            "US",
	"united states of america": "US",
	"uk":             "UK",
	"gb":             "UK",
	"united kingdom": "UK",
	"england":        "UK",
	"canada":         "CA",
	"ca":             "CA",
	"australia":      "AU",
	"au":             "AU",
	"india":          "IN",
	"in":             "IN",
}

// usStates maps lowercased US state names to their 2-letter abbreviations.
var usStates = map[string]string{
	"alabama":        "AL",
	"alaska":         "AK",
	"arizona":        "AZ",
	"arkansas":       "AR",
	"california":     "CA",
	"colorado":       "CO",
	"connecticut":    "CT",
	"delaware":       "DE",
	"florida":        "FL",
	"georgia":        "GA",
	"hawaii":         "HI",
	"idaho":          "ID",
	"illinois":       "IL",
	"indiana":        "IN",
	"iowa":           "IA",
	"kansas":         "KS",
	"kentucky":       "KY",
	"louisiana":      "LA",
	"maine":          "ME",
	"maryland":       "MD",
	"massachusetts":  "MA",
	"michigan":       "MI",
	"minnesota":      "MN",
	"mississippi":    "MS",
	"missouri":       "MO",
	"montana":        "MT",
	"nebraska":       "NE",
	"nevada":         "NV",
	"new hampshire":  "NH",
	"new jersey":     "NJ",
	"new mexico":     "NM",
	"new york":       "NY",
	"north carolina": "NC",
	"north dakota":   "ND",
	"ohio":           "OH",
	"oklahoma":       "OK",
	"oregon":         "OR",
	"pennsylvania":   "PA",
	"rhode island":   "RI",
	"south carolina": "SC",
	"south dakota":   "SD",
	"tennessee":      "TN",
	"texas":          "TX",
	"utah":           "UT",
	"vermont":        "VT",
	"virginia":       "VA",
	"washington":     "WA",
	"west virginia":  "WV",
	"wisconsin":      "WI",
	"wyoming":        "WY",
	// DC and friends
	"district of columbia": "DC",
	"washington dc":        "DC",
	"dc":                   "DC",
}

var stateAbbrevs = func() map[string]bool {
	set := make(map[string]bool, len(usStates))
	for _, ab := range usStates {
		set[ab] = true
	}
	return set
}()
