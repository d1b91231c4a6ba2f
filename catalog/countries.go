package catalog

import "strings"

// countrySynonyms maps lower-cased free-text country spellings to the
// board-list name they stand for.
var countrySynonyms = map[string]string{
	"us":                       "United States",
	"usa":                      "United States",
	"u.s.":                     "United States",
	"u.s.a.":                   "United States",
	"united states of america": "United States",
	"uk":                       "United Kingdom",
	"u.k.":                     "United Kingdom",
	"great britain":            "United Kingdom",
	"brasil":                   "Brazil",
	"uae":                      "United Arab Emirates",
	"holland":                  "Netherlands",
	"deutschland":              "Germany",
	"south korea":              "Korea",
	"republic of korea":        "Korea",
}

// Canonicalize maps free-text country input to its canonical board-list
// name. Unrecognized input comes back trimmed but otherwise unchanged; the
// caller decides whether it names a real list. Empty input stays empty.
func Canonicalize(country string) string {
	raw := strings.TrimSpace(country)
	if raw == "" {
		return ""
	}
	if canonical, ok := countrySynonyms[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}
