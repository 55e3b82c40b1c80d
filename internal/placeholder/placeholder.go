// Package placeholder fills the date placeholders of a Hugo archetype with a
// fixed timestamp. Only two token shapes are recognised; anything else in the
// text, including other {{ }} actions, is passed through untouched.
package placeholder

import "regexp"

var patterns = []*regexp.Regexp{
	// {{ .Date }}
	regexp.MustCompile(`\{\{\s*\.Date\s*\}\}`),
	// {{ now.Format "2006-01-02T15:04:05-07:00" }}
	regexp.MustCompile(`\{\{\s*now\.Format\s+"2006-01-02T15:04:05-07:00"\s*\}\}`),
}

// Substitute replaces every recognised date placeholder in tmpl with isoDate.
func Substitute(tmpl, isoDate string) string {
	out := tmpl
	for _, re := range patterns {
		out = re.ReplaceAllLiteralString(out, isoDate)
	}
	return out
}

// Count returns how many recognised placeholders tmpl contains.
func Count(tmpl string) int {
	n := 0
	for _, re := range patterns {
		n += len(re.FindAllStringIndex(tmpl, -1))
	}
	return n
}
