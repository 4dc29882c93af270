package constants

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ReviewStatus is the "situación de revista" code reported for the proposed teacher.
type ReviewStatus string

const (
	ReviewStatusTitular  ReviewStatus = "2"
	ReviewStatusInterino ReviewStatus = "3"
	ReviewStatusSuplente ReviewStatus = "4"
)

var designations = map[string]ReviewStatus{
	"titular":  ReviewStatusTitular,
	"interino": ReviewStatusInterino,
	"suplente": ReviewStatusSuplente,
}

// ReviewStatusFor maps a "carácter de la designación" value to its code.
// Unknown values come back trimmed and unchanged with ok=false.
func ReviewStatusFor(designation string) (ReviewStatus, bool) {
	raw := strings.TrimSpace(designation)
	if code, ok := designations[Fold(raw)]; ok {
		return code, true
	}
	return ReviewStatus(raw), false
}

// Fold lowercases s and strips diacritics, so "INTERÍNO" and "interino" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
