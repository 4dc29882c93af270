package report

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/ftw-report/constants"
)

// Fixed literals written into reports.
const (
	ReasonResignationReplaced = "Presentación reemplazado"
	RoleMissingAppointment    = "No se consigna rol por error de integracion"
	roleMissingCessationStem  = "aun no posee rol, alta tramitada por "
)

// Day and month accept one or two digits.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2006-1-2",
}

var reDateSeparator = regexp.MustCompile(`\s*([/.-])\s*`)

// IsValidDate reports whether s is a calendar date in one of the layouts printed on the form.
func IsValidDate(s string) bool {
	s = compactDate(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// compactDate trims s and drops spaces around date separators.
func compactDate(s string) string {
	return reDateSeparator.ReplaceAllString(strings.TrimSpace(s), "$1")
}

// SelectMode picks cessation when the cessation date holds a valid date, appointment otherwise.
func SelectMode(cessationDate string) constants.Mode {
	if IsValidDate(cessationDate) {
		return constants.ModeCessation
	}
	return constants.ModeAppointment
}

// ResolveExpediente prefers the cessation file number in cessation mode.
func ResolveExpediente(mode constants.Mode, appointmentFile, cessationFile string) string {
	if mode.IsCessation() {
		if c := strings.TrimSpace(cessationFile); c != "" {
			return c
		}
	}
	return strings.TrimSpace(appointmentFile)
}

// NormalizeCessationReason rewrites any reason starting with "presentacion"
// (case and accent insensitive) to ReasonResignationReplaced.
func NormalizeCessationReason(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(constants.Fold(raw), "presentacion") {
		return ReasonResignationReplaced
	}
	return raw
}

// IsNumericRole reports whether rol is a role number; dots and spaces are allowed as separators.
func IsNumericRole(rol string) bool {
	compact := strings.NewReplacer(".", "", " ", "").Replace(strings.TrimSpace(rol))
	if compact == "" {
		return false
	}
	for _, c := range compact {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ResolveRole applies the per-mode role fallbacks.
func ResolveRole(mode constants.Mode, rol, appointmentFile string) string {
	rol = strings.TrimSpace(rol)
	if mode.IsCessation() {
		if IsNumericRole(rol) {
			return rol
		}
		return roleMissingCessationStem + strings.TrimSpace(appointmentFile)
	}
	if rol == "" {
		return RoleMissingAppointment
	}
	return rol
}

// ReviewStatusCode maps a designation to its code. Codes already in "2", "3" or "4" form
// are accepted as is. ok is false when the value was passed through unmapped.
func ReviewStatusCode(designation string) (string, bool) {
	raw := strings.TrimSpace(designation)
	switch constants.ReviewStatus(raw) {
	case constants.ReviewStatusTitular, constants.ReviewStatusInterino, constants.ReviewStatusSuplente:
		return raw, true
	}
	code, ok := constants.ReviewStatusFor(raw)
	return string(code), ok
}

// ComposeReplaced joins the non-empty parts of the covered teacher's data with ", ".
func ComposeReplaced(name, cuil, reason string) string {
	return joinNonEmpty(", ", name, cuil, reason)
}

// FormatYearDivision turns "Y / D / C / N" into "Y° D°", keeping only the non-empty leading
// year/division pair: "2 / 1 / /" -> "2° 1°", "3 / / /" -> "3°".
func FormatYearDivision(quad string) string {
	parts := strings.Split(quad, "/")
	var out []string
	for i := 0; i < len(parts) && i < 2; i++ {
		p := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(parts[i]), "°º"))
		if p == "" {
			break
		}
		out = append(out, p+"°")
	}
	return strings.Join(out, " ")
}

// HoursValue parses the teaching-hours field; "2,00" and "2.00" both read as 2.
func HoursValue(hours string) (float64, bool) {
	h := strings.ReplaceAll(strings.TrimSpace(hours), ",", ".")
	if h == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ComposePosition builds the position description:
// base, subject, then "<hours> hs" and the year/division ordinals only when hours > 0,
// all comma separated, and finally the shift after a single space.
func ComposePosition(base, subject, hours, yearDivision, shift string) string {
	parts := []string{strings.TrimSpace(base), strings.TrimSpace(subject)}
	if v, ok := HoursValue(hours); ok && v > 0 {
		parts = append(parts, strings.TrimSpace(hours)+" hs", FormatYearDivision(yearDivision))
	}
	out := joinNonEmpty(", ", parts...)
	return joinNonEmpty(" ", out, strings.TrimSpace(shift))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
