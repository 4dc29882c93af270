// Package report turns extracted form values into the report record shown, copied and exported.
package report

import (
	"strings"

	"github.com/joseph-ayodele/ftw-report/constants"
)

// Organization holds the fixed values stamped on every report; they never come from the document.
type Organization struct {
	Establishment string
	Phone         string
	Delegation    string
	Division      string
}

// Record is the assembled report for one analyzed document.
// Exactly one of ReplacedPerson and CessationReason is non-nil, matching Mode.
type Record struct {
	Mode                constants.Mode `json:"modo"`
	ExpedienteID        string         `json:"expediente"`
	Establishment       string         `json:"establecimiento"`
	Phone               string         `json:"telefono"`
	Delegation          string         `json:"delegacion"`
	Division            string         `json:"reparticion"`
	TaxID               string         `json:"cuil"`
	Role                string         `json:"rol"`
	FullName            string         `json:"apellidoYNombre"`
	ReviewStatus        string         `json:"situacionDeRevista"`
	EffectiveDate       string         `json:"fecha"`
	PositionDescription string         `json:"cargoACubrir"`
	ReplacedPerson      *string        `json:"reemplazaA,omitempty"`
	CessationReason     *string        `json:"motivoDeCese,omitempty"`
}

// Candidate is a mode-tagged set of derived values before the organization overlay.
// Only the optional field that belongs to Mode is meaningful.
type Candidate struct {
	Mode                constants.Mode
	ExpedienteID        string
	TaxID               string
	Role                string
	FullName            string
	ReviewStatus        string
	EffectiveDate       string
	PositionDescription string
	ReplacedPerson      string
	CessationReason     string
}

// IsCessation reports whether the record describes a cessation.
func (r Record) IsCessation() bool { return r.Mode.IsCessation() }

// ModeValue returns the mode-dependent optional value (reason or replaced person).
func (r Record) ModeValue() string {
	if r.IsCessation() {
		return deref(r.CessationReason)
	}
	return deref(r.ReplacedPerson)
}

// FileStem is "Informe-<name with whitespace as _>-<cuil>", the base name of exported files.
func (r Record) FileStem() string {
	name := strings.Map(func(c rune) rune {
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return '_'
		}
		return c
	}, r.FullName)
	return "Informe-" + name + "-" + r.TaxID
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
