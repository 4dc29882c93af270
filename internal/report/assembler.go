package report

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/ftw-report/constants"
	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/llm"
)

// Assembler validates oracle output and overlays the organization constants.
type Assembler struct {
	org Organization
	log *slog.Logger
}

func NewAssembler(org Organization, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{org: org, log: logger}
}

// reportPayload mirrors the report schema returned in directive mode.
type reportPayload struct {
	Expediente         string  `json:"expediente"`
	Fecha              string  `json:"fecha"`
	MotivoDeCese       *string `json:"motivoDeCese"`
	ReemplazaA         *string `json:"reemplazaA"`
	CUIL               string  `json:"cuil"`
	Rol                string  `json:"rol"`
	ApellidoYNombre    string  `json:"apellidoYNombre"`
	SituacionDeRevista string  `json:"situacionDeRevista"`
	CargoACubrir       string  `json:"cargoACubrir"`
}

// Assemble builds a Record from a directive-mode response (the report schema).
// The mode follows from which optional key carries a value; both set is rejected.
func (a *Assembler) Assemble(raw []byte) (Record, error) {
	if err := llm.ValidateJSONAgainstSchema(llm.BuildReportJSONSchema(), raw); err != nil {
		return Record{}, fmt.Errorf("assemble: %w", err)
	}
	var p reportPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Record{}, fmt.Errorf("assemble: decode: %w", err)
	}

	reason := llm.CleanValue(deref(p.MotivoDeCese))
	replaced := llm.CleanValue(deref(p.ReemplazaA))
	if reason != "" && replaced != "" {
		return Record{}, fmt.Errorf("assemble: %w", common.ErrAmbiguousMode)
	}

	mode := constants.ModeAppointment
	if reason != "" {
		mode = constants.ModeCessation
	}
	c := Candidate{
		Mode:                mode,
		ExpedienteID:        p.Expediente,
		TaxID:               p.CUIL,
		Role:                p.Rol,
		FullName:            p.ApellidoYNombre,
		ReviewStatus:        p.SituacionDeRevista,
		EffectiveDate:       p.Fecha,
		PositionDescription: p.CargoACubrir,
		ReplacedPerson:      replaced,
	}
	if mode.IsCessation() {
		c.CessationReason = NormalizeCessationReason(reason)
	}
	// A directive answer has no appointment file number for the cessation fallback.
	if llm.CleanValue(c.Role) == "" {
		if mode.IsCessation() {
			a.log.Warn("report.cessation_role_missing", "expediente", p.Expediente)
		} else {
			c.Role = ResolveRole(mode, "", p.Expediente)
		}
	}
	return a.FromCandidate(c)
}

// AssembleSource builds a Record from a rules-mode response (raw form values).
func (a *Assembler) AssembleSource(raw []byte) (Record, error) {
	if err := llm.ValidateJSONAgainstSchema(llm.BuildSourceJSONSchema(), raw); err != nil {
		return Record{}, fmt.Errorf("assemble: %w", err)
	}
	var f llm.SourceFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return Record{}, fmt.Errorf("assemble: decode: %w", err)
	}
	if f.FechaCese != "" && !IsValidDate(f.FechaCese) {
		a.log.Warn("report.cessation_date_ignored", "fecha_cese", f.FechaCese)
	}
	return a.FromCandidate(Derive(f))
}

// FromCandidate cleans c, enforces the mode invariant and overlays the organization.
func (a *Assembler) FromCandidate(c Candidate) (Record, error) {
	c = cleanCandidate(c)

	switch c.Mode {
	case constants.ModeAppointment, constants.ModeCessation:
	default:
		return Record{}, fmt.Errorf("assemble: unknown mode %q: %w", c.Mode, common.ErrInvalidInput)
	}
	if c.Mode.IsCessation() && c.ReplacedPerson != "" {
		return Record{}, fmt.Errorf("assemble: %w", common.ErrAmbiguousMode)
	}
	if !c.Mode.IsCessation() && c.CessationReason != "" {
		return Record{}, fmt.Errorf("assemble: %w", common.ErrAmbiguousMode)
	}

	v := common.NewValidator().
		Field("expediente", c.ExpedienteID, common.Required).
		Field("cuil", c.TaxID, common.Required).
		Field("apellidoYNombre", c.FullName, common.Required).
		Field("fecha", c.EffectiveDate, common.Required).
		Field("cargoACubrir", c.PositionDescription, common.Required, common.MaxLength(1000))
	if err := v.Error(); err != nil {
		return Record{}, fmt.Errorf("assemble: %w", err)
	}

	if code, ok := ReviewStatusCode(c.ReviewStatus); ok {
		c.ReviewStatus = code
	} else {
		a.log.Warn("report.review_status_unmapped", "value", c.ReviewStatus)
	}
	if bad := common.NewValidator().Field("cuil", c.TaxID, common.CUIL); bad.HasErrors() {
		a.log.Warn("report.cuil_suspicious", "cuil", c.TaxID)
	}

	rec := Record{
		Mode:                c.Mode,
		ExpedienteID:        c.ExpedienteID,
		Establishment:       a.org.Establishment,
		Phone:               a.org.Phone,
		Delegation:          a.org.Delegation,
		Division:            a.org.Division,
		TaxID:               c.TaxID,
		Role:                c.Role,
		FullName:            c.FullName,
		ReviewStatus:        c.ReviewStatus,
		EffectiveDate:       c.EffectiveDate,
		PositionDescription: c.PositionDescription,
	}
	if c.Mode.IsCessation() {
		reason := c.CessationReason
		rec.CessationReason = &reason
	} else {
		replaced := c.ReplacedPerson
		rec.ReplacedPerson = &replaced
	}
	return rec, nil
}

func cleanCandidate(c Candidate) Candidate {
	c.ExpedienteID = llm.CleanValue(c.ExpedienteID)
	c.TaxID = llm.CleanValue(c.TaxID)
	c.Role = llm.CleanValue(c.Role)
	c.FullName = llm.CleanValue(c.FullName)
	c.ReviewStatus = llm.CleanValue(c.ReviewStatus)
	c.EffectiveDate = llm.CleanValue(c.EffectiveDate)
	c.PositionDescription = llm.CleanValue(c.PositionDescription)
	c.ReplacedPerson = llm.CleanValue(c.ReplacedPerson)
	c.CessationReason = llm.CleanValue(c.CessationReason)
	return c
}
