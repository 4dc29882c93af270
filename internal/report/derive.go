package report

import (
	"github.com/joseph-ayodele/ftw-report/internal/llm"
)

// Derive applies the decision procedure to raw form values.
func Derive(f llm.SourceFields) Candidate {
	mode := SelectMode(f.FechaCese)
	c := Candidate{
		Mode:                mode,
		ExpedienteID:        ResolveExpediente(mode, f.ExpedienteAlta, f.ExpedienteCese),
		TaxID:               f.CUIL,
		Role:                ResolveRole(mode, f.Rol, f.ExpedienteAlta),
		FullName:            f.ApellidoYNombre,
		PositionDescription: ComposePosition(f.CargoACubrir, f.Asignatura, f.HorasCatedra, f.AnioDivComNiv, f.Turno),
	}
	c.ReviewStatus, _ = ReviewStatusCode(f.CaracterDesignacion)

	if mode.IsCessation() {
		c.EffectiveDate = compactDate(f.FechaCese)
		c.CessationReason = NormalizeCessationReason(f.MotivoCese)
	} else {
		c.EffectiveDate = f.FechaAlta
		c.ReplacedPerson = ComposeReplaced(f.ReemplazadoNombre, f.ReemplazadoCUIL, f.MotivoCobertura)
	}
	return c
}
