package llm

import "context"

// Strategy selects who applies the decision procedure.
type Strategy string

const (
	// StrategyRules asks the oracle for raw form values; the rule engine derives the report.
	StrategyRules Strategy = "rules"
	// StrategyDirective asks the oracle to apply the decision procedure itself.
	StrategyDirective Strategy = "directive"
)

// SourceFields is the raw, underived content of an FTW form.
type SourceFields struct {
	ExpedienteAlta      string `json:"expedienteAlta"`           // section 4, TOMA DE POSESIÓN
	ExpedienteCese      string `json:"expedienteCese,omitempty"` // near section 5, CESE
	FechaAlta           string `json:"fechaAlta,omitempty"`
	FechaCese           string `json:"fechaCese,omitempty"`
	MotivoCese          string `json:"motivoCese,omitempty"`
	Rol                 string `json:"rol,omitempty"`
	CUIL                string `json:"cuil"`
	ApellidoYNombre     string `json:"apellidoYNombre"`
	CaracterDesignacion string `json:"caracterDesignacion"`
	CargoACubrir        string `json:"cargoACubrir"`
	Asignatura          string `json:"asignatura,omitempty"`
	HorasCatedra        string `json:"horasCatedra,omitempty"`
	AnioDivComNiv       string `json:"anioDivComNiv,omitempty"` // "Y / D / C / N"
	Turno               string `json:"turno,omitempty"`
	ReemplazadoNombre   string `json:"reemplazadoNombre,omitempty"`
	ReemplazadoCUIL     string `json:"reemplazadoCuil,omitempty"`
	MotivoCobertura     string `json:"motivoCobertura,omitempty"`
}

// ExtractRequest is everything the oracle receives for one document.
type ExtractRequest struct {
	Text         string
	SchemaName   string
	Schema       map[string]any
	Instructions string
	Strategy     Strategy
}

// FieldExtractor is the interface our pipeline depends on.
// Implementations return JSON that already validated against req.Schema.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) ([]byte /*rawJSON*/, error)
}
