package llm

// Schema names sent along with structured-output requests.
const (
	ReportSchemaName = "ftw_report"
	SourceSchemaName = "ftw_source_fields"
)

// ReportRequired lists the report keys the oracle must always return.
var ReportRequired = []string{
	"expediente", "fecha", "cuil", "rol", "apellidoYNombre", "situacionDeRevista", "cargoACubrir",
}

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the oracle as a structured output constraint and also use it locally to validate.
func BuildReportJSONSchema() map[string]any {
	props := map[string]any{
		"expediente":         stringProp("The full 'Número de Expediente'. Its source depends on the logic path."),
		"fecha":              stringProp("The relevant date. If 'FECHA DE CESE' in section '5. CESE' has a date, use it. Otherwise, use the 'FECHA' from section '4. TOMA DE POSESIÓN'."),
		"motivoDeCese":       stringProp("The reason for cessation, from 'MOTIVO DE CESE' in section '5. CESE'. This should ONLY be populated if 'FECHA DE CESE' has a date."),
		"reemplazaA":         stringProp("The person being replaced. This should ONLY be populated if 'FECHA DE CESE' is empty. Combine name, CUIL, and reason from 'DOCENTE INTERINO'/'TITULAR'."),
		"cuil":               stringProp("The CUIL of the proposed teacher ('DOCENTE PROPUESTO')."),
		"rol":                stringProp("The role of the proposed teacher. Its value depends on the logic path."),
		"apellidoYNombre":    stringProp("Full name of the proposed teacher ('DOCENTE PROPUESTO')."),
		"situacionDeRevista": stringProp("Based on 'CARÁCTER DE LA DESIGNACIÓN'. Map 'SUPLENTE' to '4', 'INTERINO' to '3', and 'TITULAR' to '2'."),
		"cargoACubrir":       stringProp("A detailed job description. Combine 'CARGO A CUBRIR', 'ASIGNATURA', 'HORAS CÁTEDRA A CUBRIR', 'AÑO / DIV / COM / NIV', and 'Turno'. Formatting rules are critical: after the hours value (e.g., '2.00'), append ' hs'. For the 'AÑO / DIV' part (e.g., '2 / 1 / /'), format it as '2° 1°'. The final string must be a clean, comma-separated list, e.g., 'PROFESOR DE EDUCACIÓN MEDIA, EDUCACIÓN TECNOLÓGICA, 2.00 hs, 2° 1° Turno Tarde'."),
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             ReportRequired,
	}
}

// BuildSourceJSONSchema describes the raw form values, transcribed without derivation.
func BuildSourceJSONSchema() map[string]any {
	props := map[string]any{
		"expedienteAlta":      stringProp("'Número de Expediente' in section '4. TOMA DE POSESIÓN' (Expediente de Alta), verbatim."),
		"expedienteCese":      stringProp("A file number under or associated with section '5. CESE' (Expediente de Cese). Omit if absent."),
		"fechaAlta":           stringProp("'FECHA' in section '4. TOMA DE POSESIÓN', verbatim."),
		"fechaCese":           stringProp("'FECHA DE CESE' in section '5. CESE', verbatim. Omit if the field is blank."),
		"motivoCese":          stringProp("'MOTIVO DE CESE' in section '5. CESE', verbatim."),
		"rol":                 stringProp("Value next to 'Rol:' for the proposed teacher, verbatim. Omit if blank."),
		"cuil":                stringProp("CUIL of the 'DOCENTE PROPUESTO'."),
		"apellidoYNombre":     stringProp("Full name (apellido y nombre) of the 'DOCENTE PROPUESTO'."),
		"caracterDesignacion": stringProp("'CARÁCTER DE LA DESIGNACIÓN' of the proposed teacher, verbatim (e.g. 'SUPLENTE')."),
		"cargoACubrir":        stringProp("'CARGO A CUBRIR', verbatim."),
		"asignatura":          stringProp("'ASIGNATURA', verbatim. Omit if blank."),
		"horasCatedra":        stringProp("'HORAS CÁTEDRA A CUBRIR', verbatim (e.g. '2.00' or '0')."),
		"anioDivComNiv":       stringProp("'AÑO / DIV / COM / NIV' exactly as printed, keeping the slashes (e.g. '2 / 1 / /')."),
		"turno":               stringProp("'Turno' value, verbatim (e.g. 'Turno Tarde')."),
		"reemplazadoNombre":   stringProp("Name of the teacher being covered ('DOCENTE INTERINO' or 'DOCENTE TITULAR')."),
		"reemplazadoCuil":     stringProp("CUIL of the teacher being covered."),
		"motivoCobertura":     stringProp("'MOTIVO DE LA COBERTURA', verbatim."),
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"expedienteAlta", "cuil", "apellidoYNombre", "caracterDesignacion", "cargoACubrir"},
	}
}

func stringProp(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

// SchemaProperties returns the property names declared by schema.
func SchemaProperties(schema map[string]any) map[string]struct{} {
	out := make(map[string]struct{})
	props, _ := schema["properties"].(map[string]any)
	for k := range props {
		out[k] = struct{}{}
	}
	return out
}

// SchemaRequired returns the required property names declared by schema.
func SchemaRequired(schema map[string]any) map[string]struct{} {
	out := make(map[string]struct{})
	switch req := schema["required"].(type) {
	case []string:
		for _, k := range req {
			out[k] = struct{}{}
		}
	case []any:
		for _, k := range req {
			if s, ok := k.(string); ok {
				out[s] = struct{}{}
			}
		}
	}
	return out
}
