package llm

import (
	"strings"
)

const documentPreamble = `Analyze the following OCR text from a two-page document about a teacher appointment in Argentina.
Extract ONLY the information required by the provided schema and return it as a JSON object.`

const definitions = `**Definitions for clarity:**
*   **Expediente de Alta**: The file number located in section '4. TOMA DE POSESIÓN'.
*   **Expediente de Cese**: A file number that might appear directly under or associated with section '5. CESE'.`

// decisionProcedure is the field-derivation rule set the oracle applies in directive mode.
// internal/report implements the same rules for the rules strategy; keep both in step.
const decisionProcedure = `**Primary Logic Path:**
1.  **Check for Cessation ('CESE')**: First, look at section '5. CESE'. If the 'FECHA DE CESE' field contains a valid date, you are reporting a cessation.
2.  **If Reporting a Cessation**:
    *   **expediente**: Look for an 'Expediente de Cese'. If found, use it. If not found, use the 'Expediente de Alta'.
    *   **fecha**: Use the date from 'FECHA DE CESE'.
    *   **motivoDeCese**: Extract the text from 'MOTIVO DE CESE'. **IMPORTANT**: If the extracted value starts with 'presentacion' (case-insensitive), the final value MUST be 'Presentación reemplazado'.
    *   **rol**: Extract the 'Rol:' value. **CRITICAL**: If the value is not a number (i.e., it is empty or not present), you MUST replace the final value with a string formatted as: "aun no posee rol, alta tramitada por [Expediente de Alta]". For example: "aun no posee rol, alta tramitada por E.E. - 34142629 - 2025 - ESC200866".
    *   **reemplazaA**: This field must be null or omitted.
3.  **If NOT Reporting a Cessation** (i.e., 'FECHA DE CESE' is empty):
    *   **expediente**: Use the 'Expediente de Alta' (e.g., 'E.E. - 34142629 - 2025 - ESC200866').
    *   **fecha**: Use the date from 'FECHA' in section '4. TOMA DE POSESIÓN'.
    *   **reemplazaA**: Extract the information about the person being replaced (usually labeled 'DOCENTE INTERINO' or 'DOCENTE TITULAR'). Combine their name, CUIL, and the reason for coverage ('MOTIVO DE LA COBERTURA').
    *   **motivoDeCese**: This field must be null or omitted.
    *   **rol**: Look for a value next to 'Rol:'. If it is missing or empty, return the exact string 'No se consigna rol por error de integracion'.

**Other extraction rules (apply in both cases unless overridden above):**
*   **Situación de revista**: Use the 'CARÁCTER DE LA DESIGNACIÓN' value for the proposed teacher and map it as follows: 'SUPLENTE' becomes '4', 'INTERINO' becomes '3', 'TITULAR' becomes '2'.
*   **Cargo a cubrir**: Create a single, clean, comma-separated string following these exact formatting rules:
    a. Start with the value from 'CARGO A CUBRIR'.
    b. If 'ASIGNATURA' has a value, append it.
    c. **Conditional Logic**: If 'HORAS CÁTEDRA A CUBRIR' has a numeric value **greater than 0** (e.g., '2.00'):
        i. Append the numeric value followed immediately by ' hs'. For example, '2.00' becomes '2.00 hs'.
        ii. After appending the hours, check for 'AÑO / DIV / COM / NIV'. If it has values like '2 / 1 / /', format and append it as '2° 1°'. Use the degree symbol (°).
        **IMPORTANT: The 'AÑO / DIV / COM / NIV' part should ONLY be added if 'HORAS CÁTEDRA A CUBRIR' has a value greater than 0.**
    d. Append the 'Turno' value at the very end.
    e. The final string must not include any field labels. Example (with hours): 'PROFESOR DE EDUCACIÓN MEDIA, EDUCACIÓN TECNOLÓGICA, 2.00 hs, 2° 1° Turno Tarde'. Example (without hours): 'MAESTRO DE MATERIAS ESPECIALES TECNOLOGÍAS, DISEÑO Y PROGRAMACIÓN (EDUCACIÓN SUPERIOR) Turno TARDE'.`

const transcriptionRules = `**Transcription rules:**
*   Copy every value exactly as printed: do not translate, reformat, map codes or combine fields.
*   The 'DOCENTE PROPUESTO' is the teacher being appointed; the 'DOCENTE INTERINO' or 'DOCENTE TITULAR' is the teacher being covered.
*   If a field is blank, omit it. Never output null.
*   'FECHA DE CESE' must be omitted unless section '5. CESE' shows a date.`

// BuildDecisionProcedure composes the directive-mode instructions: the full decision
// procedure followed by the document text.
func BuildDecisionProcedure(text string) string {
	parts := []string{
		documentPreamble,
		definitions,
		decisionProcedure,
		documentBlock(text),
	}
	return strings.Join(parts, "\n\n")
}

// BuildSourceInstructions composes the rules-mode instructions: transcribe raw values only.
func BuildSourceInstructions(text string) string {
	parts := []string{
		documentPreamble,
		definitions,
		transcriptionRules,
		documentBlock(text),
	}
	return strings.Join(parts, "\n\n")
}

func documentBlock(text string) string {
	var b strings.Builder
	b.WriteString("Here is the document text:\n---\n")
	b.WriteString(strings.TrimSpace(text))
	b.WriteString("\n---")
	return b.String()
}

// BuildExtractRequest packages text, schema and instructions for one oracle call.
// Unknown strategies fall back to StrategyRules.
func BuildExtractRequest(text string, strategy Strategy) ExtractRequest {
	if strategy == StrategyDirective {
		return ExtractRequest{
			Text:         text,
			SchemaName:   ReportSchemaName,
			Schema:       BuildReportJSONSchema(),
			Instructions: BuildDecisionProcedure(text),
			Strategy:     StrategyDirective,
		}
	}
	return ExtractRequest{
		Text:         text,
		SchemaName:   SourceSchemaName,
		Schema:       BuildSourceJSONSchema(),
		Instructions: BuildSourceInstructions(text),
		Strategy:     StrategyRules,
	}
}
