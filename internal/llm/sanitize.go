package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// NormalizeAndSanitizeJSON turns model output into a document that can be validated
// against schema:
// - Recovers JSON wrapped in markdown fences or surrounding prose
// - Drops null values and empty optionals
// - Coerces numbers/booleans to strings (every form field is a string)
// - Removes unknown keys (additionalProperties = false friendliness)
// - Trims strings and folds embedded line breaks into spaces
func NormalizeAndSanitizeJSON(content string, schema map[string]any, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	obj, err := parseJSONObject(content)
	if err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	allowed := SchemaProperties(schema)
	required := SchemaRequired(schema)
	dropped := make([]string, 0, 4)

	for k, v := range obj {
		if _, ok := allowed[k]; !ok {
			delete(obj, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		_, isRequired := required[k]
		switch t := v.(type) {
		case nil:
			delete(obj, k)
			dropped = append(dropped, k+"(null)")
		case string:
			s := CleanValue(t)
			if s == "" && !isRequired {
				delete(obj, k)
				dropped = append(dropped, k+"(empty)")
				continue
			}
			obj[k] = s
		case float64:
			obj[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			obj[k] = strconv.FormatBool(t)
		default:
			// unexpected type -> drop
			delete(obj, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	out, err := json.Marshal(obj)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Debug("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// CleanValue trims s and folds line breaks and whitespace runs into single spaces.
func CleanValue(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseJSONObject(content string) (map[string]any, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty structured output")
	}

	candidates := []string{content}
	if stripped := stripCodeFences(content); stripped != "" {
		candidates = append(candidates, stripped)
	}
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start >= 0 && end > start {
		candidates = append(candidates, content[start:end+1])
	}

	var lastErr error
	for _, candidate := range candidates {
		var obj map[string]any
		if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
			lastErr = err
			continue
		}
		if obj == nil {
			lastErr = fmt.Errorf("structured output is not an object")
			continue
		}
		return obj, nil
	}
	return nil, lastErr
}

func stripCodeFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return ""
	}
	lines = lines[1:]
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
