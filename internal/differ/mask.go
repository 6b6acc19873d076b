package differ

import "strings"

// maskedLiteral replaces every sensitive value surfaced in human-readable
// summaries.
const maskedLiteral = "[MASKED]"

// defaultSensitiveKeys are matched as substrings of lowercased key names.
// Callers can extend the list but never shrink it.
var defaultSensitiveKeys = []string{
	"password",
	"token",
	"secret",
	"api_key",
	"auth",
	"credential",
}

// maskValue returns a deep copy of v with every value under a sensitive key
// replaced by the mask literal. Matching recurses through nested objects and
// through lists, since list elements may themselves be objects. The input is
// never modified.
func maskValue(v any, sensitiveKeys []string) any {
	switch t := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(t))
		for key, value := range t {
			if isSensitiveKey(key, sensitiveKeys) {
				masked[key] = maskedLiteral
				continue
			}
			masked[key] = maskValue(value, sensitiveKeys)
		}
		return masked
	case []any:
		masked := make([]any, len(t))
		for i, value := range t {
			masked[i] = maskValue(value, sensitiveKeys)
		}
		return masked
	default:
		return v
	}
}

func isSensitiveKey(key string, sensitiveKeys []string) bool {
	lowered := strings.ToLower(key)
	for _, needle := range sensitiveKeys {
		if strings.Contains(lowered, needle) {
			return true
		}
	}
	return false
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
