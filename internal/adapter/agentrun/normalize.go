package agentrun

import (
	"encoding/json"
	"strings"
)

// EmptyOutput is shown when the backend replies without any usable result.
const EmptyOutput = "No result returned from server."

// Normalize converts a raw response body into display text.
//
// A bare JSON string is used verbatim. An object carrying a string "result"
// field yields that field. Any other JSON value is pretty-printed. A body
// that is not valid JSON is used as-is. Whitespace-only outcomes collapse
// to EmptyOutput.
func Normalize(body []byte) string {
	text := normalize(body)
	if strings.TrimSpace(text) == "" {
		return EmptyOutput
	}
	return text
}

func normalize(body []byte) string {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}

	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if res, ok := val["result"].(string); ok {
			return res
		}
	}

	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(body)
	}
	return string(pretty)
}
