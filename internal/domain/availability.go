package domain

import "strings"

// CoerceAvailable maps a raw availability value onto a boolean. Booleans pass
// through; strings are matched by their trimmed lowercase form. Anything else,
// including null and missing values, is unavailable: unrecognized input must
// never default to "available".
func CoerceAvailable(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "true", "y", "1":
			return true
		case "no", "false", "n", "0":
			return false
		}
	}
	return false
}

// availableValue digs availability.available out of a raw record. Records
// carry availability as a nested object; a missing or malformed wrapper is
// treated the same as an unrecognized value.
func availableValue(r Raw) any {
	nested, ok := r["availability"].(map[string]any)
	if !ok {
		return nil
	}
	return nested["available"]
}
