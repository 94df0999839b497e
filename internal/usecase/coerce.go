package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/storefront/backend/internal/domain"
)

// ParseNumber converts a loosely-typed JSON value into a finite float64.
// Strings must hold a complete decimal number; NaN and Inf are rejected.
func ParseNumber(v any) (float64, error) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrNotNumeric, val.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrNotNumeric, val)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: %T", domain.ErrNotNumeric, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", domain.ErrNotNumeric, f)
	}
	return f, nil
}

// CoerceString renders scalars as strings. Absent and non-scalar values give ok=false.
func CoerceString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return canonicalNumber(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

// canonicalNumber renders a JSON number the same way whatever its spelling:
// integer literals keep every digit, anything else ("2.0", "1e3") goes through
// float64 so that 2.0 and 2 both give "2".
func canonicalNumber(n json.Number) string {
	s := n.String()
	if isIntegerLiteral(s) {
		if s == "-0" {
			return "0"
		}
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stringOr returns the string form of v, or fallback when v is absent or not a scalar
func stringOr(v any, fallback string) string {
	if s, ok := CoerceString(v); ok {
		return s
	}
	return fallback
}

// Truthy reports whether a JSON value counts as set: non-nil, non-empty string,
// non-zero number, true, or any object/array.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

// asObject returns v as a JSON object when it is one
func asObject(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case domain.RawRecord:
		return val, true
	default:
		return nil, false
	}
}
