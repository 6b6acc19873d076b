package domain

import (
	"fmt"
	"strconv"
)

// Stringify formats a loosely-typed wire value for display and identity keys.
// JSON numbers (float64) print without a trailing ".0" so that a version of 1
// reads "1", not "1.000000".
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
