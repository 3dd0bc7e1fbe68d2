package encoding

import (
	"math"
	"strconv"
	"strings"
)

// Value is a series value that is either a finite number or invalid.
//
// The zero Value is invalid.
type Value struct {
	num   float64
	valid bool
}

// Number returns a numeric Value. NaN and infinities yield an invalid Value.
func Number(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}

	return Value{num: v, valid: true}
}

// Invalid returns a Value that encodes as the missing-data sentinel.
func Invalid() Value {
	return Value{}
}

// Float returns the numeric value and whether the Value is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.valid
}

// IsValid reports whether v is a number.
func (v Value) IsValid() bool {
	return v.valid
}

// ValueOf converts an untyped value into a Value.
//
// Go numeric types are numbers. Strings are numbers when, after trimming
// surrounding whitespace, they parse as a float64. Everything else, including
// nil and booleans, is invalid.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case Value:
		return v
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int8:
		return Number(float64(v))
	case int16:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint8:
		return Number(float64(v))
	case uint16:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Invalid()
		}

		return Number(f)
	default:
		return Invalid()
	}
}

// Floats converts a float64 slice into Values.
func Floats(values []float64) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Number(v)
	}

	return out
}
