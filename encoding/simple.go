package encoding

import (
	"math"
	"strings"

	"github.com/arloliu/chartlink/errs"
)

const (
	// SimpleAlphabet holds the 62 symbols of the simple encoding, lowest first.
	SimpleAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// SimpleMissing is written for negative or non-numeric values.
	SimpleMissing = '_'

	simpleMaxPos = len(SimpleAlphabet) - 1
)

// SimpleEncoder accumulates series values and encodes them with the simple encoding.
//
// The largest value of the whole series is needed before the first character can
// be produced, so values are buffered until Finish.
type SimpleEncoder struct {
	values []Value
	maxVal float64
	hasNum bool
}

// NewSimpleEncoder creates an empty SimpleEncoder.
func NewSimpleEncoder() *SimpleEncoder {
	return &SimpleEncoder{
		values: make([]Value, 0, 32),
	}
}

// Write appends a single value.
func (e *SimpleEncoder) Write(v Value) {
	e.values = append(e.values, v)
	if f, ok := v.Float(); ok && (!e.hasNum || f > e.maxVal) {
		e.maxVal = f
		e.hasNum = true
	}
}

// WriteSlice appends multiple values.
func (e *SimpleEncoder) WriteSlice(values []Value) {
	for _, v := range values {
		e.Write(v)
	}
}

// Len returns the number of values written.
func (e *SimpleEncoder) Len() int {
	return len(e.values)
}

// Reset discards all written values.
func (e *SimpleEncoder) Reset() {
	e.values = e.values[:0]
	e.maxVal = 0
	e.hasNum = false
}

// Finish encodes the written values.
//
// The result has exactly one character per written value. Returns
// errs.ErrEmptyValues if no value was written.
func (e *SimpleEncoder) Finish() (string, error) {
	if len(e.values) == 0 {
		return "", errs.ErrEmptyValues
	}

	var sb strings.Builder
	sb.Grow(len(e.values))
	for _, v := range e.values {
		sb.WriteByte(e.symbol(v))
	}

	return sb.String(), nil
}

func (e *SimpleEncoder) symbol(v Value) byte {
	f, ok := v.Float()
	if !ok || f < 0 {
		return SimpleMissing
	}

	// max == 0 means every non-negative value is zero: 0/0 maps to position 0.
	if e.maxVal <= 0 {
		return SimpleAlphabet[0]
	}

	// 61*f overflows near the top of the float64 range; scale the ratio there.
	scaled := float64(simpleMaxPos) * f
	if math.IsInf(scaled, 0) {
		scaled = float64(simpleMaxPos) * (f / e.maxVal)
	} else {
		scaled /= e.maxVal
	}

	pos := int(math.Round(min(max(scaled, 0), float64(simpleMaxPos))))

	return SimpleAlphabet[pos]
}

// SimpleEncode encodes values with the simple encoding.
//
// Returns errs.ErrEmptyValues if values is empty.
func SimpleEncode(values []Value) (string, error) {
	enc := SimpleEncoder{values: make([]Value, 0, len(values))}
	enc.WriteSlice(values)

	return enc.Finish()
}

// SimpleEncodeFloats encodes a float64 series with the simple encoding.
//
// NaN and infinite values are written as the missing-data sentinel.
func SimpleEncodeFloats(values []float64) (string, error) {
	return SimpleEncode(Floats(values))
}
