// Package encoding implements the simple text encoding used by the chd query
// parameter of the chart image service.
//
// Each value is mapped to a single character of SimpleAlphabet according to its
// position between zero and the largest value of the series:
//
//	pos := round(61 * v / max)
//
// Negative and non-numeric values are written as the '_' sentinel, which the
// chart service renders as a missing point. A series whose largest value is
// zero encodes every numeric value as 'A'.
//
// # Usage
//
//	encoded, err := encoding.SimpleEncodeFloats([]float64{0, 61, 30})
//	// encoded == "A9e"
//
// Values coming from untyped sources (decoded YAML or JSON, form input) are
// converted with ValueOf, which decides once at the boundary whether a value is
// a number:
//
//	enc := encoding.NewSimpleEncoder()
//	for _, raw := range row {
//	    enc.Write(encoding.ValueOf(raw))
//	}
//	encoded, err := enc.Finish()
//
// The encoding is lossy: 62 levels per value. No decoder is provided.
package encoding
