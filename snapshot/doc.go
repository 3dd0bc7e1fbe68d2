// Package snapshot serializes chart options, including the encoded series, into
// a compact binary form so a chart definition can be cached or shipped and
// rendered later without the original samples.
//
// # Layout
//
//	offset  size  field
//	0       2     magic "CL"
//	2       1     version (1)
//	3       1     flags (bit 0: big-endian integers)
//	4       1     payload compression (format.CompressionType)
//	5       3     reserved, zero
//	8       4     payload length
//	12      4     CRC-32 (IEEE) of the payload
//	16      n     payload: compressed YAML document of config.Options
//
// # Usage
//
//	data, err := snapshot.Encode(opts, snapshot.WithCompression(format.CompressionS2))
//	...
//	restored, err := snapshot.Decode(data)
package snapshot
