// Package endian provides the byte order engines used for snapshot headers.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a
// header can be both appended and read back through one value:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, payloadLen)
//	n := engine.Uint32(buf[8:])
//
// Engines are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine reads and appends fixed-size integers in one byte order.
//
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine.AppendUint16(nil, 1)[0] == 0
}
