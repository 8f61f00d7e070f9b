package exifn

import "math"

// Low-level byte readers. Multi-byte values are assembled byte by byte
// according to the endianness flag (le=true for little-endian, i.e. the
// least significant byte first). Callers are responsible for making sure
// the raw slice is long enough; these functions never length-check.

func readU16(le bool, raw []byte) uint16 {
	if le {
		return uint16(raw[0]) | uint16(raw[1])<<8
	}

	return uint16(raw[0])<<8 | uint16(raw[1])
}

func readI16(le bool, raw []byte) int16 {
	return int16(readU16(le, raw))
}

func readU32(le bool, raw []byte) uint32 {
	if le {
		return uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	}

	return uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3])
}

func readI32(le bool, raw []byte) int32 {
	return int32(readU32(le, raw))
}

// readF32 builds the float from its IEEE-754 bit pattern instead of
// reinterpreting raw memory, so the result does not depend on the host
// float representation.
func readF32(le bool, raw []byte) float32 {
	return math.Float32frombits(readU32(le, raw))
}

func readF64(le bool, raw []byte) float64 {
	var bits uint64
	if le {
		bits = uint64(readU32(le, raw[0:4])) | uint64(readU32(le, raw[4:8]))<<32
	} else {
		bits = uint64(readU32(le, raw[0:4]))<<32 | uint64(readU32(le, raw[4:8]))
	}

	return math.Float64frombits(bits)
}

// readURational reads a numerator followed by a denominator, both 32-bit.
func readURational(le bool, raw []byte) URational {
	return URational{
		Numerator:   readU32(le, raw[0:4]),
		Denominator: readU32(le, raw[4:8]),
	}
}

func readIRational(le bool, raw []byte) IRational {
	return IRational{
		Numerator:   readI32(le, raw[0:4]),
		Denominator: readI32(le, raw[4:8]),
	}
}

func readI8Array(count uint32, raw []byte) []int8 {
	a := make([]int8, count)
	for i := range a {
		a[i] = int8(raw[i])
	}

	return a
}

func readU16Array(le bool, count uint32, raw []byte) []uint16 {
	a := make([]uint16, count)
	for i := range a {
		a[i] = readU16(le, raw[i*2:])
	}

	return a
}

func readI16Array(le bool, count uint32, raw []byte) []int16 {
	a := make([]int16, count)
	for i := range a {
		a[i] = readI16(le, raw[i*2:])
	}

	return a
}

func readU32Array(le bool, count uint32, raw []byte) []uint32 {
	a := make([]uint32, count)
	for i := range a {
		a[i] = readU32(le, raw[i*4:])
	}

	return a
}

func readI32Array(le bool, count uint32, raw []byte) []int32 {
	a := make([]int32, count)
	for i := range a {
		a[i] = readI32(le, raw[i*4:])
	}

	return a
}

func readF32Array(le bool, count uint32, raw []byte) []float32 {
	a := make([]float32, count)
	for i := range a {
		a[i] = readF32(le, raw[i*4:])
	}

	return a
}

func readF64Array(le bool, count uint32, raw []byte) []float64 {
	a := make([]float64, count)
	for i := range a {
		a[i] = readF64(le, raw[i*8:])
	}

	return a
}

func readURationalArray(le bool, count uint32, raw []byte) []URational {
	a := make([]URational, count)
	for i := range a {
		a[i] = readURational(le, raw[i*8:])
	}

	return a
}

func readIRationalArray(le bool, count uint32, raw []byte) []IRational {
	a := make([]IRational, count)
	for i := range a {
		a[i] = readIRational(le, raw[i*8:])
	}

	return a
}
