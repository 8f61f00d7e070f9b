package exifn

import (
	"fmt"
	"strings"
)

// TagValue is the decoded, strongly typed payload of an IFD entry. It is a
// closed set: every on-disk format code maps to exactly one variant, plus
// Undefined for opaque blobs, Unknown for unrecognized format codes and
// Invalid for payloads too short for their declared count.
type TagValue interface {
	fmt.Stringer

	// tagValue restricts implementations to this package.
	tagValue()
}

type (
	// U8s holds FormatU8 data.
	U8s []uint8
	// I8s holds FormatI8 data.
	I8s []int8
	// U16s holds FormatU16 data.
	U16s []uint16
	// I16s holds FormatI16 data.
	I16s []int16
	// U32s holds FormatU32 data.
	U32s []uint32
	// I32s holds FormatI32 data.
	I32s []int32
	// F32s holds FormatF32 data.
	F32s []float32
	// F64s holds FormatF64 data.
	F64s []float64
	// URationals holds FormatURational data.
	URationals []URational
	// IRationals holds FormatIRational data.
	IRationals []IRational
	// Ascii holds FormatAscii data with trailing NULs stripped.
	Ascii string
)

// Undefined is an opaque blob tagged with the endianness of its source, so
// renderers that discover internal structure (e.g. encoded-string preambles)
// can decode multi-byte content correctly.
type Undefined struct {
	Bytes []byte
	LE    bool
}

// Unknown is the payload of an entry whose format code is not a TIFF type.
type Unknown struct {
	Bytes []byte
	LE    bool
}

// Invalid is produced when the payload is shorter than count × element size.
// It keeps the raw bytes and the declared format/count for diagnostics.
type Invalid struct {
	Bytes  []byte
	LE     bool
	Format IfdFormat
	Count  uint32
}

func (U8s) tagValue()        {}
func (I8s) tagValue()        {}
func (U16s) tagValue()       {}
func (I16s) tagValue()       {}
func (U32s) tagValue()       {}
func (I32s) tagValue()       {}
func (F32s) tagValue()       {}
func (F64s) tagValue()       {}
func (URationals) tagValue() {}
func (IRationals) tagValue() {}
func (Ascii) tagValue()      {}
func (Undefined) tagValue()  {}
func (Unknown) tagValue()    {}
func (Invalid) tagValue()    {}

// toCSV renders a slice as a comma-space separated list, using each
// element's default formatting.
func toCSV[T any](v []T) string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, e)
	}

	return b.String()
}

func (v U8s) String() string  { return toCSV(v) }
func (v I8s) String() string  { return toCSV(v) }
func (v U16s) String() string { return toCSV(v) }
func (v I16s) String() string { return toCSV(v) }
func (v U32s) String() string { return toCSV(v) }
func (v I32s) String() string { return toCSV(v) }

func (v F32s) String() string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtFloat(float64(e)))
	}

	return b.String()
}

func (v F64s) String() string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtFloat(e))
	}

	return b.String()
}

func (v URationals) String() string { return toCSV(v) }
func (v IRationals) String() string { return toCSV(v) }
func (v Ascii) String() string      { return string(v) }

func (v Undefined) String() string { return toCSV(v.Bytes) }
func (v Unknown) String() string   { return toCSV(v.Bytes) }

func (v Invalid) String() string {
	return fmt.Sprintf("Invalid %s payload of %d bytes for count %d", v.Format, len(v.Bytes), v.Count)
}

// decodeValue turns a resolved entry payload into a TagValue. It is total:
// every byte sequence produces a value, never an error. Payloads too short
// for the declared count come back as Invalid instead of being truncated.
func decodeValue(data []byte, format IfdFormat, count uint32, le bool) TagValue {
	if format == FormatAscii {
		// Strip trailing NULs, there may be more than one. The standard
		// mandates 7-bit ASCII but we admit UTF-8, replacing invalid
		// sequences instead of failing.
		tot := len(data)
		for tot > 0 && data[tot-1] == 0 {
			tot--
		}

		return Ascii(strings.ToValidUTF8(string(data[:tot]), "�"))
	}

	if format == FormatUndefined {
		return Undefined{Bytes: data, LE: le}
	}

	switch format {
	case FormatU8, FormatI8, FormatU16, FormatI16, FormatU32, FormatI32,
		FormatURational, FormatIRational, FormatF32, FormatF64:
		if uint64(len(data)) < uint64(count)*uint64(format.size()) {
			return Invalid{Bytes: data, LE: le, Format: format, Count: count}
		}
	default:
		return Unknown{Bytes: data, LE: le}
	}

	switch format {
	case FormatU8:
		return U8s(data[:count])
	case FormatI8:
		return I8s(readI8Array(count, data))
	case FormatU16:
		return U16s(readU16Array(le, count, data))
	case FormatI16:
		return I16s(readI16Array(le, count, data))
	case FormatU32:
		return U32s(readU32Array(le, count, data))
	case FormatI32:
		return I32s(readI32Array(le, count, data))
	case FormatURational:
		return URationals(readURationalArray(le, count, data))
	case FormatIRational:
		return IRationals(readIRationalArray(le, count, data))
	case FormatF32:
		return F32s(readF32Array(le, count, data))
	default:
		return F64s(readF64Array(le, count, data))
	}
}
