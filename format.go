package exifn

import "fmt"

// IfdFormat is the on-disk data type code of an IFD entry.
type IfdFormat uint16

const (
	FormatUnknown   IfdFormat = 0
	FormatU8        IfdFormat = 1
	FormatAscii     IfdFormat = 2
	FormatU16       IfdFormat = 3
	FormatU32       IfdFormat = 4
	FormatURational IfdFormat = 5
	FormatI8        IfdFormat = 6
	FormatUndefined IfdFormat = 7
	FormatI16       IfdFormat = 8
	FormatI32       IfdFormat = 9
	FormatIRational IfdFormat = 10
	FormatF32       IfdFormat = 11
	FormatF64       IfdFormat = 12
)

// ifdFormatNew maps a raw format code to the enumeration; codes outside the
// TIFF-defined 1..12 range collapse to FormatUnknown.
func ifdFormatNew(n uint16) IfdFormat {
	if n >= 1 && n <= 12 {
		return IfdFormat(n)
	}

	return FormatUnknown
}

// size returns the size in bytes of one element of this format. An IFD entry
// holds an array of elements, so this is not the size of the whole payload.
func (f IfdFormat) size() uint32 {
	switch f {
	case FormatU16, FormatI16:
		return 2
	case FormatU32, FormatI32, FormatF32:
		return 4
	case FormatURational, FormatIRational, FormatF64:
		return 8
	default:
		// U8, Ascii, I8, Undefined, Unknown
		return 1
	}
}

func (f IfdFormat) String() string {
	switch f {
	case FormatU8:
		return "unsigned byte"
	case FormatAscii:
		return "ASCII string"
	case FormatU16:
		return "unsigned short"
	case FormatU32:
		return "unsigned long"
	case FormatURational:
		return "unsigned rational"
	case FormatI8:
		return "signed byte"
	case FormatUndefined:
		return "undefined"
	case FormatI16:
		return "signed short"
	case FormatI32:
		return "signed long"
	case FormatIRational:
		return "signed rational"
	case FormatF32:
		return "float"
	case FormatF64:
		return "double"
	default:
		return fmt.Sprintf("unknown (%d)", uint16(f))
	}
}
