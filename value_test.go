package exifn

import (
	"testing"
)

func TestDecodeValueShortBuffer(t *testing.T) {
	// Every fixed-width format must degrade to Invalid when the payload
	// does not cover count elements, never panic.
	formats := []IfdFormat{
		FormatU8, FormatI8, FormatU16, FormatI16, FormatU32, FormatI32,
		FormatF32, FormatF64, FormatURational, FormatIRational,
	}

	for _, format := range formats {
		for count := uint32(1); count <= 4; count++ {
			need := format.size() * count
			raw := make([]byte, need-1)

			v := decodeValue(raw, format, count, true)
			inv, ok := v.(Invalid)
			if !ok {
				t.Fatalf("format %s count %d with %d bytes: got %T, want Invalid",
					format, count, len(raw), v)
			}
			if inv.Format != format || inv.Count != count {
				t.Errorf("Invalid carries format %s count %d, want %s %d",
					inv.Format, inv.Count, format, count)
			}
		}
	}
}

func TestDecodeValueAsciiTrimming(t *testing.T) {
	// Trailing NULs must not affect the result, however many there are.
	bufs := [][]byte{
		[]byte("Canon"),
		[]byte("Canon\x00"),
		[]byte("Canon\x00\x00\x00"),
	}

	for _, raw := range bufs {
		v := decodeValue(raw, FormatAscii, uint32(len(raw)), true)
		s, ok := v.(Ascii)
		if !ok {
			t.Fatalf("got %T, want Ascii", v)
		}
		if string(s) != "Canon" {
			t.Errorf("Ascii from %q = %q, want %q", raw, s, "Canon")
		}
	}
}

func TestDecodeValueAsciiLossy(t *testing.T) {
	v := decodeValue([]byte{'a', 0xff, 'b'}, FormatAscii, 3, true)
	s, ok := v.(Ascii)
	if !ok {
		t.Fatalf("got %T, want Ascii", v)
	}
	if string(s) != "a�b" {
		t.Errorf("lossy decode = %q, want replacement character in the middle", s)
	}
}

func TestDecodeValueNumeric(t *testing.T) {
	v := decodeValue([]byte{0x06, 0x00}, FormatU16, 1, true)
	a, ok := v.(U16s)
	if !ok {
		t.Fatalf("got %T, want U16s", v)
	}
	if len(a) != 1 || a[0] != 6 {
		t.Errorf("U16s = %v, want [6]", a)
	}

	v = decodeValue([]byte{0, 0, 0, 1, 0, 0, 0, 125}, FormatURational, 1, false)
	r, ok := v.(URationals)
	if !ok {
		t.Fatalf("got %T, want URationals", v)
	}
	if r[0].Numerator != 1 || r[0].Denominator != 125 {
		t.Errorf("URationals = %v, want [1/125]", r)
	}
}

func TestDecodeValueUndefinedAndUnknown(t *testing.T) {
	raw := []byte{1, 2, 3}

	v := decodeValue(raw, FormatUndefined, 3, true)
	u, ok := v.(Undefined)
	if !ok {
		t.Fatalf("got %T, want Undefined", v)
	}
	if len(u.Bytes) != 3 || !u.LE {
		t.Errorf("Undefined = %v le=%v, want passthrough with le=true", u.Bytes, u.LE)
	}

	v = decodeValue(raw, ifdFormatNew(99), 3, false)
	if _, ok := v.(Unknown); !ok {
		t.Fatalf("got %T, want Unknown", v)
	}
}

func TestTagValueCSVStrings(t *testing.T) {
	if got := (U8s{0, 1, 2, 3}).String(); got != "0, 1, 2, 3" {
		t.Errorf("U8s.String() = %q", got)
	}
	if got := (U16s{}).String(); got != "" {
		t.Errorf("empty slice should render as empty string, got %q", got)
	}
	if got := (U16s{5}).String(); got != "5" {
		t.Errorf("single element renders bare, got %q", got)
	}
}
