package exifn

import (
	"errors"
	"testing"
)

// Helpers to assemble little-endian TIFF test buffers.

func le16(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// rawEntry builds one 12-byte directory record. data must be at most 4
// bytes and is zero-padded, it holds either the inline payload or an
// offset.
func rawEntry(tag, format uint16, count uint32, data []byte) []byte {
	entry := make([]byte, 0, 12)
	entry = append(entry, le16(tag)...)
	entry = append(entry, le16(format)...)
	entry = append(entry, le32(count)...)
	entry = append(entry, data...)
	for len(entry) < 12 {
		entry = append(entry, 0)
	}

	return entry
}

// makeTIFF assembles a little-endian TIFF: preamble, IFD0 at offset 8 with
// the given records, next-IFD pointer, then the tail bytes (out-of-line
// payloads at whatever offsets the caller computed).
func makeTIFF(entries [][]byte, tail []byte) []byte {
	buf := []byte{'I', 'I', 42, 0}
	buf = append(buf, le32(8)...)
	buf = append(buf, le16(uint16(len(entries)))...)
	for _, e := range entries {
		buf = append(buf, e...)
	}
	buf = append(buf, le32(0)...)
	buf = append(buf, tail...)

	return buf
}

func TestParseTIFFOrientation(t *testing.T) {
	tiff := makeTIFF([][]byte{
		rawEntry(0x0112, 3, 1, le16(6)),
	}, nil)

	data, err := Parse(tiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if data.Mime != "image/tiff" {
		t.Errorf("Mime = %q, want image/tiff", data.Mime)
	}
	if len(data.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(data.Entries))
	}

	entry := data.Entries[0]
	if entry.Tag != TagOrientation {
		t.Errorf("Tag = %v, want Orientation", entry.Tag)
	}
	if entry.Readable != "Rotated to left" {
		t.Errorf("Readable = %q, want %q", entry.Readable, "Rotated to left")
	}
	if entry.Namespace != NamespaceStandard {
		t.Errorf("Namespace = %v, want standard", entry.Namespace)
	}
	if len(data.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", data.Warnings)
	}
}

func TestParseTIFFBigEndian(t *testing.T) {
	buf := []byte{'M', 'M', 0, 42}
	buf = append(buf, 0, 0, 0, 8) // IFD0 offset
	buf = append(buf, 0, 1)       // one entry
	buf = append(buf, 0x01, 0x12, 0, 3, 0, 0, 0, 1, 0, 6, 0, 0)
	buf = append(buf, 0, 0, 0, 0)

	entries, _, err := parseTIFF(buf)
	if err != nil {
		t.Fatalf("parseTIFF failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Readable != "Rotated to left" {
		t.Fatalf("big-endian parse = %+v", entries)
	}
}

func TestParseTIFFTruncated(t *testing.T) {
	_, _, err := parseTIFF([]byte{'I', 'I', 42})
	if !errors.Is(err, ErrTIFFTruncated) {
		t.Errorf("short buffer: got %v, want ErrTIFFTruncated", err)
	}
}

func TestParseTIFFBadPreamble(t *testing.T) {
	_, _, err := parseTIFF([]byte("XXXXXXXX"))
	if !errors.Is(err, ErrTIFFBadPreamble) {
		t.Errorf("bad preamble: got %v, want ErrTIFFBadPreamble", err)
	}
}

func TestParseTIFFIFDTruncated(t *testing.T) {
	// Preamble fine, IFD0 offset points at the very end of the buffer.
	buf := []byte{'I', 'I', 42, 0}
	buf = append(buf, le32(8)...)
	_, _, err := parseTIFF(buf)
	if !errors.Is(err, ErrIFDTruncated) {
		t.Errorf("missing entry count: got %v, want ErrIFDTruncated", err)
	}

	// Entry count claims two records but none follow.
	buf = append(buf, le16(2)...)
	_, _, err = parseTIFF(buf)
	if !errors.Is(err, ErrIFDTruncated) {
		t.Errorf("missing listing: got %v, want ErrIFDTruncated", err)
	}
}

func TestParseTIFFSubIFDUnreachable(t *testing.T) {
	tiff := makeTIFF([][]byte{
		rawEntry(uint16(TagExifOffset), 4, 1, le32(0xffff)),
	}, nil)

	_, _, err := parseTIFF(tiff)
	if !errors.Is(err, ErrSubIFDUnreachable) {
		t.Errorf("got %v, want ErrSubIFDUnreachable", err)
	}
}

func TestParseTIFFSubIFDs(t *testing.T) {
	// IFD0 holds the two pointer tags. The EXIF SubIFD starts right after
	// IFD0 (offset 8 + 2 + 2*12 + 4 = 38) and carries ExposureTime with an
	// out-of-line payload; the GPS SubIFD follows it.
	exifSub := uint32(38)
	payload := exifSub + 2 + 12 + 4 // 56
	gpsSub := payload + 8           // 64

	var tail []byte
	tail = append(tail, le16(1)...)
	tail = append(tail, rawEntry(0x829a, 5, 1, le32(payload))...)
	tail = append(tail, le32(0)...)
	tail = append(tail, le32(1)...)   // 1/125
	tail = append(tail, le32(125)...)
	tail = append(tail, le16(1)...)
	tail = append(tail, rawEntry(0x05, 1, 1, []byte{1})...) // altitude ref: below sea level
	tail = append(tail, le32(0)...)

	tiff := makeTIFF([][]byte{
		rawEntry(uint16(TagExifOffset), 4, 1, le32(exifSub)),
		rawEntry(uint16(TagGPSOffset), 4, 1, le32(gpsSub)),
	}, tail)

	entries, warnings, err := parseTIFF(tiff)
	if err != nil {
		t.Fatalf("parseTIFF failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	// Physical order: IFD0 pointers first, then SubIFD contents.
	if entries[2].Tag != TagExposureTime || entries[2].Readable != "1/125 s" {
		t.Errorf("EXIF SubIFD entry = %v %q", entries[2].Tag, entries[2].Readable)
	}
	if entries[3].Tag != TagGPSAltitudeRef || entries[3].Namespace != NamespaceGPS {
		t.Errorf("GPS SubIFD entry = %v in %v", entries[3].Tag, entries[3].Namespace)
	}
	if entries[3].Readable != "Below sea level" {
		t.Errorf("GPS altitude ref = %q, want %q", entries[3].Readable, "Below sea level")
	}
}

func TestParseTIFFMalformedTagIsolated(t *testing.T) {
	// FNumber declares two rationals where the registry wants exactly
	// one. The entry stays, unrendered, and Orientation is unaffected.
	payload := uint32(8 + 2 + 2*12 + 4) // 38

	var tail []byte
	tail = append(tail, le32(28)...)
	tail = append(tail, le32(10)...)
	tail = append(tail, le32(28)...)
	tail = append(tail, le32(10)...)

	tiff := makeTIFF([][]byte{
		rawEntry(0x0112, 3, 1, le16(6)),
		rawEntry(0x829d, 5, 2, le32(payload)),
	}, tail)

	data, err := Parse(tiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(data.Entries))
	}
	if data.Entries[0].Readable != "Rotated to left" {
		t.Errorf("well-formed entry = %q", data.Entries[0].Readable)
	}
	if data.Entries[1].Readable != "28/10, 28/10" {
		t.Errorf("out-of-bounds FNumber kept raw rendering, got %q", data.Entries[1].Readable)
	}
	if len(data.Warnings) != 1 {
		t.Errorf("want one diagnostic, got %v", data.Warnings)
	}
}

func TestParseTIFFPayloadBeyondEOF(t *testing.T) {
	// The second record's payload offset points past the buffer, so only
	// the first entry survives; the parse itself succeeds.
	tiff := makeTIFF([][]byte{
		rawEntry(0x0112, 3, 1, le16(6)),
		rawEntry(0x829a, 5, 1, le32(0xffff)),
	}, nil)

	data, err := Parse(tiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(data.Entries))
	}
	if len(data.Warnings) != 1 {
		t.Errorf("want one diagnostic, got %v", data.Warnings)
	}
}

func TestParseTIFFUnknownTagKept(t *testing.T) {
	tiff := makeTIFF([][]byte{
		rawEntry(0xbeef, 3, 1, le16(7)),
	}, nil)

	data, err := Parse(tiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(data.Entries))
	}

	entry := data.Entries[0]
	if entry.Tag != TagUnknownToMe || entry.RawTag != 0xbeef {
		t.Errorf("unknown tag entry = %v raw %#x", entry.Tag, entry.RawTag)
	}
	if entry.Readable != "7" {
		t.Errorf("unknown tag renders its raw value, got %q", entry.Readable)
	}
}

func TestResolvePayloadInline(t *testing.T) {
	e := ifdEntry{
		format: FormatU16,
		count:  1,
		le:     true,
		inline: []byte{6, 0, 0, 0},
	}
	if !e.resolvePayload(nil) {
		t.Fatal("inline payload should always resolve")
	}
	if len(e.data) != 2 {
		t.Errorf("inline payload sliced to %d bytes, want 2", len(e.data))
	}
}
