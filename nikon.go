package exifn

import (
	"bytes"
)

// Nikon MakerNote blobs start with a "Nikon\0" vendor header, followed in
// the newer layout by a version word, padding, and a complete embedded TIFF
// whose offsets are relative to that inner TIFF's own start.

var nikonHeader = []byte{'N', 'i', 'k', 'o', 'n', 0}

// parseMakerNote inspects a MakerNote blob and, when it carries a vendor
// structure this library understands, walks it and appends the discovered
// entries under the vendor namespace. Anything unrecognized or malformed is
// skipped with a diagnostic, never an error.
func parseMakerNote(blob []byte, entries *[]ExifEntry, warnings *[]string) {
	if len(blob) < len(nikonHeader) || !bytes.Equal(blob[:len(nikonHeader)], nikonHeader) {
		return
	}

	// The header length varies between generations (8 bytes in the old
	// layout, 10 in the newer one), so hunt for the inner TIFF preamble
	// within the first few bytes after the vendor name.
	for off := len(nikonHeader); off+8 <= len(blob) && off <= 16; off++ {
		if isTIFFPreamble(blob[off:]) {
			parseNikonTIFF(blob[off:], entries, warnings)
			return
		}
	}

	*warnings = append(*warnings, "Nikon MakerNote: no embedded TIFF found")
}

// isTIFFPreamble reports whether b starts with either TIFF byte-order mark.
func isTIFFPreamble(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	if b[0] == 'I' && b[1] == 'I' && b[2] == 42 && b[3] == 0 {
		return true
	}

	return b[0] == 'M' && b[1] == 'M' && b[2] == 0 && b[3] == 42
}

// parseNikonTIFF walks the embedded TIFF inside a Nikon MakerNote. Offsets
// are relative to the inner buffer, so the normal IFD machinery applies
// unchanged. Errors are demoted to diagnostics, a broken MakerNote must
// not fail the image.
func parseNikonTIFF(contents []byte, entries *[]ExifEntry, warnings *[]string) {
	if len(contents) < 8 {
		*warnings = append(*warnings, "Nikon MakerNote: too short for an embedded TIFF")
		return
	}

	le := contents[0] == 'I'
	offset := readU32(le, contents[4:8])

	if err := parseExifIfd(NamespaceNikon, le, contents, offset, entries, warnings); err != nil {
		*warnings = append(*warnings, "Nikon MakerNote: "+err.Error())
	}
}
