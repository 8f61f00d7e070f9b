// Package exifn extracts EXIF metadata from JPEG and TIFF images.
package exifn

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Standard error types for EXIF extraction.
var (
	ErrUnknownFormat     = errors.New("file type unknown")
	ErrNoExif            = errors.New("JPEG without EXIF section")
	ErrTIFFTruncated     = errors.New("TIFF truncated at start")
	ErrTIFFBadPreamble   = errors.New("TIFF with bad preamble")
	ErrIFDTruncated      = errors.New("TIFF IFD truncated")
	ErrSubIFDUnreachable = errors.New("TIFF SubIFD not reachable")
)

// ExifEntry is one fully interpreted tag.
type ExifEntry struct {
	// Namespace tells which code space RawTag belongs to.
	Namespace Namespace
	// Tag is the resolved tag identity, TagUnknownToMe when the code is
	// not in the registry.
	Tag ExifTag
	// RawTag is the numeric tag code as found in the file.
	RawTag uint16
	// Value is the decoded, typed payload.
	Value TagValue
	// Unit names the value's unit, or refers to the sibling tag that
	// carries it (e.g. "@ResolutionUnit").
	Unit string
	// Readable is the human-readable rendering, after cross-tag
	// completion.
	Readable string
}

// ExifData is the result of parsing one image.
type ExifData struct {
	// Mime is the detected container type, "image/jpeg" or "image/tiff".
	Mime string
	// Entries lists every decoded tag in physical order: IFD0, then the
	// EXIF and GPS SubIFDs, then vendor MakerNote entries.
	Entries []ExifEntry
	// Warnings collects non-fatal per-entry diagnostics: format
	// mismatches, out-of-bounds counts, dropped payloads. Never empty
	// strings, may well be nil.
	Warnings []string
}

// DetectMIME sniffs the container type from magic bytes. Returns
// "image/jpeg", "image/tiff" or "" when the buffer is neither.
func DetectMIME(contents []byte) string {
	if len(contents) < 11 {
		return ""
	}

	if contents[0] == 0xff && contents[1] == 0xd8 && contents[2] == 0xff {
		jfif := contents[6] == 'J' && contents[7] == 'F' && contents[8] == 'I' &&
			contents[9] == 'F' && contents[10] == 0
		exif := contents[6] == 'E' && contents[7] == 'x' && contents[8] == 'i' &&
			contents[9] == 'f' && contents[10] == 0
		if jfif || exif {
			return "image/jpeg"
		}
	}

	if isTIFFPreamble(contents) {
		return "image/tiff"
	}

	return ""
}

// findEmbeddedTIFF scans the JPEG marker stream for the APP1 segment
// carrying the "Exif\0\0" preamble and returns the byte range of the TIFF
// payload that follows it, preamble excluded. Every failure mode maps to
// ErrNoExif with a distinct diagnostic.
func findEmbeddedTIFF(contents []byte) (uint32, uint32, error) {
	offset := uint32(2)

	for uint64(offset) < uint64(len(contents)) {
		if uint64(len(contents)) < uint64(offset)+4 {
			return 0, 0, fmt.Errorf("truncated in marker header: %w", ErrNoExif)
		}

		marker := uint16(contents[offset])<<8 | uint16(contents[offset+1])
		if marker < 0xff00 {
			return 0, 0, fmt.Errorf("invalid marker %#x: %w", marker, ErrNoExif)
		}

		offset += 2
		size := uint32(contents[offset])<<8 | uint32(contents[offset+1])

		if size < 2 {
			return 0, 0, fmt.Errorf("marker size below 2: %w", ErrNoExif)
		}
		if uint64(len(contents)) < uint64(offset)+uint64(size) {
			return 0, 0, fmt.Errorf("truncated in marker body: %w", ErrNoExif)
		}

		switch marker {
		case 0xffe1:
			// Discard the size word.
			offset += 2
			size -= 2

			if size < 6 {
				return 0, 0, fmt.Errorf("EXIF preamble truncated: %w", ErrNoExif)
			}

			preamble := contents[offset : offset+6]
			if preamble[0] != 'E' || preamble[1] != 'x' || preamble[2] != 'i' ||
				preamble[3] != 'f' || preamble[4] != 0 || preamble[5] != 0 {
				return 0, 0, fmt.Errorf("EXIF preamble unrecognized: %w", ErrNoExif)
			}

			// Discard the "Exif\0\0" preamble.
			return offset + 6, size - 6, nil
		case 0xffda:
			// Start of scan, nothing interesting follows.
			return 0, 0, fmt.Errorf("start of scan reached and no EXIF found: %w", ErrNoExif)
		}

		offset += size
	}

	return 0, 0, fmt.Errorf("scan past EOF and no EXIF found: %w", ErrNoExif)
}

// Parse extracts EXIF data from a byte buffer holding a complete JPEG or
// TIFF image. Structural failures return an error and no data; per-entry
// problems degrade into ExifData.Warnings instead.
func Parse(contents []byte) (*ExifData, error) {
	mime := DetectMIME(contents)
	if mime == "" {
		return nil, ErrUnknownFormat
	}

	tiff := contents
	if mime == "image/jpeg" {
		offset, size, err := findEmbeddedTIFF(contents)
		if err != nil {
			return nil, err
		}
		tiff = contents[offset : offset+size]
	}

	entries, warnings, err := parseTIFF(tiff)
	if err != nil {
		return nil, err
	}

	return &ExifData{Mime: mime, Entries: entries, Warnings: warnings}, nil
}

// Decode reads an entire image from r and parses its EXIF data.
func Decode(r io.Reader) (*ExifData, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	return Parse(contents)
}

// ParseFile opens the named image file and parses its EXIF data.
func ParseFile(name string) (*ExifData, error) {
	contents, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return Parse(contents)
}
