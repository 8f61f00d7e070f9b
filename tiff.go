package exifn

import (
	"fmt"
)

// ifdEntry is one 12-byte TIFF directory record plus, after resolvePayload,
// the payload bytes it describes. The inline field always holds the last 4
// bytes of the record, which are either the payload itself or an offset to
// it elsewhere in the buffer.
type ifdEntry struct {
	namespace Namespace
	tag       uint16
	format    IfdFormat
	count     uint32
	le        bool
	inline    []byte
	data      []byte
}

// length is the total payload size, element size times element count.
func (e *ifdEntry) length() uint32 {
	return e.format.size() * e.count
}

// inIfd reports whether the payload fits in the record's own 4 data bytes.
func (e *ifdEntry) inIfd() bool {
	return e.length() <= 4
}

// dataAsOffset reads the record's data bytes as a buffer offset. Only
// meaningful when the payload does not fit inline, or for SubIFD pointer
// tags whose payload is an offset by definition.
func (e *ifdEntry) dataAsOffset() uint32 {
	return readU32(e.le, e.inline[:4])
}

// resolvePayload fills e.data with the payload bytes, reading them from the
// record itself or from elsewhere in contents. Returns false when the
// payload lies beyond the end of the buffer; such entries must be skipped
// by the caller, not treated as a parse failure.
func (e *ifdEntry) resolvePayload(contents []byte) bool {
	length := e.length()

	if e.inIfd() {
		e.data = e.inline[:length]
		return true
	}

	offset := e.dataAsOffset()
	if uint64(offset)+uint64(length) > uint64(len(contents)) {
		return false
	}

	e.data = contents[offset : offset+length]

	return true
}

// parseIfd decodes count raw records from the start of listing, which the
// caller has already verified to hold count*12 bytes. It never fails.
func parseIfd(ns Namespace, le bool, count uint16, listing []byte) []ifdEntry {
	entries := make([]ifdEntry, 0, count)

	for i := 0; i < int(count); i++ {
		offset := i * 12
		tag := readU16(le, listing[offset:offset+2])
		format := readU16(le, listing[offset+2:offset+4])
		n := readU32(le, listing[offset+4:offset+8])

		entries = append(entries, ifdEntry{
			namespace: ns,
			tag:       tag,
			format:    ifdFormatNew(format),
			count:     n,
			le:        le,
			inline:    listing[offset+8 : offset+12],
		})
	}

	return entries
}

// exifEntry interprets a resolved directory record: registry lookup, typed
// decode, and rendering. Rendering is skipped, with a diagnostic appended
// to warnings, when the on-disk format or element count disagrees with the
// registry; the entry itself is still produced with its raw decoded value.
func (e *ifdEntry) exifEntry(warnings *[]string) ExifEntry {
	desc := lookupTag(e.namespace, e.tag)
	value := decodeValue(e.data, e.format, e.count, e.le)

	entry := ExifEntry{
		Namespace: e.namespace,
		Tag:       desc.tag,
		RawTag:    e.tag,
		Value:     value,
		Unit:      desc.unit,
		Readable:  value.String(),
	}

	if desc.tag == TagUnknownToMe {
		return entry
	}

	if e.format != desc.format {
		*warnings = append(*warnings, fmt.Sprintf(
			"tag %#04x (%s): format %s does not match expected %s",
			e.tag, desc.tag, e.format, desc.format))
		return entry
	}

	if desc.min >= 0 && (e.count < uint32(desc.min) || e.count > uint32(desc.max)) {
		*warnings = append(*warnings, fmt.Sprintf(
			"tag %#04x (%s): element count %d outside [%d, %d]",
			e.tag, desc.tag, e.count, desc.min, desc.max))
		return entry
	}

	if _, bad := value.(Invalid); bad {
		*warnings = append(*warnings, fmt.Sprintf(
			"tag %#04x (%s): payload too short for declared count",
			e.tag, desc.tag))
		return entry
	}

	entry.Readable = desc.readable(value)

	return entry
}

// parseExifIfd walks one IFD at offset within contents, appending one
// ExifEntry per resolvable record. Truncation of the IFD structure itself
// is fatal; individual records whose payload cannot be resolved are
// skipped with a diagnostic.
func parseExifIfd(ns Namespace, le bool, contents []byte, offset uint32, entries *[]ExifEntry, warnings *[]string) error {
	if uint64(len(contents)) < uint64(offset)+2 {
		return fmt.Errorf("truncated at dir entry count: %w", ErrIFDTruncated)
	}

	count := readU16(le, contents[offset:offset+2])
	listingLen := uint32(count) * 12

	if uint64(len(contents)) < uint64(offset)+2+uint64(listingLen) {
		return fmt.Errorf("truncated at dir listing: %w", ErrIFDTruncated)
	}

	ifd := parseIfd(ns, le, count, contents[offset+2:offset+2+listingLen])

	for i := range ifd {
		entry := &ifd[i]
		if !entry.resolvePayload(contents) {
			*warnings = append(*warnings, fmt.Sprintf(
				"tag %#04x: payload beyond end of buffer, entry dropped", entry.tag))
			continue
		}

		*entries = append(*entries, entry.exifEntry(warnings))
	}

	return nil
}

// parseIfds parses IFD0 and then recurses once into the EXIF and GPS
// SubIFDs if IFD0 points at them. The result list keeps physical order:
// IFD0 entries, then each SubIFD's entries in the order their pointer tags
// appear, with any MakerNote vendor entries appended last.
func parseIfds(le bool, ifd0Offset uint32, contents []byte) ([]ExifEntry, []string, error) {
	var entries []ExifEntry
	var warnings []string

	if err := parseExifIfd(NamespaceStandard, le, contents, ifd0Offset, &entries, &warnings); err != nil {
		return nil, nil, err
	}

	// IFD0 is known to be intact now, re-walk it for the SubIFD pointers.
	count := readU16(le, contents[ifd0Offset:ifd0Offset+2])
	listingLen := uint32(count) * 12
	ifd := parseIfd(NamespaceStandard, le, count, contents[ifd0Offset+2:ifd0Offset+2+listingLen])

	for i := range ifd {
		entry := &ifd[i]

		var ns Namespace
		switch entry.tag {
		case uint16(TagExifOffset):
			ns = NamespaceStandard
		case uint16(TagGPSOffset):
			ns = NamespaceGPS
		default:
			continue
		}

		subOffset := entry.dataAsOffset()
		if uint64(subOffset) > uint64(len(contents)) {
			return nil, nil, fmt.Errorf("SubIFD goes past EOF: %w", ErrSubIFDUnreachable)
		}

		if err := parseExifIfd(ns, le, contents, subOffset, &entries, &warnings); err != nil {
			return nil, nil, err
		}
	}

	// Vendor MakerNote entries go after everything from the standard
	// structure. Walk only the entries present so far, the vendor walk
	// appends to the same list.
	n := len(entries)
	for i := 0; i < n; i++ {
		if entries[i].Tag != TagMakerNote {
			continue
		}
		if blob, ok := entries[i].Value.(Undefined); ok {
			parseMakerNote(blob.Bytes, &entries, &warnings)
		}
	}

	postprocess(entries)

	return entries, warnings, nil
}

// parseTIFF parses a TIFF buffer, standalone or extracted from a JPEG APP1
// segment. The byte-order mark in the preamble decides endianness for
// every read that follows.
func parseTIFF(contents []byte) ([]ExifEntry, []string, error) {
	le := false

	switch {
	case len(contents) < 8:
		return nil, nil, ErrTIFFTruncated
	case contents[0] == 'I' && contents[1] == 'I' && contents[2] == 42 && contents[3] == 0:
		le = true
	case contents[0] == 'M' && contents[1] == 'M' && contents[2] == 0 && contents[3] == 42:
	default:
		return nil, nil, fmt.Errorf("preamble is %x %x %x %x: %w",
			contents[0], contents[1], contents[2], contents[3], ErrTIFFBadPreamble)
	}

	offset := readU32(le, contents[4:8])

	return parseIfds(le, offset, contents)
}
