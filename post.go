package exifn

// entryForTag finds the first entry with the given tag identity, or nil.
func entryForTag(tag ExifTag, entries []ExifEntry) *ExifEntry {
	for i := range entries {
		if entries[i].Tag == tag {
			return &entries[i]
		}
	}

	return nil
}

// appendSibling extends an entry's readable string with join plus the
// readable string of the named sibling tag, when that sibling exists. A
// missing sibling leaves the entry untouched.
func appendSibling(entry *ExifEntry, entries []ExifEntry, sibling ExifTag, join string) {
	other := entryForTag(sibling, entries)
	if other == nil {
		return
	}

	entry.Readable += join + other.Readable
}

// postprocess completes entries whose interpretation depends on a sibling
// tag, e.g. a resolution value whose unit lives in ResolutionUnit. Only the
// readable string is touched, never the decoded value.
func postprocess(entries []ExifEntry) {
	for i := range entries {
		entry := &entries[i]

		switch entry.Tag {
		case TagXResolution, TagYResolution:
			appendSibling(entry, entries, TagResolutionUnit, " pixels per ")
		case TagFocalPlaneXResolution, TagFocalPlaneYResolution:
			appendSibling(entry, entries, TagFocalPlaneResolutionUnit, " pixels per ")
		case TagGPSLatitude:
			appendSibling(entry, entries, TagGPSLatitudeRef, " ")
		case TagGPSLongitude:
			appendSibling(entry, entries, TagGPSLongitudeRef, " ")
		case TagGPSAltitude:
			// "above sea level" is the implicit default and never appended
			ref := entryForTag(TagGPSAltitudeRef, entries)
			if ref == nil {
				continue
			}
			if v, ok := ref.Value.(U8s); ok && len(v) > 0 && v[0] != 0 {
				entry.Readable += " below sea level"
			}
		case TagGPSDestLatitude:
			appendSibling(entry, entries, TagGPSDestLatitudeRef, " ")
		case TagGPSDestLongitude:
			appendSibling(entry, entries, TagGPSDestLongitudeRef, " ")
		case TagGPSDestDistance:
			appendSibling(entry, entries, TagGPSDestDistanceRef, " ")
		case TagGPSSpeed:
			appendSibling(entry, entries, TagGPSSpeedRef, " ")
		}
	}
}
