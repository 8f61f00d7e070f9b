package exifn

// Namespace tells which tag code space an entry belongs to. GPS tag codes
// (0x0-0x1e) numerically overlap unrelated low codes, and vendor MakerNote
// IFDs reuse the whole range, so a bare code is ambiguous without it.
type Namespace int

const (
	// NamespaceStandard covers IFD0 and the EXIF SubIFD.
	NamespaceStandard Namespace = iota
	// NamespaceGPS covers the GPS SubIFD.
	NamespaceGPS
	// NamespaceNikon covers entries found inside a Nikon MakerNote.
	NamespaceNikon
)

func (n Namespace) String() string {
	switch n {
	case NamespaceStandard:
		return "Standard"
	case NamespaceGPS:
		return "GPS"
	case NamespaceNikon:
		return "Nikon"
	default:
		return "Invalid"
	}
}

// ExifTag identifies a tag this library knows about. The numeric values are
// the raw TIFF tag codes; GPS codes do not collide with the main table since
// standard codes start at 0x010e.
type ExifTag uint16

// TagUnknownToMe marks a tag code the library has no descriptor for.
const TagUnknownToMe ExifTag = 0xffff

const (
	TagImageDescription      ExifTag = 0x010e
	TagMake                  ExifTag = 0x010f
	TagModel                 ExifTag = 0x0110
	TagOrientation           ExifTag = 0x0112
	TagXResolution           ExifTag = 0x011a
	TagYResolution           ExifTag = 0x011b
	TagResolutionUnit        ExifTag = 0x0128
	TagSoftware              ExifTag = 0x0131
	TagDateTime              ExifTag = 0x0132
	TagHostComputer          ExifTag = 0x013c
	TagWhitePoint            ExifTag = 0x013e
	TagPrimaryChromaticities ExifTag = 0x013f
	TagYCbCrCoefficients     ExifTag = 0x0211
	TagReferenceBlackWhite   ExifTag = 0x0214
	TagCopyright             ExifTag = 0x8298
	TagExifOffset            ExifTag = 0x8769
	TagGPSOffset             ExifTag = 0x8825

	TagExposureTime             ExifTag = 0x829a
	TagFNumber                  ExifTag = 0x829d
	TagExposureProgram          ExifTag = 0x8822
	TagSpectralSensitivity      ExifTag = 0x8824
	TagISOSpeedRatings          ExifTag = 0x8827
	TagOECF                     ExifTag = 0x8828
	TagExifVersion              ExifTag = 0x9000
	TagDateTimeOriginal         ExifTag = 0x9003
	TagDateTimeDigitized        ExifTag = 0x9004
	TagComponentsConfiguration  ExifTag = 0x9101
	TagCompressedBitsPerPixel   ExifTag = 0x9102
	TagShutterSpeedValue        ExifTag = 0x9201
	TagApertureValue            ExifTag = 0x9202
	TagBrightnessValue          ExifTag = 0x9203
	TagExposureBiasValue        ExifTag = 0x9204
	TagMaxApertureValue         ExifTag = 0x9205
	TagSubjectDistance          ExifTag = 0x9206
	TagMeteringMode             ExifTag = 0x9207
	TagLightSource              ExifTag = 0x9208
	TagFlash                    ExifTag = 0x9209
	TagFocalLength              ExifTag = 0x920a
	TagSubjectArea              ExifTag = 0x9214
	TagMakerNote                ExifTag = 0x927c
	TagUserComment              ExifTag = 0x9286
	TagFlashPixVersion          ExifTag = 0xa000
	TagColorSpace               ExifTag = 0xa001
	TagRelatedSoundFile         ExifTag = 0xa004
	TagFlashEnergy              ExifTag = 0xa20b
	TagFocalPlaneXResolution    ExifTag = 0xa20e
	TagFocalPlaneYResolution    ExifTag = 0xa20f
	TagFocalPlaneResolutionUnit ExifTag = 0xa210
	TagSubjectLocation          ExifTag = 0xa214
	TagExposureIndex            ExifTag = 0xa215
	TagSensingMethod            ExifTag = 0xa217
	TagFileSource               ExifTag = 0xa300
	TagSceneType                ExifTag = 0xa301
	TagCFAPattern               ExifTag = 0xa302
	TagCustomRendered           ExifTag = 0xa401
	TagExposureMode             ExifTag = 0xa402
	TagWhiteBalanceMode         ExifTag = 0xa403
	TagDigitalZoomRatio         ExifTag = 0xa404
	TagFocalLengthIn35mmFilm    ExifTag = 0xa405
	TagSceneCaptureType         ExifTag = 0xa406
	TagGainControl              ExifTag = 0xa407
	TagContrast                 ExifTag = 0xa408
	TagSaturation               ExifTag = 0xa409
	TagSharpness                ExifTag = 0xa40a
	TagDeviceSettingDescription ExifTag = 0xa40b
	TagSubjectDistanceRange     ExifTag = 0xa40c
	TagImageUniqueID            ExifTag = 0xa420
	TagLensSpecification        ExifTag = 0xa432
	TagLensMake                 ExifTag = 0xa433
	TagLensModel                ExifTag = 0xa434
)

// GPS namespace tags.
const (
	TagGPSVersionID         ExifTag = 0x00
	TagGPSLatitudeRef       ExifTag = 0x01
	TagGPSLatitude          ExifTag = 0x02
	TagGPSLongitudeRef      ExifTag = 0x03
	TagGPSLongitude         ExifTag = 0x04
	TagGPSAltitudeRef       ExifTag = 0x05
	TagGPSAltitude          ExifTag = 0x06
	TagGPSTimeStamp         ExifTag = 0x07
	TagGPSSatellites        ExifTag = 0x08
	TagGPSStatus            ExifTag = 0x09
	TagGPSMeasureMode       ExifTag = 0x0a
	TagGPSDOP               ExifTag = 0x0b
	TagGPSSpeedRef          ExifTag = 0x0c
	TagGPSSpeed             ExifTag = 0x0d
	TagGPSTrackRef          ExifTag = 0x0e
	TagGPSTrack             ExifTag = 0x0f
	TagGPSImgDirectionRef   ExifTag = 0x10
	TagGPSImgDirection      ExifTag = 0x11
	TagGPSMapDatum          ExifTag = 0x12
	TagGPSDestLatitudeRef   ExifTag = 0x13
	TagGPSDestLatitude      ExifTag = 0x14
	TagGPSDestLongitudeRef  ExifTag = 0x15
	TagGPSDestLongitude     ExifTag = 0x16
	TagGPSDestBearingRef    ExifTag = 0x17
	TagGPSDestBearing       ExifTag = 0x18
	TagGPSDestDistanceRef   ExifTag = 0x19
	TagGPSDestDistance      ExifTag = 0x1a
	TagGPSProcessingMethod  ExifTag = 0x1b
	TagGPSAreaInformation   ExifTag = 0x1c
	TagGPSDateStamp         ExifTag = 0x1d
	TagGPSDifferential      ExifTag = 0x1e
)

// tagDesc is one registry row: what a tag code means, what its payload is
// expected to look like, and how to render it for humans. min/max are the
// valid element-count bounds; -1/-1 means variable length (strings, blobs).
type tagDesc struct {
	tag      ExifTag
	name     string
	unit     string
	format   IfdFormat
	min, max int32
	readable func(TagValue) string
}

// unknownDesc is the catch-all row for codes not in any table. Its format is
// FormatUnknown so validation never expects anything from the payload.
var unknownDesc = tagDesc{
	tag:      TagUnknownToMe,
	name:     "Unknown to this library, or manufacturer-specific",
	unit:     "Unknown unit",
	format:   FormatUnknown,
	min:      -1,
	max:      -1,
	readable: strpass,
}

var stdTags = map[uint16]tagDesc{
	0x010e: {TagImageDescription, "Image Description", "none", FormatAscii, -1, -1, strpass},
	0x010f: {TagMake, "Manufacturer", "none", FormatAscii, -1, -1, strpass},
	0x0110: {TagModel, "Model", "none", FormatAscii, -1, -1, strpass},
	0x0112: {TagOrientation, "Orientation", "none", FormatU16, 1, 1, orientation},
	0x011a: {TagXResolution, "X Resolution", "pixels per res unit", FormatURational, 1, 1, rationalValue},
	0x011b: {TagYResolution, "Y Resolution", "pixels per res unit", FormatURational, 1, 1, rationalValue},
	0x0128: {TagResolutionUnit, "Resolution Unit", "none", FormatU16, 1, 1, resolutionUnit},
	0x0131: {TagSoftware, "Software", "none", FormatAscii, -1, -1, strpass},
	0x0132: {TagDateTime, "Image date", "none", FormatAscii, -1, -1, strpass},
	0x013c: {TagHostComputer, "Host computer", "none", FormatAscii, -1, -1, strpass},
	0x013e: {TagWhitePoint, "White Point", "CIE 1931 coordinates", FormatURational, 2, 2, rationalValue},
	0x013f: {TagPrimaryChromaticities, "Primary Chromaticities", "CIE 1931 coordinates", FormatURational, 6, 6, rationalValue},
	0x0211: {TagYCbCrCoefficients, "YCbCr Coefficients", "none", FormatURational, 3, 3, rationalValue},
	0x0214: {TagReferenceBlackWhite, "Reference Black/White", "RGB or YCbCr", FormatURational, 6, 6, rationalValue},
	0x8298: {TagCopyright, "Copyright", "none", FormatAscii, -1, -1, strpass},
	0x8769: {TagExifOffset, "This image has an Exif SubIFD", "byte offset", FormatU32, 1, 1, strpass},
	0x8825: {TagGPSOffset, "This image has a GPS SubIFD", "byte offset", FormatU32, 1, 1, strpass},

	0x829a: {TagExposureTime, "Exposure time", "s", FormatURational, 1, 1, exposureTime},
	0x829d: {TagFNumber, "Aperture", "f-number", FormatURational, 1, 1, fNumber},
	0x8822: {TagExposureProgram, "Exposure program", "none", FormatU16, 1, 1, exposureProgram},
	0x8824: {TagSpectralSensitivity, "Spectral sensitivity", "ASTM string", FormatAscii, -1, -1, strpass},
	0x8827: {TagISOSpeedRatings, "ISO speed ratings", "ISO", FormatU16, 1, 3, isoSpeeds},
	0x8828: {TagOECF, "OECF", "none", FormatUndefined, -1, -1, undefinedAsBlob},
	0x9000: {TagExifVersion, "Exif version", "none", FormatUndefined, -1, -1, undefinedAsAscii},
	0x9003: {TagDateTimeOriginal, "Date of original image", "none", FormatAscii, -1, -1, strpass},
	0x9004: {TagDateTimeDigitized, "Date of image digitalization", "none", FormatAscii, -1, -1, strpass},
	0x9101: {TagComponentsConfiguration, "Components configuration", "none", FormatUndefined, -1, -1, undefinedAsU8},
	0x9102: {TagCompressedBitsPerPixel, "Compressed bits per pixel", "none", FormatURational, 1, 1, rationalValue},
	0x9201: {TagShutterSpeedValue, "Shutter speed", "APEX", FormatIRational, 1, 1, apexTv},
	0x9202: {TagApertureValue, "Aperture value", "APEX", FormatURational, 1, 1, apexAv},
	0x9203: {TagBrightnessValue, "Brightness value", "APEX", FormatIRational, 1, 1, apexBrightness},
	0x9204: {TagExposureBiasValue, "Exposure bias value", "APEX", FormatIRational, 1, 1, apexEv},
	0x9205: {TagMaxApertureValue, "Maximum aperture value", "APEX", FormatURational, 1, 1, apexAv},
	0x9206: {TagSubjectDistance, "Subject distance", "m", FormatURational, 1, 1, meters},
	0x9207: {TagMeteringMode, "Metering mode", "none", FormatU16, 1, 1, meteringMode},
	0x9208: {TagLightSource, "Light source", "none", FormatU16, 1, 1, lightSource},
	0x9209: {TagFlash, "Flash", "none", FormatU16, 1, 2, flash},
	0x920a: {TagFocalLength, "Focal length", "mm", FormatURational, 1, 1, focalLength},
	0x9214: {TagSubjectArea, "Subject area", "px", FormatU16, 2, 4, subjectArea},
	0x927c: {TagMakerNote, "Maker note", "none", FormatUndefined, -1, -1, undefinedAsBlob},
	0x9286: {TagUserComment, "User comment", "none", FormatUndefined, -1, -1, undefinedAsEncodedString},
	0xa000: {TagFlashPixVersion, "Flashpix version", "none", FormatUndefined, -1, -1, undefinedAsAscii},
	0xa001: {TagColorSpace, "Color space", "none", FormatU16, 1, 1, colorSpace},
	0xa004: {TagRelatedSoundFile, "Related sound file", "none", FormatAscii, -1, -1, strpass},
	0xa20b: {TagFlashEnergy, "Flash energy", "BCPS", FormatURational, 1, 1, flashEnergy},
	0xa20e: {TagFocalPlaneXResolution, "Focal plane X resolution", "@FocalPlaneResolutionUnit", FormatURational, 1, 1, rationalValue},
	0xa20f: {TagFocalPlaneYResolution, "Focal plane Y resolution", "@FocalPlaneResolutionUnit", FormatURational, 1, 1, rationalValue},
	0xa210: {TagFocalPlaneResolutionUnit, "Focal plane resolution unit", "none", FormatU16, 1, 1, resolutionUnit},
	0xa214: {TagSubjectLocation, "Subject location", "X,Y", FormatU16, 2, 2, subjectLocation},
	0xa215: {TagExposureIndex, "Exposure index", "EI", FormatURational, 1, 1, rationalValue},
	0xa217: {TagSensingMethod, "Sensing method", "none", FormatU16, 1, 1, sensingMethod},
	0xa300: {TagFileSource, "File source", "none", FormatUndefined, 1, 1, fileSource},
	0xa301: {TagSceneType, "Scene type", "none", FormatUndefined, 1, 1, sceneType},
	0xa302: {TagCFAPattern, "CFA Pattern", "none", FormatUndefined, -1, -1, undefinedAsU8},
	0xa401: {TagCustomRendered, "Custom rendered", "none", FormatU16, 1, 1, customRendered},
	0xa402: {TagExposureMode, "Exposure mode", "none", FormatU16, 1, 1, exposureMode},
	0xa403: {TagWhiteBalanceMode, "White balance mode", "none", FormatU16, 1, 1, whiteBalanceMode},
	0xa404: {TagDigitalZoomRatio, "Digital zoom ratio", "none", FormatURational, 1, 1, rationalValue},
	0xa405: {TagFocalLengthIn35mmFilm, "Equivalent focal length in 35mm", "mm", FormatU16, 1, 1, focalLength35},
	0xa406: {TagSceneCaptureType, "Scene capture type", "none", FormatU16, 1, 1, sceneCaptureType},
	0xa407: {TagGainControl, "Gain control", "none", FormatU16, 1, 1, gainControl},
	0xa408: {TagContrast, "Contrast", "none", FormatU16, 1, 1, contrast},
	0xa409: {TagSaturation, "Saturation", "none", FormatU16, 1, 1, saturation},
	0xa40a: {TagSharpness, "Sharpness", "none", FormatU16, 1, 1, sharpness},
	0xa40b: {TagDeviceSettingDescription, "Device setting description", "none", FormatUndefined, -1, -1, undefinedAsBlob},
	0xa40c: {TagSubjectDistanceRange, "Subject distance range", "none", FormatU16, 1, 1, subjectDistanceRange},
	0xa420: {TagImageUniqueID, "Image unique ID", "none", FormatAscii, -1, -1, strpass},
	0xa432: {TagLensSpecification, "Lens specification", "none", FormatURational, 4, 4, lensSpec},
	0xa433: {TagLensMake, "Lens manufacturer", "none", FormatAscii, -1, -1, strpass},
	0xa434: {TagLensModel, "Lens model", "none", FormatAscii, -1, -1, strpass},
}

var gpsTags = map[uint16]tagDesc{
	0x00: {TagGPSVersionID, "GPS version ID", "none", FormatU8, 4, 4, strpass},
	0x01: {TagGPSLatitudeRef, "GPS latitude ref", "none", FormatAscii, -1, -1, strpass},
	0x02: {TagGPSLatitude, "GPS latitude", "D/M/S", FormatURational, 3, 3, dms},
	0x03: {TagGPSLongitudeRef, "GPS longitude ref", "none", FormatAscii, -1, -1, strpass},
	0x04: {TagGPSLongitude, "GPS longitude", "D/M/S", FormatURational, 3, 3, dms},
	0x05: {TagGPSAltitudeRef, "GPS altitude ref", "none", FormatU8, 1, 1, gpsAltRef},
	0x06: {TagGPSAltitude, "GPS altitude", "m", FormatURational, 1, 1, meters},
	0x07: {TagGPSTimeStamp, "GPS timestamp", "UTC time", FormatURational, 3, 3, gpsTimestamp},
	0x08: {TagGPSSatellites, "GPS satellites", "none", FormatAscii, -1, -1, strpass},
	0x09: {TagGPSStatus, "GPS status", "none", FormatAscii, -1, -1, gpsStatus},
	0x0a: {TagGPSMeasureMode, "GPS measure mode", "none", FormatAscii, -1, -1, gpsMeasureMode},
	0x0b: {TagGPSDOP, "GPS Data Degree of Precision (DOP)", "none", FormatURational, 1, 1, rationalValue},
	0x0c: {TagGPSSpeedRef, "GPS speed ref", "none", FormatAscii, -1, -1, gpsSpeedRef},
	0x0d: {TagGPSSpeed, "GPS speed", "@GPSSpeedRef", FormatURational, 1, 1, gpsSpeed},
	0x0e: {TagGPSTrackRef, "GPS track ref", "none", FormatAscii, -1, -1, gpsBearingRef},
	0x0f: {TagGPSTrack, "GPS track", "deg", FormatURational, 1, 1, gpsBearing},
	0x10: {TagGPSImgDirectionRef, "GPS image direction ref", "none", FormatAscii, -1, -1, gpsBearingRef},
	0x11: {TagGPSImgDirection, "GPS image direction", "deg", FormatURational, 1, 1, gpsBearing},
	0x12: {TagGPSMapDatum, "GPS map datum", "none", FormatAscii, -1, -1, strpass},
	0x13: {TagGPSDestLatitudeRef, "GPS destination latitude ref", "none", FormatAscii, -1, -1, strpass},
	0x14: {TagGPSDestLatitude, "GPS destination latitude", "D/M/S", FormatURational, 3, 3, dms},
	0x15: {TagGPSDestLongitudeRef, "GPS destination longitude ref", "none", FormatAscii, -1, -1, strpass},
	0x16: {TagGPSDestLongitude, "GPS destination longitude", "D/M/S", FormatURational, 3, 3, dms},
	0x17: {TagGPSDestBearingRef, "GPS destination bearing ref", "none", FormatAscii, -1, -1, gpsBearingRef},
	0x18: {TagGPSDestBearing, "GPS destination bearing", "deg", FormatURational, 1, 1, gpsBearing},
	0x19: {TagGPSDestDistanceRef, "GPS destination distance ref", "none", FormatAscii, -1, -1, gpsDestDistanceRef},
	0x1a: {TagGPSDestDistance, "GPS destination distance", "@GPSDestDistanceRef", FormatURational, 1, 1, gpsDestDistance},
	0x1b: {TagGPSProcessingMethod, "GPS processing method", "none", FormatUndefined, -1, -1, undefinedAsEncodedString},
	0x1c: {TagGPSAreaInformation, "GPS area information", "none", FormatUndefined, -1, -1, undefinedAsEncodedString},
	0x1d: {TagGPSDateStamp, "GPS date stamp", "none", FormatAscii, -1, -1, strpass},
	0x1e: {TagGPSDifferential, "GPS differential", "none", FormatU16, 1, 1, gpsDifferential},
}

// lookupTag resolves a namespace and raw tag code into a registry row. It is
// total over the uint16 domain: codes without a row, and all vendor
// namespaces, get the catch-all unknown descriptor.
func lookupTag(ns Namespace, code uint16) tagDesc {
	var d tagDesc
	var ok bool

	switch ns {
	case NamespaceStandard:
		d, ok = stdTags[code]
	case NamespaceGPS:
		d, ok = gpsTags[code]
	}
	if !ok {
		return unknownDesc
	}

	return d
}

// String returns the human-readable tag name, e.g. "Exposure time".
func (t ExifTag) String() string {
	if d, ok := stdTags[uint16(t)]; ok && d.tag == t {
		return d.name
	}
	if d, ok := gpsTags[uint16(t)]; ok && d.tag == t {
		return d.name
	}

	return unknownDesc.name
}
