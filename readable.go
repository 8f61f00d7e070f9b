package exifn

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
)

// Renderers convert a decoded TagValue into a human-readable string. Each is
// registered for exactly one tag family, and is only ever invoked after the
// registry has verified that the on-disk format matches the descriptor, so a
// variant mismatch here is a library bug, not bad input.

const invalidData = "Invalid data for this tag"

// strpass is the no-op renderer, used for ASCII tags and for values whose
// default representation is already pretty enough.
func strpass(e TagValue) string {
	return e.String()
}

func orientation(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 1:
		return "Straight"
	case 3:
		return "Upside down"
	case 6:
		return "Rotated to left"
	case 8:
		return "Rotated to right"
	case 9:
		return "Undefined"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

// rationalValue renders rationals as their decimal value rather than the
// raw numerator/denominator pair.
func rationalValue(e TagValue) string {
	var out []string

	switch v := e.(type) {
	case URationals:
		for _, r := range v {
			out = append(out, fmtFloat(r.Value()))
		}
	case IRationals:
		for _, r := range v {
			out = append(out, fmtFloat(r.Value()))
		}
	default:
		panic(invalidData)
	}

	return strings.Join(out, ", ")
}

func resolutionUnit(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 1:
		return "Unitless"
	case 2:
		return "in"
	case 3:
		return "cm"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

// exposureTime keeps the traditional 1/x notation for short exposures that
// are stored that way, and falls back to reciprocal or decimal rendering
// otherwise. The branch order matters: (1,2) must come out as "1/2.0 s",
// not "1/2 s".
func exposureTime(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	r := v[0]
	val := r.Value()
	switch {
	case val < 0.1:
		if r.Numerator == 1 && r.Denominator > 1 {
			return fmt.Sprintf("%s s", r)
		}

		return fmt.Sprintf("1/%.0f s", 1.0/val)
	case val < 1.0:
		return fmt.Sprintf("1/%.1f s", 1.0/val)
	default:
		return fmt.Sprintf("%.1f s", val)
	}
}

func fNumber(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("f/%.1f", v[0].Value())
}

func exposureProgram(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 1:
		return "Manual control"
	case 2:
		return "Program control"
	case 3:
		return "Aperture priority"
	case 4:
		return "Shutter priority"
	case 5:
		return "Program creative (slow program)"
	case 6:
		return "Program creative (high-speed program)"
	case 7:
		return "Portrait mode"
	case 8:
		return "Landscape mode"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func focalLength(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%s mm", fmtFloat(v[0].Value()))
}

func focalLength35(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%d mm", v[0])
}

func meters(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%.1f m", v[0].Value())
}

func isoSpeeds(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch len(v) {
	case 1:
		return fmt.Sprintf("ISO %d", v[0])
	case 2, 3:
		return fmt.Sprintf("ISO %d latitude %d", v[0], v[1])
	default:
		return fmt.Sprintf("Unknown (%s)", v.String())
	}
}

// dms renders a degrees/minutes/seconds triplet. Three shapes are possible:
// when degrees and minutes are exact integers, the usual D°M'S" form; when
// only degrees are integral, fractional minutes; otherwise everything is
// collapsed into fractional degrees.
func dms(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	deg, min, sec := v[0], v[1], v[2]
	switch {
	case deg.Denominator == 1 && min.Denominator == 1:
		return fmt.Sprintf("%s°%s'%.2f\"", fmtFloat(deg.Value()), fmtFloat(min.Value()), sec.Value())
	case deg.Denominator == 1:
		return fmt.Sprintf("%s°%.4f'", fmtFloat(deg.Value()), min.Value()+sec.Value()/60.0)
	default:
		// untypical format
		return fmt.Sprintf("%.7f°", deg.Value()+min.Value()/60.0+sec.Value()/3600.0)
	}
}

func gpsAltRef(e TagValue) string {
	v, ok := e.(U8s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Above sea level"
	case 1:
		return "Below sea level"
	default:
		return fmt.Sprintf("Unknown, assumed below sea level (%d)", v[0])
	}
}

func gpsDestDistanceRef(e TagValue) string {
	v, ok := e.(Ascii)
	if !ok {
		panic(invalidData)
	}

	switch v {
	case "N":
		return "kn"
	case "K":
		return "km"
	case "M":
		return "mi"
	default:
		return fmt.Sprintf("Unknown (%s)", string(v))
	}
}

func gpsDestDistance(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%.3f", v[0].Value())
}

func gpsSpeedRef(e TagValue) string {
	v, ok := e.(Ascii)
	if !ok {
		panic(invalidData)
	}

	switch v {
	case "N":
		return "kn"
	case "K":
		return "km/h"
	case "M":
		return "mi/h"
	default:
		return fmt.Sprintf("Unknown (%s)", string(v))
	}
}

func gpsSpeed(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%.1f", v[0].Value())
}

func gpsBearingRef(e TagValue) string {
	v, ok := e.(Ascii)
	if !ok {
		panic(invalidData)
	}

	switch v {
	case "T":
		return "True bearing"
	case "M":
		return "Magnetic bearing"
	default:
		return fmt.Sprintf("Unknown (%s)", string(v))
	}
}

func gpsBearing(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%.2f°", v[0].Value())
}

func gpsTimestamp(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%02.0f:%02.0f:%04.1f UTC", v[0].Value(), v[1].Value(), v[2].Value())
}

func gpsDifferential(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Measurement without differential correction"
	case 1:
		return "Differential correction applied"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func gpsStatus(e TagValue) string {
	v, ok := e.(Ascii)
	if !ok {
		panic(invalidData)
	}

	switch v {
	case "A":
		return "Measurement in progress"
	case "V":
		return "Measurement is interoperability"
	default:
		return fmt.Sprintf("Unknown (%s)", string(v))
	}
}

func gpsMeasureMode(e TagValue) string {
	v, ok := e.(Ascii)
	if !ok {
		panic(invalidData)
	}

	switch v {
	case "2":
		return "2-dimension"
	case "3":
		return "3-dimension"
	default:
		return fmt.Sprintf("Unknown (%s)", string(v))
	}
}

// undefinedAsAscii interprets an Undefined tag as text, for tags whose
// contents are guaranteed by the standard to be ASCII-compatible. UTF-8 is
// admitted in case the standard ever allows it.
func undefinedAsAscii(e TagValue) string {
	v, ok := e.(Undefined)
	if !ok {
		panic(invalidData)
	}

	return lossyUTF8(v.Bytes)
}

// undefinedAsU8 lists an Undefined tag as bytes, for opaque small payloads.
func undefinedAsU8(e TagValue) string {
	v, ok := e.(Undefined)
	if !ok {
		panic(invalidData)
	}

	return toCSV(v.Bytes)
}

// undefinedAsEncodedString decodes an Undefined tag that carries a string
// with an 8-byte encoding preamble (ASCII, JIS or UNICODE).
func undefinedAsEncodedString(e TagValue) string {
	var (
		preambleASCII   = []byte{'A', 'S', 'C', 'I', 'I', 0, 0, 0}
		preambleJIS     = []byte{'J', 'I', 'S', 0, 0, 0, 0, 0}
		preambleUnicode = []byte{'U', 'N', 'I', 'C', 'O', 'D', 'E', 0}
	)

	v, ok := e.(Undefined)
	if !ok {
		panic(invalidData)
	}

	switch {
	case len(v.Bytes) < 8:
		return fmt.Sprintf("String w/ truncated preamble %s", toCSV(v.Bytes))
	case bytes.Equal(v.Bytes[:8], preambleASCII):
		return lossyUTF8(v.Bytes[8:])
	case bytes.Equal(v.Bytes[:8], preambleJIS):
		return fmt.Sprintf("JIS string %s", toCSV(v.Bytes[8:]))
	case bytes.Equal(v.Bytes[:8], preambleUnicode):
		raw := v.Bytes[8:]
		units := readU16Array(v.LE, uint32(len(raw)/2), raw)

		return string(utf16.Decode(units))
	default:
		return fmt.Sprintf("String w/ undefined encoding %s", toCSV(v.Bytes))
	}
}

// undefinedAsBlob notes only the length of an opaque, typically large blob.
func undefinedAsBlob(e TagValue) string {
	v, ok := e.(Undefined)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("Blob of %d bytes", len(v.Bytes))
}

func apexTv(e TagValue) string {
	v, ok := e.(IRationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%.1f Tv APEX", v[0].Value())
}

func apexAv(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%.1f Av APEX", v[0].Value())
}

func apexBrightness(e TagValue) string {
	v, ok := e.(IRationals)
	if !ok {
		panic(invalidData)
	}

	// numerator 0xffffffff = unknown
	if v[0].Numerator == -1 {
		return "Unknown"
	}

	return fmt.Sprintf("%.1f APEX", v[0].Value())
}

func apexEv(e TagValue) string {
	v, ok := e.(IRationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%.2f EV APEX", v[0].Value())
}

func fileSource(e TagValue) string {
	v, ok := e.(Undefined)
	if !ok {
		panic(invalidData)
	}

	if len(v.Bytes) > 0 && v.Bytes[0] == 3 {
		return "DSC"
	}

	return "Unknown"
}

func flashEnergy(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("%s BCPS", fmtFloat(v[0].Value()))
}

func meteringMode(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Unknown"
	case 1:
		return "Average"
	case 2:
		return "Center-weighted average"
	case 3:
		return "Spot"
	case 4:
		return "Multi-spot"
	case 5:
		return "Pattern"
	case 6:
		return "Partial"
	case 255:
		return "Other"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func lightSource(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Unknown"
	case 1:
		return "Daylight"
	case 2:
		return "Fluorescent"
	case 3:
		return "Tungsten"
	case 4:
		return "Flash"
	case 9:
		return "Fine weather"
	case 10:
		return "Cloudy weather"
	case 11:
		return "Shade"
	case 12:
		return "Daylight fluorescent (D)"
	case 13:
		return "Day white fluorescent (N)"
	case 14:
		return "Cool white fluorescent (W)"
	case 15:
		return "White fluorescent (WW)"
	case 17:
		return "Standard light A"
	case 18:
		return "Standard light B"
	case 19:
		return "Standard light C"
	case 20:
		return "D55"
	case 21:
		return "D65"
	case 22:
		return "D75"
	case 23:
		return "D50"
	case 24:
		return "ISO studio tungsten"
	case 255:
		return "Other"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func colorSpace(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 1:
		return "sRGB"
	case 65535:
		return "Uncalibrated"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

// flash decodes the Flash bit field. Bit 5 set means the unit has no flash
// at all and short-circuits everything else. Note that the auto-mode text
// lands in the strobe-return slot, matching the reference output order.
func flash(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	n := v[0]
	if n&(1<<5) > 0 {
		return "Does not have a flash."
	}

	b0 := "Did not fire. "
	b12 := ""
	b34 := ""
	b6 := ""

	if n&1 > 0 {
		b0 = "Fired. "
		if n&(1<<6) > 0 {
			b6 = "Redeye reduction. "
		} else {
			b6 = "No redeye reduction. "
		}

		switch (n >> 1) & 3 {
		case 2:
			b12 = "Strobe ret not detected. "
		case 3:
			b12 = "Strobe ret detected. "
		}
	}

	switch (n >> 3) & 3 {
	case 1:
		b34 = "Forced fire. "
	case 2:
		b34 = "Forced suppresion. "
	case 3:
		b12 = "Auto mode. "
	}

	return b0 + b12 + b34 + b6
}

func subjectArea(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch len(v) {
	case 2:
		return fmt.Sprintf("at pixel %d,%d", v[0], v[1])
	case 3:
		return fmt.Sprintf("at center %d,%d radius %d", v[0], v[1], v[2])
	case 4:
		return fmt.Sprintf("at rectangle %d,%d width %d height %d", v[0], v[1], v[2], v[3])
	default:
		return fmt.Sprintf("Unknown (%s) ", v.String())
	}
}

func subjectLocation(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	return fmt.Sprintf("at pixel %d,%d", v[0], v[1])
}

func sharpness(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Normal"
	case 1:
		return "Soft"
	case 2:
		return "Hard"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func saturation(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Normal"
	case 1:
		return "Low"
	case 2:
		return "High"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func contrast(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Normal"
	case 1:
		return "Soft"
	case 2:
		return "Hard"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func gainControl(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "None"
	case 1:
		return "Low gain up"
	case 2:
		return "High gain up"
	case 3:
		return "Low gain down"
	case 4:
		return "High gain down"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func exposureMode(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Auto exposure"
	case 1:
		return "Manual exposure"
	case 2:
		return "Auto bracket"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func sceneCaptureType(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Standard"
	case 1:
		return "Landscape"
	case 2:
		return "Portrait"
	case 3:
		return "Night scene"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func sceneType(e TagValue) string {
	v, ok := e.(Undefined)
	if !ok {
		panic(invalidData)
	}

	if len(v.Bytes) > 0 && v.Bytes[0] == 1 {
		return "Directly photographed image"
	}
	if len(v.Bytes) == 0 {
		return "Unknown ()"
	}

	return fmt.Sprintf("Unknown (%d)", v.Bytes[0])
}

func whiteBalanceMode(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Auto"
	case 1:
		return "Manual"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func sensingMethod(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 1:
		return "Not defined"
	case 2:
		return "One-chip color area sensor"
	case 3:
		return "Two-chip color area sensor"
	case 4:
		return "Three-chip color area sensor"
	case 5:
		return "Color sequential area sensor"
	case 7:
		return "Trilinear sensor"
	case 8:
		return "Color sequential linear sensor"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func customRendered(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Normal"
	case 1:
		return "Custom"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

func subjectDistanceRange(e TagValue) string {
	v, ok := e.(U16s)
	if !ok {
		panic(invalidData)
	}

	switch v[0] {
	case 0:
		return "Unknown"
	case 1:
		return "Macro"
	case 2:
		return "Close view"
	case 3:
		return "Distant view"
	default:
		return fmt.Sprintf("Unknown (%d)", v[0])
	}
}

// lensSpec renders the four-rational lens specification: focal length range
// followed by the aperture range, either of which may collapse to a single
// value. An unknown aperture is stored as 0/0, i.e. NaN.
func lensSpec(e TagValue) string {
	v, ok := e.(URationals)
	if !ok {
		panic(invalidData)
	}

	f0 := v[0].Value()
	f1 := v[1].Value()
	a0 := v[2].Value()
	a1 := v[3].Value()

	if v[0] == v[1] {
		if !math.IsNaN(a0) {
			return fmt.Sprintf("%s mm f/%.1f", fmtFloat(f0), a0)
		}

		return fmt.Sprintf("%s mm f/unknown", fmtFloat(f0))
	}

	if !math.IsNaN(a0) && !math.IsNaN(a1) {
		return fmt.Sprintf("%s-%s mm f/%.1f-%.1f", fmtFloat(f0), fmtFloat(f1), a0, a1)
	}

	return fmt.Sprintf("%s-%s mm f/unknown", fmtFloat(f0), fmtFloat(f1))
}

// lossyUTF8 converts bytes to a string, replacing invalid sequences with
// the replacement character instead of failing.
func lossyUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
