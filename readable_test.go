package exifn

import (
	"testing"
)

func TestOrientationReadable(t *testing.T) {
	tests := []struct {
		raw  uint16
		want string
	}{
		{1, "Straight"},
		{3, "Upside down"},
		{6, "Rotated to left"},
		{8, "Rotated to right"},
		{9, "Undefined"},
		{42, "Unknown (42)"},
	}

	for _, tt := range tests {
		if got := orientation(U16s{tt.raw}); got != tt.want {
			t.Errorf("orientation(%d) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExposureTimeReadable(t *testing.T) {
	tests := []struct {
		num, den uint32
		want     string
	}{
		{1, 125, "1/125 s"},
		{1, 2, "1/2.0 s"},
		{3, 1, "3.0 s"},
		{3, 125, "1/42 s"},
	}

	for _, tt := range tests {
		got := exposureTime(URationals{{Numerator: tt.num, Denominator: tt.den}})
		if got != tt.want {
			t.Errorf("exposureTime(%d/%d) = %q, want %q", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestFNumberReadable(t *testing.T) {
	got := fNumber(URationals{{Numerator: 28, Denominator: 10}})
	if got != "f/2.8" {
		t.Errorf("fNumber(28/10) = %q, want %q", got, "f/2.8")
	}
}

func TestDmsReadable(t *testing.T) {
	// Integer degrees and minutes keep the D/M/S shape.
	v := URationals{
		{Numerator: 40, Denominator: 1},
		{Numerator: 26, Denominator: 1},
		{Numerator: 46, Denominator: 2},
	}
	if got := dms(v); got != "40°26'23.00\"" {
		t.Errorf("dms integer deg/min = %q, want %q", got, "40°26'23.00\"")
	}

	// Fractional minutes collapse seconds into the minutes.
	v = URationals{
		{Numerator: 40, Denominator: 1},
		{Numerator: 53, Denominator: 2},
		{Numerator: 30, Denominator: 1},
	}
	if got := dms(v); got != "40°27.0000'" {
		t.Errorf("dms fractional minutes = %q, want %q", got, "40°27.0000'")
	}

	// Fractional degrees collapse everything.
	v = URationals{
		{Numerator: 81, Denominator: 2},
		{Numerator: 30, Denominator: 1},
		{Numerator: 0, Denominator: 1},
	}
	if got := dms(v); got != "41.0000000°" {
		t.Errorf("dms fractional degrees = %q, want %q", got, "41.0000000°")
	}
}

func TestFlashReadable(t *testing.T) {
	// Bit 5 short-circuits everything else.
	if got := flash(U16s{0x20}); got != "Does not have a flash." {
		t.Errorf("flash(0x20) = %q, want %q", got, "Does not have a flash.")
	}
	if got := flash(U16s{0x3f}); got != "Does not have a flash." {
		t.Errorf("flash(0x3f) = %q, want %q", got, "Does not have a flash.")
	}

	// 0x19: fired, auto mode.
	if got := flash(U16s{0x19}); got == "Does not have a flash." {
		t.Errorf("flash(0x19) must not claim the unit has no flash")
	}
	if got := flash(U16s{0x19}); got != "Fired. Auto mode. No redeye reduction. " {
		t.Errorf("flash(0x19) = %q", got)
	}

	if got := flash(U16s{0x01}); got != "Fired. No redeye reduction. " {
		t.Errorf("flash(0x01) = %q", got)
	}
	if got := flash(U16s{0x00}); got != "Did not fire. " {
		t.Errorf("flash(0x00) = %q", got)
	}
	if got := flash(U16s{0x45}); got != "Fired. Strobe ret not detected. Redeye reduction. " {
		t.Errorf("flash(0x45) = %q", got)
	}
}

func TestApexBrightnessReadable(t *testing.T) {
	if got := apexBrightness(IRationals{{Numerator: -1, Denominator: 1}}); got != "Unknown" {
		t.Errorf("apexBrightness(-1/1) = %q, want Unknown", got)
	}
	if got := apexBrightness(IRationals{{Numerator: 5, Denominator: 2}}); got != "2.5 APEX" {
		t.Errorf("apexBrightness(5/2) = %q, want %q", got, "2.5 APEX")
	}
}

func TestEncodedStringReadable(t *testing.T) {
	ascii := append([]byte("ASCII\x00\x00\x00"), []byte("hello")...)
	v := Undefined{Bytes: ascii, LE: true}
	if got := undefinedAsEncodedString(v); got != "hello" {
		t.Errorf("ASCII comment = %q, want %q", got, "hello")
	}

	unicode := append([]byte("UNICODE\x00"), 'h', 0, 'i', 0)
	v = Undefined{Bytes: unicode, LE: true}
	if got := undefinedAsEncodedString(v); got != "hi" {
		t.Errorf("UNICODE comment = %q, want %q", got, "hi")
	}

	short := Undefined{Bytes: []byte{1, 2}, LE: true}
	if got := undefinedAsEncodedString(short); got != "String w/ truncated preamble 1, 2" {
		t.Errorf("truncated preamble = %q", got)
	}

	junk := Undefined{Bytes: []byte("XXXXXXXXab"), LE: true}
	want := "String w/ undefined encoding 88, 88, 88, 88, 88, 88, 88, 88, 97, 98"
	if got := undefinedAsEncodedString(junk); got != want {
		t.Errorf("undefined encoding = %q, want %q", got, want)
	}
}

func TestLensSpecReadable(t *testing.T) {
	prime := URationals{
		{Numerator: 50, Denominator: 1},
		{Numerator: 50, Denominator: 1},
		{Numerator: 18, Denominator: 10},
		{Numerator: 18, Denominator: 10},
	}
	if got := lensSpec(prime); got != "50 mm f/1.8" {
		t.Errorf("lensSpec prime = %q, want %q", got, "50 mm f/1.8")
	}

	zoom := URationals{
		{Numerator: 24, Denominator: 1},
		{Numerator: 70, Denominator: 1},
		{Numerator: 28, Denominator: 10},
		{Numerator: 4, Denominator: 1},
	}
	if got := lensSpec(zoom); got != "24-70 mm f/2.8-4.0" {
		t.Errorf("lensSpec zoom = %q, want %q", got, "24-70 mm f/2.8-4.0")
	}

	// 0/0 apertures mean unknown.
	unknown := URationals{
		{Numerator: 24, Denominator: 1},
		{Numerator: 70, Denominator: 1},
		{Numerator: 0, Denominator: 0},
		{Numerator: 0, Denominator: 0},
	}
	if got := lensSpec(unknown); got != "24-70 mm f/unknown" {
		t.Errorf("lensSpec unknown aperture = %q, want %q", got, "24-70 mm f/unknown")
	}
}

func TestResolutionUnitReadable(t *testing.T) {
	if got := resolutionUnit(U16s{2}); got != "in" {
		t.Errorf("resolutionUnit(2) = %q, want %q", got, "in")
	}
	if got := resolutionUnit(U16s{3}); got != "cm" {
		t.Errorf("resolutionUnit(3) = %q, want %q", got, "cm")
	}
}

func TestGpsTimestampReadable(t *testing.T) {
	v := URationals{
		{Numerator: 8, Denominator: 1},
		{Numerator: 4, Denominator: 1},
		{Numerator: 115, Denominator: 10},
	}
	if got := gpsTimestamp(v); got != "08:04:11.5 UTC" {
		t.Errorf("gpsTimestamp = %q, want %q", got, "08:04:11.5 UTC")
	}
}

func TestRendererPanicsOnWrongVariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("orientation on Ascii value should panic")
		}
	}()

	orientation(Ascii("nope"))
}
