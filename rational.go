package exifn

import (
	"fmt"
	"strconv"
)

// URational is the TIFF unsigned rational: an explicit numerator/denominator
// pair of 32-bit values, stored on disk as two consecutive longs.
type URational struct {
	Numerator   uint32
	Denominator uint32
}

// Value returns the rational as a floating point number. A zero denominator
// yields the normal IEEE result (+Inf or NaN), not an error.
func (r URational) Value() float64 {
	return float64(r.Numerator) / float64(r.Denominator)
}

func (r URational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// IRational is the TIFF signed rational: a numerator/denominator pair of
// signed 32-bit values.
type IRational struct {
	Numerator   int32
	Denominator int32
}

// Value returns the rational as a floating point number. A zero denominator
// yields the normal IEEE result (±Inf or NaN), not an error.
func (r IRational) Value() float64 {
	return float64(r.Numerator) / float64(r.Denominator)
}

func (r IRational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// fmtFloat renders a float the shortest way that round-trips, so integral
// values print without a decimal point ("40", not "40.000000").
func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
