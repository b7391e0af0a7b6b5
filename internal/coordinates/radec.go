// Package coordinates parses sky positions from J2000 source designations
// such as "SDSS J123456.78+123456.7".
package coordinates

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jsamuelsen/rastro/internal/domain"
)

// Groups: prefix, RA hh mm ss frac, Dec sign dd mm ss frac.
var designationRe = regexp.MustCompile(
	`(.*?J)([0-2]\d)([0-5]\d)([0-5]\d)\.?(\d{0,3})([+-])(\d{1,2})([0-5]\d)([0-5]\d)\.?(\d{0,3})`,
)

// RaDec is an equatorial position.
type RaDec struct {
	// Prefix is everything up to and including the "J", e.g. "SDSS J".
	Prefix string `json:"prefix"`
	// RAHours is the right ascension in hours.
	RAHours float64 `json:"ra_hours"`
	// RA is the right ascension in degrees.
	RA float64 `json:"ra_deg"`
	// Dec is the declination in degrees.
	Dec float64 `json:"dec_deg"`
}

// String renders the position as "ra=<deg> dec=<deg>".
func (c RaDec) String() string {
	return fmt.Sprintf("ra=%s dec=%s",
		strconv.FormatFloat(c.RA, 'f', -1, 64),
		strconv.FormatFloat(c.Dec, 'f', -1, 64))
}

// ParseDesignation extracts the position encoded in a J designation.
// Right ascension is read as hours, minutes and seconds; declination as
// signed degrees, arcminutes and arcseconds. Up to three digits after the
// seconds are taken as the decimal fraction of the seconds.
func ParseDesignation(designation string) (RaDec, error) {
	m := designationRe.FindStringSubmatch(designation)
	if m == nil {
		return RaDec{}, domain.NewValidationErrorWithValue("designation",
			"expected JHHMMSS[.sss]+DDMMSS[.sss]", designation)
	}

	hours, err := sexagesimal("+", m[2], m[3], m[4], m[5])
	if err != nil {
		return RaDec{}, err
	}

	dec, err := sexagesimal(m[6], m[7], m[8], m[9], m[10])
	if err != nil {
		return RaDec{}, err
	}

	return RaDec{
		Prefix:  m[1],
		RAHours: hours,
		RA:      hours * 15,
		Dec:     dec,
	}, nil
}

func sexagesimal(sign, whole, minutes, seconds, frac string) (float64, error) {
	w, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", whole, err)
	}

	mm, err := strconv.ParseFloat(minutes, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", minutes, err)
	}

	ss, err := strconv.ParseFloat(seconds+"."+frac+"0", 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", seconds, err)
	}

	v := w + mm/60 + ss/3600
	if sign == "-" {
		v = -v
	}

	return v, nil
}
