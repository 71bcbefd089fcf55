package models

import (
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates sloppy wire input. Form clients send
// quantities and rates as strings; malformed or empty values decode to 0
// rather than failing the request.
type Number float64

// ParseNumber is the single parse-or-zero implementation used everywhere a
// numeric field is read. Invalid input is 0, never an error. ParseFloat
// accepts NaN and infinity spellings; those are invalid here too, since a
// non-finite value would poison every total downstream and cannot be
// re-encoded as JSON.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	*n = Number(ParseNumber(s))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

func (n Number) Float() float64 {
	return float64(n)
}

// String renders the number the way a form field would show it, without
// trailing zeros.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
