package markout

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Horizon is a parsed horizon label such as "5s" or "15m".
type Horizon struct {
	Label     string
	Magnitude int
	Unit      rune
}

func (h Horizon) String() string { return h.Label }

// ParseHorizon splits a label into its integer magnitude and one-letter unit.
//
// The unit is kept for display only. Ordering uses the magnitude alone, so
// "9s" sorts before "10m" and "1m" ties with "1s".
func ParseHorizon(label string) (Horizon, error) {
	if utf8.RuneCountInString(label) < 2 {
		return Horizon{}, &FormatError{Label: label, Reason: "want <integer><unit>"}
	}

	unit, size := utf8.DecodeLastRuneInString(label)
	if !unicode.IsLetter(unit) {
		return Horizon{}, &FormatError{Label: label, Reason: "missing unit suffix"}
	}

	prefix := label[:len(label)-size]
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return Horizon{}, &FormatError{Label: label, Reason: "magnitude " + strconv.Quote(prefix) + " is not an integer"}
		}
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return Horizon{}, &FormatError{Label: label, Reason: "magnitude " + strconv.Quote(prefix) + " is not an integer"}
	}

	return Horizon{Label: label, Magnitude: n, Unit: unit}, nil
}
