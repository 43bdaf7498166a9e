package services

import (
	"strings"

	"github.com/yeremiapane/reservation-app/models"
)

// tableLess orders tables by floor rank, then natural name order, then raw
// name as a final tie-break.
func tableLess(a, b *models.Table) bool {
	if ra, rb := models.FloorRank(a.Floor), models.FloorRank(b.Floor); ra != rb {
		return ra < rb
	}
	if c := compareNatural(a.Name, b.Name); c != 0 {
		return c < 0
	}
	return a.Name < b.Name
}

// compareNatural compares digit runs as integers and everything else as
// plain text, so "floor2" sorts before "floor10". A digit run sorts before
// a text run at the same position.
func compareNatural(a, b string) int {
	for a != "" && b != "" {
		aTok, aDigits, aRest := nextRun(a)
		bTok, bDigits, bRest := nextRun(b)
		switch {
		case aDigits && bDigits:
			if c := compareDigitRuns(aTok, bTok); c != 0 {
				return c
			}
		case aDigits != bDigits:
			if aDigits {
				return -1
			}
			return 1
		default:
			if aTok != bTok {
				if aTok < bTok {
					return -1
				}
				return 1
			}
		}
		a, b = aRest, bRest
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextRun splits off the leading run of digits or non-digits. Only ASCII
// digits count as digits, so multi-byte runes fall into text runs and
// compare bytewise.
func nextRun(s string) (run string, digits bool, rest string) {
	digits = s[0] >= '0' && s[0] <= '9'
	i := 1
	for i < len(s) {
		d := s[i] >= '0' && s[i] <= '9'
		if d != digits {
			break
		}
		i++
	}
	return s[:i], digits, s[i:]
}

// compareDigitRuns compares two digit runs by numeric value without
// converting, so arbitrarily long runs cannot overflow.
func compareDigitRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
