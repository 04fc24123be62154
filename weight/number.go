package weight

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// isDecimal reports whether s is a signed decimal: [-+]?[0-9]*\.?[0-9]+
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}
	if i == len(s) {
		return intDigits > 0
	}
	if s[i] != '.' {
		return false
	}
	i++
	fracDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		fracDigits++
	}
	return fracDigits > 0 && i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func parseDecimal(s string) (float64, bool) {
	if !isDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Clamp limits v to [min, max]. When min > max the result is min.
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// Round rounds v to precision decimal digits. Values exactly halfway
// between two candidates round away from zero.
func Round(v float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	s, ok := roundHalfAway(v, precision)
	if !ok {
		s = strconv.FormatFloat(v, 'f', precision, 64)
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

// roundHalfAway formats v when its exact binary value lies halfway between
// two precision-digit decimals. FormatFloat settles those ties to even.
func roundHalfAway(v float64, precision int) (string, bool) {
	bits := uint(64 + 4*precision)
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)

	scaled := new(big.Float).SetPrec(bits).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, new(big.Float).SetPrec(bits).SetInt(pow))
	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(bits).Sub(scaled, new(big.Float).SetPrec(bits).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return "", false
	}
	whole.Add(whole, big.NewInt(1))

	digits := whole.String()
	if n := precision + 1 - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	s := digits
	if precision > 0 {
		s = digits[:len(digits)-precision] + "." + digits[len(digits)-precision:]
	}
	if v < 0 {
		s = "-" + s
	}
	return s, true
}

// FormatWeight renders v rounded to precision digits in its shortest form:
// 1.50 becomes "1.5", 2.00 becomes "2".
func FormatWeight(v float64, precision int) string {
	return strconv.FormatFloat(Round(v, precision), 'f', -1, 64)
}

// Render writes core with weight w in canonical form. A weight that rounds
// to 1 is omitted.
func Render(core string, w float64, precision int) string {
	if Round(w, precision) == 1 {
		return core
	}
	return "(" + core + ":" + FormatWeight(w, precision) + ")"
}

// step applies delta to current and reports whether the rendered weight
// changes.
func step(current, delta float64, cfg Config) (float64, bool) {
	next := Clamp(current+delta, cfg.Min, cfg.Max)
	return next, Round(next, cfg.Precision) != Round(current, cfg.Precision)
}

func trimSpaceRunes(s string) (lead, core, trail string) {
	core = strings.TrimLeftFunc(s, unicode.IsSpace)
	lead = s[:len(s)-len(core)]
	trimmed := strings.TrimRightFunc(core, unicode.IsSpace)
	trail = core[len(trimmed):]
	return lead, trimmed, trail
}
