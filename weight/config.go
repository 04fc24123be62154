package weight

import "math"

const (
	DefaultStep            = 0.1
	DefaultShiftMultiplier = 2.0
	DefaultMin             = 0.1
	DefaultMax             = 3.0
	DefaultPrecision       = 2

	maxPrecision = 10
)

// Config controls weight arithmetic.
//
// NaN and infinite fields fall back to their defaults independently, as
// does a negative Precision. Zero is a valid setting for every field; only a
// Config whose numeric fields are all zero is treated as DefaultConfig.
type Config struct {
	Step            float64
	ShiftMultiplier float64
	Min             float64
	Max             float64
	Precision       int

	// WholeTag widens the caret token from the word under the caret to the
	// whole comma-delimited tag.
	WholeTag bool
}

func DefaultConfig() Config {
	return Config{
		Step:            DefaultStep,
		ShiftMultiplier: DefaultShiftMultiplier,
		Min:             DefaultMin,
		Max:             DefaultMax,
		Precision:       DefaultPrecision,
	}
}

// Normalize returns c with every unusable field replaced by its default.
func (c Config) Normalize() Config {
	if c.isZero() {
		def := DefaultConfig()
		def.WholeTag = c.WholeTag
		return def
	}
	if !usable(c.Step) {
		c.Step = DefaultStep
	}
	if !usable(c.ShiftMultiplier) {
		c.ShiftMultiplier = DefaultShiftMultiplier
	}
	if !usable(c.Min) {
		c.Min = DefaultMin
	}
	if !usable(c.Max) {
		c.Max = DefaultMax
	}
	c.Precision = normalizePrecision(c.Precision)
	return c
}

func (c Config) isZero() bool {
	c.WholeTag = false
	return c == Config{}
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func normalizePrecision(p int) int {
	switch {
	case p < 0:
		return DefaultPrecision
	case p > maxPrecision:
		return maxPrecision
	}
	return p
}

// Direction is the sign of a weight adjustment.
type Direction int8

const (
	Down Direction = -1
	Up   Direction = 1
)

// Delta returns the signed step for one key press. Shift multiplies the
// step by ShiftMultiplier.
func (c Config) Delta(dir Direction, shift bool) float64 {
	c = c.Normalize()
	d := c.Step
	if dir < 0 {
		d = -d
	}
	if shift {
		d *= c.ShiftMultiplier
	}
	return d
}
