package normalize

import (
	"fmt"
)

// Mode selects how an ambiguous indel is placed after rolling.
type Mode uint8

const (
	// ModeExpand widens the allele to cover the whole ambiguous region.
	ModeExpand Mode = iota
	// ModeShiftLeft places the allele at the left edge of the ambiguous region.
	ModeShiftLeft
	// ModeShiftRight places the allele at the right edge of the ambiguous region.
	ModeShiftRight
)

// String returns the mode's CLI spelling.
func (m Mode) String() string {
	switch m {
	case ModeExpand:
		return "expand"
	case ModeShiftLeft:
		return "left"
	case ModeShiftRight:
		return "right"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses a mode's CLI spelling.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "expand":
		return ModeExpand, nil
	case "left":
		return ModeShiftLeft, nil
	case "right":
		return ModeShiftRight, nil
	default:
		return 0, fmt.Errorf("unknown normalization mode %q", s)
	}
}

type intOption struct {
	value int
	set   bool
}

// Options configures allele normalization.
type Options struct {
	mode      Mode
	rollLimit intOption
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// WithMode sets the indel placement mode. The default is ModeExpand.
func (o Options) WithMode(m Mode) Options {
	o.mode = m
	return o
}

// WithRollLimit bounds how far an indel is rolled in each direction
// (0 leaves rolling unbounded).
func (o Options) WithRollLimit(n int) Options {
	o.rollLimit = intOption{value: n, set: true}
	return o
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

type resolvedOptions struct {
	mode      Mode
	rollLimit int
}

func (o Options) withDefaults() (resolvedOptions, error) {
	if o.mode > ModeShiftRight {
		return resolvedOptions{}, fmt.Errorf("invalid normalization mode %d", o.mode)
	}
	limit := 0
	if o.rollLimit.set {
		if o.rollLimit.value < 0 {
			return resolvedOptions{}, fmt.Errorf("roll limit must be non-negative, got %d", o.rollLimit.value)
		}
		limit = o.rollLimit.value
	}
	return resolvedOptions{mode: o.mode, rollLimit: limit}, nil
}
