// Package normalize rewrites alleles into fully-justified form: common
// flanking sequence is trimmed, and an ambiguous indel is rolled across
// the reference to its maximal region, then expanded or shifted to an
// edge depending on the mode.
package normalize

import (
	"context"
	"fmt"

	vrerrors "github.com/reece/vr/errors"
	"github.com/reece/vr/internal/ctxlog"
	"github.com/reece/vr/models"
	"github.com/reece/vr/sequence"
)

// Variation normalizes a variation. Classes without sequence semantics,
// such as Text, pass through unchanged.
func Variation(ctx context.Context, v models.Variation, src sequence.Source, opts Options) (models.Variation, error) {
	switch m := v.(type) {
	case models.Allele:
		return Allele(ctx, m, src, opts)
	default:
		return v, nil
	}
}

// Allele normalizes an allele against the reference sequence named by
// its location. The location must be inline; dereference a compacted
// allele first.
func Allele(ctx context.Context, a models.Allele, src sequence.Source, opts Options) (models.Allele, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return models.Allele{}, fmt.Errorf("normalize allele: %w", err)
	}
	if err := models.Validate(a); err != nil {
		return models.Allele{}, fmt.Errorf("normalize allele: %w", err)
	}

	loc, ok := a.Location.Resolved()
	if !ok {
		return models.Allele{}, vrerrors.ValidationList{
			vrerrors.NewValidation(vrerrors.ErrLocationUnresolved,
				"allele location is a reference; dereference before normalizing", "/location"),
		}
	}

	id := string(loc.SequenceID)
	start, end := loc.Interval.Start, loc.Interval.End

	ref, err := src.Sequence(ctx, id, start, end)
	if err != nil {
		return models.Allele{}, fmt.Errorf("normalize allele: %w", err)
	}
	alt := a.State.Sequence

	if ref == alt {
		// Asserts the reference state; nothing to justify.
		return a, nil
	}

	trimmedRef, trimmedAlt, left, right := trimCommon(ref, alt)
	newStart, newEnd := start+left, end-right

	if trimmedRef != "" && trimmedAlt != "" {
		// Substitution; trimming is the whole normalization.
		if left == 0 && right == 0 {
			return a, nil
		}
		return rebuilt(*loc, newStart, newEnd, trimmedAlt), nil
	}

	// One side is empty: an insertion or deletion whose placement may
	// be ambiguous. Roll it across the reference.
	seq := trimmedRef + trimmedAlt

	win, err := newWindow(ctx, src, id)
	if err != nil {
		return models.Allele{}, fmt.Errorf("normalize allele: %w", err)
	}
	leftRoll, err := win.rollLeft(newStart, seq, resolved.rollLimit)
	if err != nil {
		return models.Allele{}, fmt.Errorf("normalize allele: roll left: %w", err)
	}
	rightRoll, err := win.rollRight(newEnd, seq, resolved.rollLimit)
	if err != nil {
		return models.Allele{}, fmt.Errorf("normalize allele: roll right: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("ambiguous region resolved",
		"sequence_id", id,
		"interval_start", newStart,
		"interval_end", newEnd,
		"roll_left", leftRoll,
		"roll_right", rightRoll,
		"mode", resolved.mode.String())

	switch resolved.mode {
	case ModeShiftLeft:
		return rebuilt(*loc, newStart-leftRoll, newEnd-leftRoll, rotateRight(trimmedAlt, leftRoll)), nil
	case ModeShiftRight:
		return rebuilt(*loc, newStart+rightRoll, newEnd+rightRoll, rotateLeft(trimmedAlt, rightRoll)), nil
	default: // ModeExpand
		expStart, expEnd := newStart-leftRoll, newEnd+rightRoll
		flankLeft, err := win.slice(expStart, newStart)
		if err != nil {
			return models.Allele{}, fmt.Errorf("normalize allele: %w", err)
		}
		flankRight, err := win.slice(newEnd, expEnd)
		if err != nil {
			return models.Allele{}, fmt.Errorf("normalize allele: %w", err)
		}
		return rebuilt(*loc, expStart, expEnd, flankLeft+trimmedAlt+flankRight), nil
	}
}

// trimCommon removes flanking sequence shared by both alleles, suffix
// first, and reports how much was taken from each side.
func trimCommon(ref, alt string) (string, string, int, int) {
	right := 0
	for len(ref)-right > 0 && len(alt)-right > 0 && ref[len(ref)-right-1] == alt[len(alt)-right-1] {
		right++
	}
	ref, alt = ref[:len(ref)-right], alt[:len(alt)-right]

	left := 0
	for left < len(ref) && left < len(alt) && ref[left] == alt[left] {
		left++
	}
	return ref[left:], alt[left:], left, right
}

func rotateRight(s string, d int) string {
	if len(s) == 0 {
		return s
	}
	d %= len(s)
	if d == 0 {
		return s
	}
	return s[len(s)-d:] + s[:len(s)-d]
}

func rotateLeft(s string, d int) string {
	if len(s) == 0 {
		return s
	}
	d %= len(s)
	if d == 0 {
		return s
	}
	return s[d:] + s[:d]
}

// rebuilt returns a fresh allele over the same sequence. Identifiers
// are not carried over; the content they named has changed.
func rebuilt(loc models.SequenceLocation, start, end int, state string) models.Allele {
	return models.NewAllele(
		models.NewSequenceLocation(loc.SequenceID, start, end),
		models.NewSequenceState(state),
	)
}
