package normalize

import (
	"context"
	"errors"
	"testing"

	vrerrors "github.com/reece/vr/errors"
	"github.com/reece/vr/models"
	"github.com/reece/vr/sequence"
)

const seqID = "refseq:NC_test.1"

// testSource holds CAGCAGCAG, the canonical trinucleotide repeat used
// throughout these tests.
func testSource() *sequence.MemoryStore {
	store := sequence.NewMemoryStore()
	store.Put(seqID, "CAGCAGCAG")
	return store
}

func allele(start, end int, state string) models.Allele {
	return models.NewAllele(
		models.NewSequenceLocation(seqID, start, end),
		models.NewSequenceState(state),
	)
}

func TestAllele(t *testing.T) {
	tests := []struct {
		name  string
		in    models.Allele
		opts  Options
		want  models.Allele
		same  bool // expect the input back unchanged
	}{
		{
			name: "repeat deletion expands",
			in:   allele(3, 6, ""),
			want: allele(0, 9, "CAGCAG"),
		},
		{
			name: "repeat insertion expands",
			in:   allele(3, 3, "CAG"),
			want: allele(0, 9, "CAGCAGCAGCAG"),
		},
		{
			name: "rotated insertion expands",
			in:   allele(4, 4, "AGC"),
			want: allele(0, 9, "CAGCAGCAGCAG"),
		},
		{
			name: "substitution unchanged",
			in:   allele(4, 5, "T"),
			same: true,
		},
		{
			name: "substitution trimmed",
			in:   allele(3, 6, "CTG"),
			want: allele(4, 5, "T"),
		},
		{
			name: "reference agreement unchanged",
			in:   allele(3, 6, "CAG"),
			same: true,
		},
		{
			name: "deletion shifts left",
			in:   allele(3, 6, ""),
			opts: NewOptions().WithMode(ModeShiftLeft),
			want: allele(0, 3, ""),
		},
		{
			name: "deletion shifts right",
			in:   allele(3, 6, ""),
			opts: NewOptions().WithMode(ModeShiftRight),
			want: allele(6, 9, ""),
		},
		{
			name: "insertion shifts left with rotation",
			in:   allele(4, 4, "AGC"),
			opts: NewOptions().WithMode(ModeShiftLeft),
			want: allele(0, 0, "CAG"),
		},
		{
			name: "insertion shifts right with rotation",
			in:   allele(4, 4, "AGC"),
			opts: NewOptions().WithMode(ModeShiftRight),
			want: allele(9, 9, "CAG"),
		},
		{
			name: "roll limit bounds expansion",
			in:   allele(3, 6, ""),
			opts: NewOptions().WithRollLimit(1),
			want: allele(2, 7, "GC"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allele(context.Background(), tt.in, testSource(), tt.opts)
			if err != nil {
				t.Fatalf("Allele() error = %v", err)
			}

			want := tt.want
			if tt.same {
				want = tt.in
			}
			gotLoc, _ := got.Location.Resolved()
			wantLoc, _ := want.Location.Resolved()
			if gotLoc.Interval != wantLoc.Interval {
				t.Errorf("interval = [%d, %d), want [%d, %d)",
					gotLoc.Interval.Start, gotLoc.Interval.End,
					wantLoc.Interval.Start, wantLoc.Interval.End)
			}
			if got.State.Sequence != want.State.Sequence {
				t.Errorf("state = %q, want %q", got.State.Sequence, want.State.Sequence)
			}
		})
	}
}

func TestAlleleNormalizationIdempotent(t *testing.T) {
	src := testSource()

	once, err := Allele(context.Background(), allele(3, 6, ""), src, NewOptions())
	if err != nil {
		t.Fatalf("Allele() error = %v", err)
	}
	twice, err := Allele(context.Background(), once, src, NewOptions())
	if err != nil {
		t.Fatalf("Allele(normalized) error = %v", err)
	}

	onceLoc, _ := once.Location.Resolved()
	twiceLoc, _ := twice.Location.Resolved()
	if onceLoc.Interval != twiceLoc.Interval || once.State.Sequence != twice.State.Sequence {
		t.Errorf("second normalization changed allele: %+v vs %+v", once, twice)
	}
}

func TestAlleleUnresolvedLocation(t *testing.T) {
	a := allele(3, 6, "")
	a.Location = models.LocationRef{CURIE: "ga4gh:VSL.EhF8FehHeWNA9-R2CmWul4UU2D1eoqbZ"}

	_, err := Allele(context.Background(), a, testSource(), NewOptions())
	if err == nil {
		t.Fatal("Allele() error = nil, want unresolved location error")
	}
	list, ok := vrerrors.AsValidations(err)
	if !ok || list[0].Code != string(vrerrors.ErrLocationUnresolved) {
		t.Errorf("error = %v, want code %s", err, vrerrors.ErrLocationUnresolved)
	}
}

func TestAlleleUnknownSequence(t *testing.T) {
	a := models.NewAllele(
		models.NewSequenceLocation("refseq:NC_absent.1", 0, 1),
		models.NewSequenceState("A"),
	)

	_, err := Allele(context.Background(), a, testSource(), NewOptions())
	if !errors.Is(err, sequence.ErrNotFound) {
		t.Errorf("Allele() error = %v, want %v", err, sequence.ErrNotFound)
	}
}

func TestAlleleInvalidInput(t *testing.T) {
	a := allele(6, 3, "") // inverted interval

	_, err := Allele(context.Background(), a, testSource(), NewOptions())
	if err == nil {
		t.Fatal("Allele() error = nil, want validation error")
	}
	list, ok := vrerrors.AsValidations(err)
	if !ok || list[0].Code != string(vrerrors.ErrIntervalBounds) {
		t.Errorf("error = %v, want code %s", err, vrerrors.ErrIntervalBounds)
	}
}

func TestVariationTextPassesThrough(t *testing.T) {
	text := models.NewText("APOE loss")

	v, err := Variation(context.Background(), text, testSource(), NewOptions())
	if err != nil {
		t.Fatalf("Variation() error = %v", err)
	}
	if v != models.Variation(text) {
		t.Errorf("Variation() = %+v, want input unchanged", v)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "expand", want: ModeExpand},
		{in: "left", want: ModeShiftLeft},
		{in: "right", want: ModeShiftRight},
		{in: "EXPAND", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseMode() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := NewOptions().Validate(); err != nil {
		t.Errorf("NewOptions().Validate() error = %v", err)
	}
	if err := NewOptions().WithRollLimit(-1).Validate(); err == nil {
		t.Error("WithRollLimit(-1).Validate() error = nil, want error")
	}
}
