package digest

import (
	"testing"

	"github.com/reece/vr/models"
)

func TestSHA512t24u(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "empty", data: "", want: "z4PhNX7vuL3xVChQ1m2AB9Yg5AULVxXc"},
		{name: "ACGT", data: "ACGT", want: "aKF498dAxcJAqme6QYQ7EZ07-fiw8Kw2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SHA512t24u([]byte(tt.data)); got != tt.want {
				t.Errorf("SHA512t24u(%q) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestSerializeSequenceLocation(t *testing.T) {
	loc := models.NewSequenceLocation("refseq:NC_000019.10", 44908821, 44908822)

	got, err := Serialize(loc)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := `{"interval":{"end":44908822,"start":44908821,"type":"SimpleInterval"},"sequence_id":"refseq:NC_000019.10","type":"SequenceLocation"}`
	if string(got) != want {
		t.Errorf("Serialize() = %s, want %s", got, want)
	}
}

func TestSerializeExcludesIdentifier(t *testing.T) {
	loc := models.NewSequenceLocation("refseq:NC_000019.10", 44908821, 44908822)
	withID := loc
	withID.ID = "ga4gh:VSL.EhF8FehHeWNA9-R2CmWul4UU2D1eoqbZ"

	a, err := Serialize(loc)
	if err != nil {
		t.Fatalf("Serialize(bare) error = %v", err)
	}
	b, err := Serialize(withID)
	if err != nil {
		t.Fatalf("Serialize(identified) error = %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("serialization differs with _id set:\n%s\n%s", a, b)
	}
}

func TestIdentify(t *testing.T) {
	loc := models.NewSequenceLocation("refseq:NC_000019.10", 44908821, 44908822)
	allele := models.NewAllele(loc, models.NewSequenceState("T"))

	tests := []struct {
		name string
		o    any
		want models.CURIE
	}{
		{
			name: "sequence location",
			o:    loc,
			want: "ga4gh:VSL.EhF8FehHeWNA9-R2CmWul4UU2D1eoqbZ",
		},
		{
			name: "allele",
			o:    allele,
			want: "ga4gh:VA.v4lNLy7jnyjsEN2OTQMbl-pOAlZpUv5s",
		},
		{
			name: "text",
			o:    models.NewText("APOE loss"),
			want: "ga4gh:VT.7hhlAaPeqj-sd67nSWXl7WC1yJ-g15tp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Identify(tt.o)
			if err != nil {
				t.Fatalf("Identify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Identify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIdentifyEnreffedAlleleMatchesInline(t *testing.T) {
	loc := models.NewSequenceLocation("refseq:NC_000019.10", 44908821, 44908822)
	inline := models.NewAllele(loc, models.NewSequenceState("T"))

	compact := inline
	compact.Location = models.LocationRef{CURIE: "ga4gh:VSL.EhF8FehHeWNA9-R2CmWul4UU2D1eoqbZ"}

	a, err := Identify(inline)
	if err != nil {
		t.Fatalf("Identify(inline) error = %v", err)
	}
	b, err := Identify(compact)
	if err != nil {
		t.Fatalf("Identify(compact) error = %v", err)
	}
	if a != b {
		t.Errorf("Identify(inline) = %s, Identify(compact) = %s, want equal", a, b)
	}
}

func TestIdentifyRejectsForeignLocationReference(t *testing.T) {
	allele := models.Allele{
		Type:     models.TypeAllele,
		Location: models.LocationRef{CURIE: "refseq:NC_000019.10"},
		State:    models.NewSequenceState("T"),
	}

	if _, err := Identify(allele); err == nil {
		t.Fatal("Identify() error = nil, want non-ga4gh location reference error")
	}
}

func TestIdentifyRejectsUnknownModel(t *testing.T) {
	if _, err := Identify(models.NewSimpleInterval(0, 1)); err == nil {
		t.Fatal("Identify() error = nil, want unidentifiable model error")
	}
}
