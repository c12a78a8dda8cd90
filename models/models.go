// Package models defines the VR schema-derived data model: the variation
// classes, their JSON encoding, and validation against the bundled schema.
package models

import (
	"github.com/reece/vr/internal/schema"
)

// Model type discriminators, matching the schema definitions.
const (
	TypeAllele           = "Allele"
	TypeText             = "Text"
	TypeSequenceLocation = "SequenceLocation"
	TypeSimpleInterval   = "SimpleInterval"
	TypeSequenceState    = "SequenceState"
)

// CURIE is a compact URI in prefix:reference form.
type CURIE string

// Prefix returns the CURIE namespace prefix, or "" if malformed.
func (c CURIE) Prefix() string {
	for i := 0; i < len(c); i++ {
		if c[i] == ':' {
			return string(c[:i])
		}
	}
	return ""
}

// Reference returns the CURIE reference part, or "" if malformed.
func (c CURIE) Reference() string {
	for i := 0; i < len(c); i++ {
		if c[i] == ':' {
			return string(c[i+1:])
		}
	}
	return ""
}

// IsValid reports whether the CURIE matches the schema's syntax pattern.
func (c CURIE) IsValid() bool {
	return schema.CURIEPattern().MatchString(string(c))
}

// SimpleInterval is a contiguous interbase coordinate interval.
type SimpleInterval struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// NewSimpleInterval returns an interval covering [start, end).
func NewSimpleInterval(start, end int) SimpleInterval {
	return SimpleInterval{Type: TypeSimpleInterval, Start: start, End: end}
}

// SequenceLocation is an interval on a named sequence.
type SequenceLocation struct {
	ID         CURIE          `json:"_id,omitempty"`
	Type       string         `json:"type"`
	SequenceID CURIE          `json:"sequence_id"`
	Interval   SimpleInterval `json:"interval"`
}

// NewSequenceLocation returns a location on sequenceID covering [start, end).
func NewSequenceLocation(sequenceID CURIE, start, end int) SequenceLocation {
	return SequenceLocation{
		Type:       TypeSequenceLocation,
		SequenceID: sequenceID,
		Interval:   NewSimpleInterval(start, end),
	}
}

// SequenceState is the literal state of a sequence.
type SequenceState struct {
	Type     string `json:"type"`
	Sequence string `json:"sequence"`
}

// NewSequenceState returns a state holding the given residues.
func NewSequenceState(sequence string) SequenceState {
	return SequenceState{Type: TypeSequenceState, Sequence: sequence}
}

// Allele asserts the state of a sequence at a location.
type Allele struct {
	ID       CURIE         `json:"_id,omitempty"`
	Type     string        `json:"type"`
	Location LocationRef   `json:"location"`
	State    SequenceState `json:"state"`
}

// NewAllele returns an allele with an inline location.
func NewAllele(location SequenceLocation, state SequenceState) Allele {
	return Allele{
		Type:     TypeAllele,
		Location: LocationRef{Location: &location},
		State:    state,
	}
}

// Text is a free-text description of variation that cannot be modeled precisely.
type Text struct {
	ID         CURIE  `json:"_id,omitempty"`
	Type       string `json:"type"`
	Definition string `json:"definition"`
}

// NewText returns a text variation with the given definition.
func NewText(definition string) Text {
	return Text{Type: TypeText, Definition: definition}
}

// Variation is implemented by all variation classes.
type Variation interface {
	// VariationType returns the model's type discriminator.
	VariationType() string
}

// VariationType implements Variation.
func (Allele) VariationType() string { return TypeAllele }

// VariationType implements Variation.
func (Text) VariationType() string { return TypeText }

// Definition describes one model definition from the bundled schema.
type Definition struct {
	Name     string
	Required []string
}

// Definitions lists the schema's object model definitions sorted by name.
func Definitions() []Definition {
	compiled := schema.Definitions()
	defs := make([]Definition, 0, len(compiled))
	for _, d := range compiled {
		defs = append(defs, Definition{
			Name:     d.Name,
			Required: append([]string(nil), d.Required...),
		})
	}
	return defs
}
