package models

import (
	"encoding/json"
	"fmt"

	vrerrors "github.com/reece/vr/errors"
)

// LocationRef holds either an inline SequenceLocation or a CURIE that
// identifies one. Enref compacts the inline form to the CURIE form;
// Deref restores it.
type LocationRef struct {
	CURIE    CURIE
	Location *SequenceLocation
}

// IsReference reports whether the ref holds a CURIE rather than an inline location.
func (r LocationRef) IsReference() bool {
	return r.CURIE != ""
}

// IsZero reports whether the ref holds neither form.
func (r LocationRef) IsZero() bool {
	return r.CURIE == "" && r.Location == nil
}

// Resolved returns the inline location, if present.
func (r LocationRef) Resolved() (*SequenceLocation, bool) {
	if r.Location == nil {
		return nil, false
	}
	return r.Location, true
}

// MarshalJSON encodes the CURIE form as a JSON string and the inline
// form as a JSON object. The CURIE form wins if both are set.
func (r LocationRef) MarshalJSON() ([]byte, error) {
	if r.CURIE != "" {
		return json.Marshal(r.CURIE)
	}
	if r.Location != nil {
		return json.Marshal(r.Location)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes either a CURIE string or an inline location object.
func (r *LocationRef) UnmarshalJSON(data []byte) error {
	*r = LocationRef{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var c CURIE
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("decode location reference: %w", err)
		}
		r.CURIE = c
		return nil
	}
	var loc SequenceLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		return fmt.Errorf("decode location: %w", err)
	}
	r.Location = &loc
	return nil
}

type typeProbe struct {
	Type string `json:"type"`
}

// ParseVariation decodes a JSON document into the variation class named
// by its type discriminator.
func ParseVariation(data []byte) (Variation, error) {
	var probe typeProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse variation: %w", err)
	}

	switch probe.Type {
	case TypeAllele:
		var a Allele
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("parse allele: %w", err)
		}
		return a, nil
	case TypeText:
		var t Text
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parse text: %w", err)
		}
		return t, nil
	default:
		return nil, vrerrors.ValidationList{
			vrerrors.NewValidationf(vrerrors.ErrUnknownType, "/type", "unrecognized variation type %q", probe.Type),
		}
	}
}
