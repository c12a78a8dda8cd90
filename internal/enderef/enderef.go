// Package enderef compacts identifiable sub-objects of a variation into
// computed identifier references (enref) and expands them back (deref),
// using an object store as the side table.
package enderef

import (
	"fmt"

	vrerrors "github.com/reece/vr/errors"
	"github.com/reece/vr/internal/digest"
	"github.com/reece/vr/models"
)

// Enref returns a copy of the variation with nested identifiable
// objects replaced by their computed identifiers. Replaced objects are
// recorded in the store under those identifiers. Input with references
// already in place passes through unchanged.
func Enref(v models.Variation, store models.ObjectStore) (models.Variation, error) {
	if store == nil {
		return nil, fmt.Errorf("enref: nil object store")
	}

	switch m := v.(type) {
	case models.Allele:
		loc, ok := m.Location.Resolved()
		if !ok {
			return m, nil
		}
		id, err := digest.Identify(*loc)
		if err != nil {
			return nil, fmt.Errorf("enref allele: %w", err)
		}
		stored := *loc
		stored.ID = id
		store.Add(id, stored)
		m.Location = models.LocationRef{CURIE: id}
		return m, nil
	case models.Text:
		// Nothing nested to compact.
		return m, nil
	default:
		return nil, fmt.Errorf("enref: unsupported variation %T", v)
	}
}

// Deref returns a copy of the variation with identifier references
// expanded from the store. A reference absent from the store is an
// error; inline input passes through unchanged.
func Deref(v models.Variation, store models.ObjectStore) (models.Variation, error) {
	switch m := v.(type) {
	case models.Allele:
		if !m.Location.IsReference() {
			return m, nil
		}
		id := m.Location.CURIE
		loc, ok := store.Location(id)
		if !ok {
			return nil, vrerrors.ValidationList{
				vrerrors.NewValidationf(vrerrors.ErrReferenceNotFound, "/location",
					"location %s is not in the object store", id),
			}
		}
		m.Location = models.LocationRef{Location: &loc}
		return m, nil
	case models.Text:
		return m, nil
	default:
		return nil, fmt.Errorf("deref: unsupported variation %T", v)
	}
}
