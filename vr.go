// Package vr is the public interface to the GA4GH Variation
// Representation reference implementation.
//
// The package is a facade: it binds a small, stable set of names drawn
// from the model, normalization, and dereferencing subpackages, and
// reports the installed module version.
package vr

import (
	"context"
	"io/fs"

	"github.com/reece/vr/internal/enderef"
	"github.com/reece/vr/internal/schema"
	"github.com/reece/vr/models"
	"github.com/reece/vr/normalize"
	"github.com/reece/vr/sequence"
)

// Re-exported model types, so most consumers only import this package.
type (
	// Allele asserts the state of a sequence at a location.
	Allele = models.Allele
	// Text is a free-text description of variation.
	Text = models.Text
	// SequenceLocation is an interval on a named sequence.
	SequenceLocation = models.SequenceLocation
	// SimpleInterval is a contiguous interbase coordinate interval.
	SimpleInterval = models.SimpleInterval
	// SequenceState is the literal state of a sequence.
	SequenceState = models.SequenceState
	// CURIE is a compact URI in prefix:reference form.
	CURIE = models.CURIE
	// Variation is implemented by all variation classes.
	Variation = models.Variation
	// ObjectStore holds identifiable objects keyed by their identifiers.
	ObjectStore = models.ObjectStore
)

// Models lists the schema's model definitions.
func Models() []models.Definition {
	return models.Definitions()
}

// Normalize rewrites a variation into fully-justified form against the
// reference sequences in src. See the normalize package for modes.
func Normalize(ctx context.Context, v Variation, src sequence.Source, opts normalize.Options) (Variation, error) {
	return normalize.Variation(ctx, v, src, opts)
}

// SchemaPath returns the location of the VR schema within SchemaFS.
func SchemaPath() string {
	return schema.Path()
}

// SchemaFS returns the filesystem holding the bundled VR schema.
func SchemaFS() fs.FS {
	return schema.FS()
}

// Deref expands identifier references in a variation from the store.
func Deref(v Variation, store ObjectStore) (Variation, error) {
	return enderef.Deref(v, store)
}

// Enref compacts a variation's identifiable sub-objects into computed
// identifier references, recording them in the store.
func Enref(v Variation, store ObjectStore) (Variation, error) {
	return enderef.Enref(v, store)
}

// Exports enumerates the names this package binds from its
// subpackages, sorted. The set is fixed; exports_test verifies that
// every listed name is bound and nothing is listed twice.
func Exports() []string {
	return []string{"Deref", "Enref", "Models", "Normalize", "SchemaPath"}
}

// bindings maps each exported name to the symbol behind it.
var bindings = map[string]any{
	"Deref":      Deref,
	"Enref":      Enref,
	"Models":     Models,
	"Normalize":  Normalize,
	"SchemaPath": SchemaPath,
}
