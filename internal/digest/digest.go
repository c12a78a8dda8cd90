// Package digest computes GA4GH content-addressed identifiers: the
// truncated SHA-512 digest over a canonical serialization, carried as a
// ga4gh-namespaced CURIE.
package digest

import (
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reece/vr/models"
)

// Namespace is the CURIE prefix for computed identifiers.
const Namespace = "ga4gh"

// Type prefixes for identifiable models.
const (
	PrefixAllele           = "VA"
	PrefixSequenceLocation = "VSL"
	PrefixText             = "VT"
	PrefixSequence         = "SQ"
)

// SHA512t24u returns the GA4GH digest: SHA-512 truncated to 24 bytes,
// base64url-encoded without padding.
func SHA512t24u(data []byte) string {
	sum := sha512.Sum512(data)
	return base64.RawURLEncoding.EncodeToString(sum[:24])
}

// Serialize returns the canonical GA4GH serialization of an object:
// JSON with lexically ordered keys, identifiers excluded, and nested
// identifiable objects replaced by their digests.
func Serialize(o any) ([]byte, error) {
	m, err := canonical(o)
	if err != nil {
		return nil, err
	}
	// encoding/json writes map keys in sorted order.
	return json.Marshal(m)
}

// Digest returns the SHA512t24u digest of the canonical serialization.
func Digest(o any) (string, error) {
	data, err := Serialize(o)
	if err != nil {
		return "", err
	}
	return SHA512t24u(data), nil
}

// Identify returns the computed identifier for an identifiable object,
// such as ga4gh:VA.<digest> for an allele.
func Identify(o any) (models.CURIE, error) {
	prefix, err := prefixFor(o)
	if err != nil {
		return "", err
	}
	d, err := Digest(o)
	if err != nil {
		return "", err
	}
	return models.CURIE(fmt.Sprintf("%s:%s.%s", Namespace, prefix, d)), nil
}

func prefixFor(o any) (string, error) {
	switch o.(type) {
	case models.Allele:
		return PrefixAllele, nil
	case models.SequenceLocation:
		return PrefixSequenceLocation, nil
	case models.Text:
		return PrefixText, nil
	default:
		return "", fmt.Errorf("identify: %T is not an identifiable model", o)
	}
}

func canonical(o any) (map[string]any, error) {
	switch m := o.(type) {
	case models.Allele:
		loc, err := locationDigest(m.Location)
		if err != nil {
			return nil, err
		}
		state, err := canonical(m.State)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":     models.TypeAllele,
			"location": loc,
			"state":    state,
		}, nil
	case models.SequenceLocation:
		interval, err := canonical(m.Interval)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":        models.TypeSequenceLocation,
			"sequence_id": string(m.SequenceID),
			"interval":    interval,
		}, nil
	case models.SimpleInterval:
		return map[string]any{
			"type":  models.TypeSimpleInterval,
			"start": m.Start,
			"end":   m.End,
		}, nil
	case models.SequenceState:
		return map[string]any{
			"type":     models.TypeSequenceState,
			"sequence": m.Sequence,
		}, nil
	case models.Text:
		return map[string]any{
			"type":       models.TypeText,
			"definition": m.Definition,
		}, nil
	default:
		return nil, fmt.Errorf("serialize: unsupported model %T", o)
	}
}

// locationDigest reduces an allele's location to its digest, computing
// it for the inline form and extracting it from a ga4gh CURIE.
func locationDigest(ref models.LocationRef) (string, error) {
	if loc, ok := ref.Resolved(); ok {
		return Digest(*loc)
	}
	c := ref.CURIE
	if c == "" {
		return "", fmt.Errorf("serialize allele: location is unset")
	}
	if c.Prefix() != Namespace {
		return "", fmt.Errorf("serialize allele: location reference %s is not a computed %s identifier", c, Namespace)
	}
	reference := c.Reference()
	i := strings.IndexByte(reference, '.')
	if i < 0 || i == len(reference)-1 {
		return "", fmt.Errorf("serialize allele: location reference %s has no digest part", c)
	}
	return reference[i+1:], nil
}
