package models

// ObjectStore holds identifiable objects keyed by their GA4GH
// identifiers. Enref records the objects it compacts here; Deref
// resolves references against it.
type ObjectStore map[CURIE]any

// NewObjectStore returns an empty store.
func NewObjectStore() ObjectStore {
	return make(ObjectStore)
}

// Add records an object under its identifier.
func (s ObjectStore) Add(id CURIE, o any) {
	s[id] = o
}

// Get returns the object recorded under an identifier.
func (s ObjectStore) Get(id CURIE) (any, bool) {
	o, ok := s[id]
	return o, ok
}

// Location returns the sequence location recorded under an identifier.
func (s ObjectStore) Location(id CURIE) (SequenceLocation, bool) {
	o, ok := s[id]
	if !ok {
		return SequenceLocation{}, false
	}
	loc, ok := o.(SequenceLocation)
	return loc, ok
}
