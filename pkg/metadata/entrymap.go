package metadata

import (
	"iter"
	"slices"
)

// EntrySet is the insertion-ordered EntryMap implementation shared by the
// concrete environments. It is append-only; environments build a fresh set
// instead of mutating one that resolvers may be iterating.
type EntrySet struct {
	groups []string
	names  map[string][]string
	refs   map[string]map[string]EntryRef
}

// NewEntrySet creates an empty entry set.
func NewEntrySet() *EntrySet {
	return &EntrySet{
		names: make(map[string][]string),
		refs:  make(map[string]map[string]EntryRef),
	}
}

// Add registers ref under (group, ref.Name()), preserving insertion order.
// Re-adding an existing name replaces the reference in place.
func (s *EntrySet) Add(group string, ref EntryRef) {
	byName, ok := s.refs[group]
	if !ok {
		byName = make(map[string]EntryRef)
		s.refs[group] = byName
		s.groups = append(s.groups, group)
	}

	name := ref.Name()
	if _, exists := byName[name]; !exists {
		s.names[group] = append(s.names[group], name)
	}
	byName[name] = ref
}

// Groups yields group keys in insertion order.
func (s *EntrySet) Groups() iter.Seq[string] {
	return slices.Values(s.groups)
}

// Names yields entry names within group in insertion order.
func (s *EntrySet) Names(group string) iter.Seq[string] {
	return slices.Values(s.names[group])
}

// Get returns the entry registered under (group, name).
func (s *EntrySet) Get(group, name string) (EntryRef, bool) {
	ref, ok := s.refs[group][name]
	return ref, ok
}

// Len returns the total number of registered entries.
func (s *EntrySet) Len() int {
	n := 0
	for _, names := range s.names {
		n += len(names)
	}
	return n
}
