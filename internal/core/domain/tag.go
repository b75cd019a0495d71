package domain

import (
	"sort"
	"strings"
)

// TagSet is an unordered set of normalised tags.
// Ordered views are only available through Sorted; callers must never
// depend on map iteration order.
type TagSet map[string]struct{}

// NewTagSet creates a set holding the given tags. Empty strings are dropped.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Add inserts a tag. Empty tags are never stored.
func (s TagSet) Add(tag string) {
	if tag == "" {
		return
	}
	s[tag] = struct{}{}
}

// Has reports whether the tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Remove deletes a tag if present.
func (s TagSet) Remove(tag string) {
	delete(s, tag)
}

// Len returns the number of tags.
func (s TagSet) Len() int {
	return len(s)
}

// Union adds every tag of other into s.
func (s TagSet) Union(other TagSet) {
	for t := range other {
		s.Add(t)
	}
}

// Sorted returns the tags in ascending lexicographic (byte-wise) order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// String renders the set as a sorted, comma-separated list.
func (s TagSet) String() string {
	return strings.Join(s.Sorted(), ", ")
}
