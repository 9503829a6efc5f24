package rdm

import (
	"slices"
	"strings"
)

// UIDSet is an unordered collection of unique UIDs.
// The zero value is an empty set ready to use. A UIDSet is not safe for
// concurrent mutation.
type UIDSet struct {
	uids map[UID]struct{}
}

// NewUIDSet returns a set holding the given UIDs.
func NewUIDSet(uids ...UID) *UIDSet {
	s := &UIDSet{}
	for _, uid := range uids {
		s.Add(uid)
	}
	return s
}

// Add inserts uid. Adding a UID already in the set is a no-op.
func (s *UIDSet) Add(uid UID) {
	if s.uids == nil {
		s.uids = make(map[UID]struct{})
	}
	s.uids[uid] = struct{}{}
}

// Remove deletes uid from the set if present.
func (s *UIDSet) Remove(uid UID) {
	delete(s.uids, uid)
}

// Contains reports whether uid is in the set.
func (s *UIDSet) Contains(uid UID) bool {
	if s == nil {
		return false
	}
	_, ok := s.uids[uid]
	return ok
}

// Len returns the number of UIDs in the set.
func (s *UIDSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.uids)
}

// UIDs returns the members in ascending order.
func (s *UIDSet) UIDs() []UID {
	if s == nil {
		return nil
	}
	out := make([]UID, 0, len(s.uids))
	for uid := range s.uids {
		out = append(out, uid)
	}
	slices.SortFunc(out, UID.Compare)
	return out
}

// Equal reports whether both sets hold the same UIDs.
func (s *UIDSet) Equal(other *UIDSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, uid := range s.UIDs() {
		if !other.Contains(uid) {
			return false
		}
	}
	return true
}

// Union returns a new set with the members of s and other.
func (s *UIDSet) Union(other *UIDSet) *UIDSet {
	out := NewUIDSet(s.UIDs()...)
	for _, uid := range other.UIDs() {
		out.Add(uid)
	}
	return out
}

// SetDifference returns the members of s that are not in other.
func (s *UIDSet) SetDifference(other *UIDSet) *UIDSet {
	out := &UIDSet{}
	for _, uid := range s.UIDs() {
		if !other.Contains(uid) {
			out.Add(uid)
		}
	}
	return out
}

// String returns the members in ascending order, comma separated.
func (s *UIDSet) String() string {
	uids := s.UIDs()
	parts := make([]string, len(uids))
	for i, uid := range uids {
		parts[i] = uid.String()
	}
	return strings.Join(parts, ",")
}
