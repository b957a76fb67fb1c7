package domain

import "strings"

// CompletionSet is the insertion-ordered set of completed workshop ids.
type CompletionSet struct {
	order []WorkshopID
	index map[WorkshopID]struct{}
}

func NewCompletionSet(ids ...WorkshopID) CompletionSet {
	s := CompletionSet{index: make(map[WorkshopID]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add reports whether id was newly added. Blank ids are ignored.
func (s *CompletionSet) Add(id WorkshopID) bool {
	id = WorkshopID(strings.TrimSpace(string(id)))
	if id == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[WorkshopID]struct{})
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s CompletionSet) Has(id WorkshopID) bool {
	_, ok := s.index[id]
	return ok
}

func (s CompletionSet) Len() int {
	return len(s.order)
}

func (s CompletionSet) IDs() []WorkshopID {
	out := make([]WorkshopID, len(s.order))
	copy(out, s.order)
	return out
}

func (s CompletionSet) Clone() CompletionSet {
	return NewCompletionSet(s.order...)
}
