package domain

// State is the traversal snapshot of a navigation engine.
// Its size is bounded by the hierarchy, however long the conversation runs.
type State struct {
	// Current is the node the user is looking at.
	Current NodeID `json:"current"`

	// Visited lists every node entered at least once, in order of first entry,
	// starting with the root. Each node appears once.
	Visited []NodeID `json:"visited"`

	// Moves counts successful selections.
	Moves int `json:"moves"`

	seen map[NodeID]struct{}
}

// NewState creates a state positioned at start.
func NewState(start NodeID) *State {
	s := &State{Current: start}
	s.markVisited(start)
	return s
}

// Enter moves the cursor to id and records the visit.
func (s *State) Enter(id NodeID) {
	s.Current = id
	s.Moves++
	s.markVisited(id)
}

func (s *State) markVisited(id NodeID) {
	if s.seen == nil {
		s.seen = make(map[NodeID]struct{}, len(s.Visited)+1)
		for _, v := range s.Visited {
			s.seen[v] = struct{}{}
		}
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.Visited = append(s.Visited, id)
}

// Snapshot returns a copy that shares nothing with s.
func (s *State) Snapshot() *State {
	if s == nil {
		return nil
	}
	next := &State{
		Current: s.Current,
		Visited: make([]NodeID, len(s.Visited)),
		Moves:   s.Moves,
	}
	copy(next.Visited, s.Visited)
	return next
}
