package nav

import "sync"

// Store keeps navigation state per client, keyed by an opaque session id.
// State lives in memory only and resets when the process restarts.
type Store struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewStore creates an empty navigation store.
func NewStore() *Store {
	return &Store{states: make(map[string]*State)}
}

// Get returns a copy of the state for id. Unknown ids get the zero state.
func (s *Store) Get(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[id]; ok {
		return *st
	}
	return State{}
}

// Navigate applies a page transition to the state for id.
func (s *Store) Navigate(id string, p Page, campaignID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(id)
	st.Navigate(p, campaignID)
	return *st
}

// SetModal opens or closes the donation modal for id.
func (s *Store) SetModal(id string, open bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(id)
	if open {
		st.OpenDonationModal()
	} else {
		st.CloseDonationModal()
	}
	return *st
}

func (s *Store) state(id string) *State {
	st, ok := s.states[id]
	if !ok {
		st = &State{}
		s.states[id] = st
	}
	return st
}
