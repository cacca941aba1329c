package session

import "sync"

// Store maps user ids to their sessions and serializes access per user.
// Two events for the same user are never processed concurrently: Do holds
// that user's lock for the duration of fn. Events for different users run
// in parallel.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	sess Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*entry)}
}

func (s *Store) get(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[userID]
	if !ok {
		e = &entry{}
		s.sessions[userID] = e
	}
	return e
}

// Do runs fn with exclusive access to the user's session, creating an Idle
// session on first use. Mutations made by fn are retained.
func (s *Store) Do(userID int64, fn func(sess *Session)) {
	e := s.get(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.sess)
}

// Snapshot returns a copy of the user's current session without creating one.
func (s *Store) Snapshot(userID int64) (Session, bool) {
	s.mu.Lock()
	e, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess, true
}
