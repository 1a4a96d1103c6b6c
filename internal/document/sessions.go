package document

import "sync"

// DefaultSessionLimit bounds how many assemblers Sessions keeps before it
// drops idle ones.
const DefaultSessionLimit = 1024

// Sessions hands out one Assembler per session key, so single-flight is
// enforced per user and distinct users render concurrently.
type Sessions struct {
	newAssembler func() *Assembler
	limit        int

	mu   sync.Mutex
	byID map[string]*session
}

type session struct {
	a    *Assembler
	refs int
}

// NewSessions returns a registry that creates assemblers with newAssembler.
// A limit below 1 means DefaultSessionLimit.
func NewSessions(newAssembler func() *Assembler, limit int) *Sessions {
	if limit < 1 {
		limit = DefaultSessionLimit
	}
	return &Sessions{newAssembler: newAssembler, limit: limit, byID: make(map[string]*session)}
}

// Acquire returns the assembler of key and a release func the caller must
// call once it is done with it. An assembler is never evicted while held.
// An empty key gets a fresh assembler that is not retained.
//
// Eviction only happens at the limit and only drops idle, unheld
// assemblers, so the registry may grow past the limit while every entry is
// in use.
func (s *Sessions) Acquire(key string) (*Assembler, func()) {
	if key == "" {
		return s.newAssembler(), func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[key]
	if !ok {
		if len(s.byID) >= s.limit {
			s.evictIdle()
		}
		sess = &session{a: s.newAssembler()}
		s.byID[key] = sess
	}
	sess.refs++

	var once sync.Once
	return sess.a, func() {
		once.Do(func() {
			s.mu.Lock()
			sess.refs--
			s.mu.Unlock()
		})
	}
}

// Len returns the number of retained assemblers.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *Sessions) evictIdle() {
	for key, sess := range s.byID {
		if sess.refs == 0 && sess.a.State() == StateIdle {
			delete(s.byID, key)
		}
	}
}
