// pkg/memcache/reset_tokens.go
package mem

import (
	"sync"
	"time"
)

// ResetTokenStore keeps password reset codes keyed by account email.
type ResetTokenStore interface {
	Set(email string, code string, ttl time.Duration)

	// Consume reports whether code is the live code for email and, if so,
	// removes it (single use).
	Consume(email string, code string) bool

	Peek(email string) (string, bool)
}

// RevocationStore remembers revoked token ids until they would have
// expired anyway.
type RevocationStore interface {
	Revoke(tokenID string, until time.Time)
	IsRevoked(tokenID string) bool
}

type entry struct {
	value     string
	expiresAt time.Time
}

// TTLStore is an in-process map with per key expiry. Expired keys are
// dropped lazily on access and by Sweep.
type TTLStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewTTLStore() *TTLStore {
	return &TTLStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *TTLStore) Set(email string, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[email] = entry{
		value:     code,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore) Consume(email string, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[email]
	if !ok {
		return false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, email)
		return false
	}
	if e.value != code {
		return false
	}
	delete(s.data, email)
	return true
}

func (s *TTLStore) Peek(email string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[email]
	if !ok || s.now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (s *TTLStore) Revoke(tokenID string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = entry{expiresAt: until}
}

func (s *TTLStore) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	e, ok := s.data[tokenID]
	s.mu.RUnlock()
	return ok && !s.now().After(e.expiresAt)
}

// Sweep removes expired keys and returns how many were dropped.
func (s *TTLStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			n++
		}
	}
	return n
}

func (s *TTLStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
