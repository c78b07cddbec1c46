package mem

import (
	"sync"
	"time"
)

type VerificationCodeStore interface {
	Set(key string, value string, ttl time.Duration)

	// Consume returns the stored value for key if not expired,
	// and removes it (single-use). Returns "" if missing/expired.
	Consume(key string) string

	Peek(key string) (string, bool)
}

type entry struct {
	value     string
	expiresAt time.Time
}

type VerificationCodes struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewVerificationCodes() *VerificationCodes {
	return &VerificationCodes{
		data: make(map[string]entry),
	}
}

func (s *VerificationCodes) Set(key string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *VerificationCodes) Consume(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return ""
	}
	delete(s.data, key)
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.value
}

func (s *VerificationCodes) Peek(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}
