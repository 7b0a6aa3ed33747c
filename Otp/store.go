package Otp

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"sync"
	"time"
)

const Lifetime = 5 * time.Minute

var (
	ErrNotFound = errors.New("otp not found")
	ErrExpired  = errors.New("otp expired")
	ErrMismatch = errors.New("otp invalid")
)

type entry struct {
	code     string
	issuedAt time.Time
}

// Store holds outstanding one-time passwords and reset grants, keyed by
// email. Entries live only as long as the process; a restart drops them all.
// Now is swappable so tests can drive expiry deterministically.
type Store struct {
	mu     sync.Mutex
	otps   map[string]entry
	grants map[string]string // reset token -> email
	Now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		otps:   make(map[string]entry),
		grants: make(map[string]string),
		Now:    time.Now,
	}
}

// Issue creates a fresh 6-digit code for the email, replacing any code still
// outstanding. Latest OTP wins.
func (s *Store) Issue(email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	code := big.NewInt(0).Add(n, big.NewInt(100000)).String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[email] = entry{code: code, issuedAt: s.Now()}
	return code, nil
}

// Verify checks the submitted code. An expired entry is discarded and
// reported expired no matter what was submitted. A correct code consumes the
// entry and hands back a one-time reset token. A wrong code leaves the entry
// in place, so the caller may retry until expiry.
func (s *Store) Verify(email, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.otps[email]
	if !ok {
		return "", ErrNotFound
	}

	if s.Now().Sub(stored.issuedAt) > Lifetime {
		delete(s.otps, email)
		return "", ErrExpired
	}

	if stored.code != code {
		return "", ErrMismatch
	}

	delete(s.otps, email)
	return s.grantReset(email)
}

func (s *Store) grantReset(email string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	s.grants[token] = email
	return token, nil
}

// ConsumeReset exchanges a reset token for the email it was granted to.
// Each token works exactly once.
func (s *Store) ConsumeReset(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.grants[token]
	if ok {
		delete(s.grants, token)
	}
	return email, ok
}

// SweepExpired drops entries past their lifetime. Expiry is already enforced
// on Verify; the sweep just keeps abandoned requests from piling up.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for email, stored := range s.otps {
		if s.Now().Sub(stored.issuedAt) > Lifetime {
			delete(s.otps, email)
			removed++
		}
	}
	return removed
}
