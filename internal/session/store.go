// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the authenticated identity of every logged-in
// client in process memory, keyed by an unguessable token.
//
// The role recorded in a session is a snapshot taken at login. It is not
// refreshed when an admin later changes the user's role, so a demoted
// user keeps the old permissions until they log in again.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

// tokenBytes is the amount of randomness per token (256 bits).
const tokenBytes = 32

// maxTokenAttempts bounds the redraws on a token collision.
const maxTokenAttempts = 3

// ErrTokenGeneration is returned by Create when no unique token could be drawn.
var ErrTokenGeneration = errors.New("session token generation failed")

// Store is a concurrency-safe in-memory session store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	ttl     time.Duration
	now     func() time.Time
	entropy io.Reader
}

// NewStore returns an empty Store whose sessions expire ttl after creation.
// A ttl of zero or less disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
		entropy:  rand.Reader,
	}
}

// Create registers a session for the user and returns its token.
func (s *Store) Create(userID int64, username string, role models.Role) (string, error) {
	now := s.now()
	sess := models.Session{
		UserID:    userID,
		Username:  username,
		Role:      role,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for range maxTokenAttempts {
		token, err := s.newToken()
		if err != nil {
			return "", err
		}
		if _, taken := s.sessions[token]; taken {
			continue
		}

		s.sessions[token] = sess
		return token, nil
	}

	return "", fmt.Errorf("%w: too many collisions", ErrTokenGeneration)
}

// Lookup returns the session bound to token. An unknown, empty or expired
// token yields false; callers treat that as "not logged in".
func (s *Store) Lookup(token string) (models.Session, bool) {
	if token == "" {
		return models.Session{}, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || sess.IsExpired(s.now()) {
		return models.Session{}, false
	}

	return sess, true
}

// Destroy removes the session bound to token. Unknown tokens are ignored.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep removes every expired session and reports how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, token)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *Store) newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(s.entropy, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
