package session

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(ttl)
	s.now = clock.Now
	return s, clock
}

func TestStore_CreateAndLookup(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	token, err := s.Create(7, "alice", models.RoleEditor)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(token), 43, "256-bit token in base64url")

	sess, ok := s.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, models.RoleEditor, sess.Role)
}

func TestStore_LookupUnknownOrEmpty(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	_, ok := s.Lookup("nope")
	assert.False(t, ok)

	_, ok = s.Lookup("")
	assert.False(t, ok)
}

func TestStore_TokensAreUnique(t *testing.T) {
	s, _ := newTestStore(0)

	seen := make(map[string]struct{})
	for i := range 200 {
		token, err := s.Create(int64(i), "u", models.RoleViewer)
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
	assert.Equal(t, 200, s.Len())
}

func TestStore_Destroy(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	token, err := s.Create(1, "bob", models.RoleViewer)
	require.NoError(t, err)

	s.Destroy(token)
	_, ok := s.Lookup(token)
	assert.False(t, ok)

	// destroying twice is harmless
	s.Destroy(token)
	assert.Zero(t, s.Len())
}

func TestStore_Expiry(t *testing.T) {
	s, clock := newTestStore(time.Hour)

	token, err := s.Create(1, "bob", models.RoleViewer)
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	_, ok := s.Lookup(token)
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = s.Lookup(token)
	assert.False(t, ok, "expired token must look unknown")
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	s, clock := newTestStore(0)

	token, err := s.Create(1, "bob", models.RoleViewer)
	require.NoError(t, err)

	clock.Advance(10 * 365 * 24 * time.Hour)
	_, ok := s.Lookup(token)
	assert.True(t, ok)
	assert.Zero(t, s.Sweep())
}

func TestStore_Sweep(t *testing.T) {
	s, clock := newTestStore(time.Hour)

	old, err := s.Create(1, "old", models.RoleViewer)
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	fresh, err := s.Create(2, "fresh", models.RoleViewer)
	require.NoError(t, err)

	clock.Advance(45 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	_, ok := s.Lookup(old)
	assert.False(t, ok)
	_, ok = s.Lookup(fresh)
	assert.True(t, ok)
}

func TestStore_RoleIsSnapshot(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	token, err := s.Create(1, "boss", models.RoleAdmin)
	require.NoError(t, err)

	// the store has no way to learn about a later demotion
	sess, ok := s.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, sess.Role)
}

func TestStore_EntropyFailure(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	s.entropy = bytes.NewReader(nil)

	token, err := s.Create(1, "bob", models.RoleViewer)
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, ErrTokenGeneration))
}

func TestStore_CollisionRedrawn(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	same := bytes.Repeat([]byte{1}, tokenBytes)
	other := bytes.Repeat([]byte{2}, tokenBytes)
	s.entropy = bytes.NewReader(append(append(append([]byte{}, same...), same...), other...))

	first, err := s.Create(1, "a", models.RoleViewer)
	require.NoError(t, err)
	second, err := s.Create(2, "b", models.RoleViewer)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, s.Len())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			token, err := s.Create(id, "user", models.RoleViewer)
			if err != nil {
				t.Error(err)
				return
			}
			if _, ok := s.Lookup(token); !ok {
				t.Error("lookup failed")
			}
			s.Sweep()
			s.Destroy(token)
		}(int64(i))
	}
	wg.Wait()

	assert.Zero(t, s.Len())
}
