package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DoCreatesIdleSession(t *testing.T) {
	s := NewStore()

	s.Do(1, func(sess *Session) {
		assert.Equal(t, StateIdle, sess.State)
		assert.Equal(t, Draft{}, sess.Draft)
	})
}

func TestStore_MutationsAreRetained(t *testing.T) {
	s := NewStore()

	s.Do(1, func(sess *Session) {
		sess.State = StateAwaitingTitle
		sess.Draft.Title = "Pancakes"
	})

	got, ok := s.Snapshot(1)
	require.True(t, ok)
	assert.Equal(t, StateAwaitingTitle, got.State)
	assert.Equal(t, "Pancakes", got.Draft.Title)
}

func TestStore_ResetClearsStateAndDraft(t *testing.T) {
	s := NewStore()

	s.Do(7, func(sess *Session) {
		sess.State = StateAwaitingIngredients
		sess.Draft = Draft{Title: "Soup", Category: "lunch"}
	})
	s.Do(7, func(sess *Session) { sess.Reset() })

	got, ok := s.Snapshot(7)
	require.True(t, ok)
	assert.Equal(t, StateIdle, got.State)
	assert.Equal(t, Draft{}, got.Draft)
}

func TestStore_SnapshotMissingUser(t *testing.T) {
	s := NewStore()
	_, ok := s.Snapshot(99)
	assert.False(t, ok)
}

func TestStore_SerializesSameUser(t *testing.T) {
	s := NewStore()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(1, func(sess *Session) {
				sess.Draft.Rating++
			})
		}()
	}
	wg.Wait()

	got, ok := s.Snapshot(1)
	require.True(t, ok)
	assert.Equal(t, n, got.Draft.Rating)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "awaiting_consent", StateAwaitingConsent.String())
	assert.Equal(t, "unknown", State(999).String())
}
