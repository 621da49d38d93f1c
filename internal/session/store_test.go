package session

import (
	"testing"
	"time"

	"github.com/jonathan/franchise-advisor/internal/dialogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(0)

	sess := store.Create()
	require.NotNil(t, sess)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", sess.ID.String())

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetUnknownID(t *testing.T) {
	store := NewStore(0)
	other := store.Create()
	store.Delete(other.ID)

	_, ok := store.Get(other.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_IdleSweepOnCreate(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	stale := store.Create()
	stale.lastActive = time.Now().Add(-time.Minute)

	fresh := store.Create()

	_, ok := store.Get(stale.ID)
	assert.False(t, ok, "stale session is swept")
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}

func TestSession_DoTouchesState(t *testing.T) {
	store := NewStore(0)
	sess := store.Create()

	sess.Do(func(st *dialogue.State) {
		st.Profile.Name = "Dana"
	})

	sess.Do(func(st *dialogue.State) {
		assert.Equal(t, "Dana", st.Profile.Name)
		assert.Equal(t, dialogue.StageRapport, st.Stage)
	})
}
