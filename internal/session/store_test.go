package session

import (
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Lifecycle(t *testing.T) {
	st := NewStore(Deps{})

	a := st.Create(nil)
	b := st.Create(&types.Resume{Summary: "seeded"})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, st.Len())

	got, ok := st.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, "seeded", got.Snapshot().Summary)

	assert.True(t, st.Delete(a.ID))
	assert.False(t, st.Delete(a.ID))
	_, ok = st.Get(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
}

func TestStore_Sweep(t *testing.T) {
	st := NewStore(Deps{})
	stale := st.Create(nil)
	fresh := st.Create(nil)

	stale.mu.Lock()
	stale.lastUsed = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	assert.Equal(t, 1, st.Sweep(time.Hour))

	_, ok := st.Get(stale.ID)
	assert.False(t, ok)
	_, ok = st.Get(fresh.ID)
	assert.True(t, ok)
}
