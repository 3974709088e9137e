package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Toggle_SaveAndUnsave(t *testing.T) {
	var adds, removes atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			adds.Add(1)
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			removes.Add(1)
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	store := NewStore(server.URL, "token", nil)
	publicationID := uuid.New()

	require.NoError(t, store.Toggle(context.Background(), publicationID))
	assert.True(t, store.IsSaved(publicationID))
	assert.Equal(t, int64(1), adds.Load())

	require.NoError(t, store.Toggle(context.Background(), publicationID))
	assert.False(t, store.IsSaved(publicationID))
	assert.Equal(t, int64(1), removes.Load())
}

func TestStore_Toggle_RollsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := NewStore(server.URL, "token", nil)
	publicationID := uuid.New()

	err := store.Toggle(context.Background(), publicationID)
	require.Error(t, err)
	// The optimistic flip is undone, the UI ends where it started.
	assert.False(t, store.IsSaved(publicationID))
}

func TestStore_Toggle_RollsBackToSavedOnRemoveFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := NewStore(server.URL, "token", nil)
	publicationID := uuid.New()
	store.Seed([]uuid.UUID{publicationID})

	err := store.Toggle(context.Background(), publicationID)
	require.Error(t, err)
	assert.True(t, store.IsSaved(publicationID))
}

func TestStore_Toggle_NoSession(t *testing.T) {
	store := NewStore("http://localhost:0", "", nil)

	err := store.Toggle(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStore_Seed_ReplacesState(t *testing.T) {
	store := NewStore("http://localhost:0", "token", nil)
	first := uuid.New()
	second := uuid.New()

	store.Seed([]uuid.UUID{first})
	assert.True(t, store.IsSaved(first))
	assert.False(t, store.IsSaved(second))

	store.Seed([]uuid.UUID{second})
	assert.False(t, store.IsSaved(first))
	assert.True(t, store.IsSaved(second))
}
