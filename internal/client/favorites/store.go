// Package favorites provides the optimistic favorite toggle store.
// Unlike the visit store, a toggle flips local state first and rolls
// back if the server rejects the write.
package favorites

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"inmomarket/internal/errors"

	"github.com/google/uuid"
)

const defaultRequestTimeout = 30 * time.Second

// ErrNoSession is returned when the store has no bearer token.
var ErrNoSession = errors.New("no active session")

// Store tracks which publications the user has saved and toggles them
// optimistically. Safe for concurrent use.
type Store struct {
	baseURL    string
	token      string
	httpClient *http.Client

	mu    sync.Mutex
	saved map[uuid.UUID]bool
}

// NewStore creates a favorite store for the given server and token.
func NewStore(baseURL, token string, httpClient *http.Client) *Store {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}

	return &Store{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
		saved:      make(map[uuid.UUID]bool),
	}
}

// IsSaved reports the local toggle state for a publication.
func (s *Store) IsSaved(publicationID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saved[publicationID]
}

// Seed replaces the local state with the given saved set, typically
// from a favorites page fetch.
func (s *Store) Seed(publicationIDs []uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved = make(map[uuid.UUID]bool, len(publicationIDs))
	for _, id := range publicationIDs {
		s.saved[id] = true
	}
}

// Toggle flips the favorite state of a publication. The local state
// changes immediately, then the API call runs. On failure the flip is
// rolled back and the error returned, so the UI ends where it started.
func (s *Store) Toggle(ctx context.Context, publicationID uuid.UUID) error {
	if s.token == "" {
		return ErrNoSession
	}

	s.mu.Lock()
	wasSaved := s.saved[publicationID]
	s.saved[publicationID] = !wasSaved
	s.mu.Unlock()

	var err error
	if wasSaved {
		err = s.remove(ctx, publicationID)
	} else {
		err = s.add(ctx, publicationID)
	}

	if err != nil {
		s.mu.Lock()
		s.saved[publicationID] = wasSaved
		s.mu.Unlock()

		return err
	}

	return nil
}

func (s *Store) add(ctx context.Context, publicationID uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{
		"publicationId": publicationID.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/favorites", bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return s.send(req)
}

func (s *Store) remove(ctx context.Context, publicationID uuid.UUID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/favorites/%s", s.baseURL, publicationID), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return s.send(req)
}

func (s *Store) send(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("favorite toggle rejected with status %d", resp.StatusCode)
	}

	return nil
}
