package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/siennesavenue/inventory/internal/domain/models"
)

// Repository persists the full state document as one snapshot.
type Repository interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
}

// Store serializes every read-modify-write cycle against the shared state
// document behind a single writer lock. Reads load a consistent snapshot and
// may proceed concurrently with each other.
type Store struct {
	mu   sync.Mutex
	repo Repository
}

// New wraps a repository with the single-writer discipline.
func New(repo Repository) *Store {
	return &Store{repo: repo}
}

// Update runs fn against a freshly loaded state and persists the result.
// If fn returns an error nothing is saved, so a rejected mutation leaves
// durable state untouched. The whole cycle holds the writer lock.
func (s *Store) Update(ctx context.Context, fn func(*models.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	if err := fn(state); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}

// View runs fn against a loaded snapshot without persisting. fn must not
// retain references to the state beyond the call.
func (s *Store) View(ctx context.Context, fn func(*models.State) error) error {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	return fn(state)
}
