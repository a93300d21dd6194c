// Package memory provides an in-process snapshot repository. It backs tests
// and credential-less local runs; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/siennesavenue/inventory/internal/domain/models"
)

// Repository keeps the state document in memory. Load and Save exchange deep
// copies so callers never observe a mutation that was not saved.
type Repository struct {
	mu    sync.Mutex
	state *models.State
}

// NewRepository returns an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{state: models.NewState()}
}

// Load returns a deep copy of the current snapshot.
func (r *Repository) Load(_ context.Context) (*models.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone(), nil
}

// Save replaces the snapshot with a deep copy of the given state.
func (r *Repository) Save(_ context.Context, state *models.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state.Clone()
	return nil
}
