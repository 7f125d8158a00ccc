package snapshots

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/CWSpear/stumpy/internal/errors"
	"github.com/CWSpear/stumpy/internal/pkg/clock"
)

// InMemoryRepository implements Repository with a map, for running without
// Redis. Expired snapshots are dropped when read.
type InMemoryRepository struct {
	mu    sync.Mutex
	clock clock.Clock
	store map[string]*Snapshot
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*Snapshot),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a snapshot, replacing any with the same ID
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	stored := clone(stamp(input, r.clock.Now()))

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[stored.ID] = stored
	return &SaveOutput{Snapshot: clone(stored)}, nil
}

// Get retrieves a snapshot by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap, ok := r.store[input.ID]
	if !ok {
		return nil, errors.NotFoundf("snapshot %s not found", input.ID)
	}
	if expired(snap, r.clock.Now()) {
		delete(r.store, input.ID)
		return nil, errors.NotFoundf("snapshot %s has expired", input.ID)
	}
	return &GetOutput{Snapshot: clone(snap)}, nil
}

// Delete removes a snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.store[input.ID]
	delete(r.store, input.ID)
	return &DeleteOutput{Deleted: ok}, nil
}

// clone keeps callers from mutating stored state through shared slices
func clone(s *Snapshot) *Snapshot {
	c := *s
	c.Items = maps.Clone(s.Items)
	c.Dungeons = slices.Clone(s.Dungeons)
	c.Opened = slices.Clone(s.Opened)
	return &c
}
