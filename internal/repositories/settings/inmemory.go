package settings

import (
	"context"
	"sync"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

// InMemoryRepository implements Repository with a map, for running without
// Redis
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entities.Settings
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{store: make(map[string]entities.Settings)}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves the settings saved for a profile
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.store[input.Profile]
	if !ok {
		return nil, errors.NotFoundf("settings for profile %s not found", input.Profile)
	}
	return &GetOutput{Settings: s}, nil
}

// Save replaces the settings of a profile
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if err := input.Settings.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Profile] = input.Settings
	return &SaveOutput{}, nil
}
