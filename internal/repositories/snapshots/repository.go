// Package snapshots stores complete tracker states so a run can be resumed
package snapshots

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/CWSpear/stumpy/internal/repositories/snapshots Repository

import (
	"context"
	"time"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

// Snapshot is everything needed to rebuild a tracker
type Snapshot struct {
	ID        string                   `json:"id"`
	Settings  entities.Settings        `json:"settings"`
	Items     map[entities.ItemKey]int `json:"items"`
	Dungeons  []entities.DungeonState  `json:"dungeons"`
	Opened    []entities.LocationKey   `json:"opened"`
	CreatedAt time.Time                `json:"created_at"`
	// ExpiresAt is zero for snapshots kept forever
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Repository defines the storage interface for snapshots
type Repository interface {
	// Save stores a snapshot, replacing any with the same ID
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a snapshot by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a snapshot
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving a snapshot
type SaveInput struct {
	Snapshot *Snapshot
	// TTL of zero keeps the snapshot until deleted
	TTL time.Duration
}

// SaveOutput defines the response for saving a snapshot
type SaveOutput struct {
	Snapshot *Snapshot
}

// GetInput defines the request for retrieving a snapshot
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// DeleteInput defines the request for deleting a snapshot
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a snapshot
type DeleteOutput struct {
	Deleted bool
}

const (
	errSnapshotNil = "snapshot cannot be nil"
	errIDEmpty     = "snapshot ID cannot be empty"
	errNegativeTTL = "ttl cannot be negative"
)

func validateSave(input *SaveInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	if input.TTL < 0 {
		return errors.InvalidArgument(errNegativeTTL)
	}
	return nil
}

// stamp copies the snapshot and sets its expiry from the TTL
func stamp(input *SaveInput, now time.Time) *Snapshot {
	stored := *input.Snapshot
	stored.ExpiresAt = time.Time{}
	if input.TTL > 0 {
		stored.ExpiresAt = now.Add(input.TTL)
	}
	return &stored
}

func expired(s *Snapshot, now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
