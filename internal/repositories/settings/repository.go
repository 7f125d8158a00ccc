// Package settings stores the game-mode options of a tracker profile
package settings

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/CWSpear/stumpy/internal/repositories/settings Repository

import (
	"context"

	"github.com/CWSpear/stumpy/internal/entities"
)

// DefaultProfile is used when the caller does not name one
const DefaultProfile = "default"

// Repository defines the storage interface for tracker settings
type Repository interface {
	// Get retrieves the settings saved for a profile
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Save replaces the settings of a profile
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
}

// GetInput defines the request for retrieving settings
type GetInput struct {
	Profile string
}

// GetOutput defines the response for retrieving settings
type GetOutput struct {
	Settings entities.Settings
}

// SaveInput defines the request for saving settings
type SaveInput struct {
	Profile  string
	Settings entities.Settings
}

// SaveOutput defines the response for saving settings
type SaveOutput struct{}
