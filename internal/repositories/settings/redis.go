package settings

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/CWSpear/stumpy/internal/errors"
	redisclient "github.com/CWSpear/stumpy/internal/redis"
)

const (
	// Key pattern: settings:{profile}
	settingsKeyPrefix = "settings:"

	errProfileEmpty = "profile cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed settings repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	data, err := r.client.Get(ctx, settingsKeyPrefix+input.Profile).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("settings for profile %s not found", input.Profile)
		}
		return nil, errors.Wrap(err, "failed to get settings from Redis")
	}

	var out GetOutput
	if err := json.Unmarshal(data, &out.Settings); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}
	return &out, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if err := input.Settings.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal settings")
	}

	if err := r.client.Set(ctx, settingsKeyPrefix+input.Profile, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store settings in Redis")
	}
	return &SaveOutput{}, nil
}
