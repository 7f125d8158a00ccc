package snapshots

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/CWSpear/stumpy/internal/errors"
	"github.com/CWSpear/stumpy/internal/pkg/clock"
	redisclient "github.com/CWSpear/stumpy/internal/redis"
)

// Key pattern: snapshot:{id}
const snapshotKeyPrefix = "snapshot:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed snapshot repository. Expiry is enforced
// by the key TTL.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client, clock: cfg.Clock}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	stored := stamp(input, r.clock.Now())
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, snapshotKeyPrefix+stored.ID, data, input.TTL).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store snapshot in Redis")
	}
	return &SaveOutput{Snapshot: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := snapshotKeyPrefix + input.ID
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("snapshot %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get snapshot from Redis")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}

	// the key TTL and the recorded expiry can disagree by clock skew
	if expired(&snap, r.clock.Now()) {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			slog.Debug("Failed to delete expired snapshot", "snapshot_id", input.ID, "error", err)
		}
		return nil, errors.NotFoundf("snapshot %s has expired", input.ID)
	}

	return &GetOutput{Snapshot: &snap}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	n, err := r.client.Del(ctx, snapshotKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete snapshot from Redis")
	}
	return &DeleteOutput{Deleted: n > 0}, nil
}
