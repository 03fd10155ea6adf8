package game

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	"github.com/KirkDiggler/intrigue-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/intrigue-api/internal/redis"
)

const (
	gameKeyPrefix = "game:"

	errGameNil     = "game cannot be nil"
	errGameIDEmpty = "game ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new game, failing if the ID is taken
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Game == nil {
		return nil, errors.InvalidArgument(errGameNil)
	}
	if input.Game.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	now := r.clock.Now()
	input.Game.Version = 1
	input.Game.CreatedAt = now
	input.Game.UpdatedAt = now

	data, err := json.Marshal(input.Game)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game")
	}

	ok, err := r.client.SetNX(ctx, gameKeyPrefix+input.Game.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store game")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("game with ID %s already exists", input.Game.ID)
	}

	return &CreateOutput{Game: input.Game}, nil
}

// Get retrieves a game by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	data, err := r.client.Get(ctx, gameKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("game %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get game")
	}

	var g entities.Game
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game")
	}

	return &GetOutput{Game: &g}, nil
}

// Update replaces the stored aggregate. The key is watched for the whole
// read-compare-write sequence; a version mismatch or a concurrent write
// between read and commit fails with Aborted so the caller can reload,
// re-validate, and retry.
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Game == nil {
		return nil, errors.InvalidArgument(errGameNil)
	}
	if input.Game.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	key := gameKeyPrefix + input.Game.ID

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("game %s not found", input.Game.ID)
			}
			return errors.Wrapf(err, "failed to read game for update")
		}

		var stored entities.Game
		if err := json.Unmarshal([]byte(data), &stored); err != nil {
			return errors.Wrapf(err, "failed to unmarshal stored game")
		}

		if stored.Version != input.Game.Version {
			return errors.Abortedf("game %s modified concurrently (version %d, expected %d)",
				input.Game.ID, stored.Version, input.Game.Version)
		}

		input.Game.Version++
		input.Game.UpdatedAt = r.clock.Now()

		updated, err := json.Marshal(input.Game)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal game")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}, key)

	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("game %s modified concurrently", input.Game.ID)
		}
		var custom *errors.Error
		if errors.As(err, &custom) {
			return nil, custom
		}
		return nil, errors.Wrapf(err, "failed to update game")
	}

	return &UpdateOutput{Game: input.Game}, nil
}
