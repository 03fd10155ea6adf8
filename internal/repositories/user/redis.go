package user

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
	userKeyPrefix = "user:"

	errUserNil     = "user cannot be nil"
	errUserIDEmpty = "user ID cannot be empty"
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

// NewRedis creates a new Redis-backed user repository
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

// Create stores a new user, failing if the ID is taken
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument(errUserNil)
	}
	if input.User.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	u := *input.User
	u.CreatedAt = r.clock.Now()

	data, err := json.Marshal(&u)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal user")
	}

	ok, err := r.client.SetNX(ctx, userKeyPrefix+u.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store user")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("user with ID %s already exists", u.ID)
	}

	return &CreateOutput{User: &u}, nil
}

// Get retrieves a user by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	data, err := r.client.Get(ctx, userKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("user %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get user")
	}

	var u entities.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user")
	}

	return &GetOutput{User: &u}, nil
}
