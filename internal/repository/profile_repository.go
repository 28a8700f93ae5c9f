package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"wealthview/internal/entity"
	redisPkg "wealthview/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// ErrProfileNotFound is returned when no profile blob has been stored yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the single user profile as one JSON blob.
type ProfileRepository interface {
	Load(ctx context.Context) (entity.UserProfile, error)
	Save(ctx context.Context, profile entity.UserProfile) error
}

// --- file-backed implementation ---

type fileProfileRepository struct {
	path string
}

// NewFileProfileRepository stores the profile blob in a local JSON file.
func NewFileProfileRepository(path string) ProfileRepository {
	return &fileProfileRepository{path: path}
}

func (r *fileProfileRepository) Load(_ context.Context) (entity.UserProfile, error) {
	var profile entity.UserProfile

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return profile, ErrProfileNotFound
		}
		return profile, err
	}

	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, err
	}
	return profile, nil
}

func (r *fileProfileRepository) Save(_ context.Context, profile entity.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

// --- redis-backed implementation ---

type redisProfileRepository struct {
	client *redisPkg.Client
	key    string
}

// NewRedisProfileRepository stores the profile blob under a single Redis key.
func NewRedisProfileRepository(client *redisPkg.Client, key string) ProfileRepository {
	return &redisProfileRepository{client: client, key: key}
}

func (r *redisProfileRepository) Load(ctx context.Context) (entity.UserProfile, error) {
	var profile entity.UserProfile

	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return profile, ErrProfileNotFound
		}
		return profile, err
	}

	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, err
	}
	return profile, nil
}

func (r *redisProfileRepository) Save(ctx context.Context, profile entity.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	// The profile is the only durable record; it never expires.
	return r.client.Set(ctx, r.key, data, 0).Err()
}
