package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/user/mock.go -package=mocks

type userRepository interface {
	Create(context.Context, model.User) (int64, error)
	GetByID(context.Context, int64) (model.User, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service is the user directory consumed by the dispatch engine. Lookups are
// cached: destination fields change rarely and every delivery attempt needs
// them.
type Service struct {
	repo  userRepository
	cache cache
}

func NewService(repo userRepository, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Create inserts a new user.
func (s *Service) Create(ctx context.Context, u model.User) (int64, error) {
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// GetByID resolves a user, preferring the cache and falling back to the
// repository on a miss.
func (s *Service) GetByID(ctx context.Context, strategy retry.Strategy, id int64) (model.User, error) {
	raw, err := s.cache.GetWithRetry(ctx, strategy, cacheKey(id))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get user from cache")
	}

	if err == nil && raw != "" {
		var u model.User
		if jsonErr := json.Unmarshal([]byte(raw), &u); jsonErr == nil {
			return u, nil
		}

		zlog.Logger.Warn().Int64("id", id).Msg("corrupt user cache entry, reloading")
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}

	body, err := json.Marshal(u)
	if err == nil {
		if cacheErr := s.cache.SetWithRetry(ctx, strategy, cacheKey(id), string(body)); cacheErr != nil {
			zlog.Logger.Error().Err(cacheErr).Int64("id", id).Msg("failed to cache user")
		}
	}

	return u, nil
}
