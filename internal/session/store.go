// internal/session/store.go

// Package session keeps per-connection conversation state that has to
// outlive a single turn, currently just the visitor's phone number so a
// later turn can trigger the follow-up without repeating it.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"realty-concierge/internal/common/database"
	apperrors "realty-concierge/internal/common/errors"
	"realty-concierge/internal/common/logger"
)

// Store persists session attributes keyed by connection id.
type Store interface {
	RememberPhone(ctx context.Context, sessionID, phone string) error
	Phone(ctx context.Context, sessionID string) (string, error)
}

type redisStore struct {
	client *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisStore(client *database.RedisClient, ttl time.Duration, log logger.Logger) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "session"}),
	}
}

func phoneKey(sessionID string) string {
	return fmt.Sprintf("session:%s:phone", sessionID)
}

func (s *redisStore) RememberPhone(ctx context.Context, sessionID, phone string) error {
	if err := s.client.Set(ctx, phoneKey(sessionID), phone, s.ttl); err != nil {
		return apperrors.NewSessionStoreFailedError(err)
	}
	return nil
}

// Phone returns an empty string without error when nothing was stored.
func (s *redisStore) Phone(ctx context.Context, sessionID string) (string, error) {
	phone, err := s.client.Get(ctx, phoneKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", apperrors.NewSessionStoreFailedError(err)
	}
	return phone, nil
}

// noopStore backs deployments that run without Redis. Phone numbers then
// only live as long as the turn that carried them.
type noopStore struct{}

func NewNoopStore() Store {
	return noopStore{}
}

func (noopStore) RememberPhone(context.Context, string, string) error { return nil }

func (noopStore) Phone(context.Context, string) (string, error) { return "", nil }
