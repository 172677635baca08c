package service

import (
	"context"

	"wisely_backend/internal/config"
	"wisely_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// SessionService owns the server-side session records. A session binds a
// random id to a subject in Redis with the configured TTL; the client only
// ever holds the signed form of that id.
type SessionService struct {
	Redis *redis.Client
	Cfg   config.SessionConfig
}

func NewSessionService(rdb *redis.Client, cfg config.SessionConfig) *SessionService {
	return &SessionService{Redis: rdb, Cfg: cfg}
}

// Create persists a new session for subject and returns the signed cookie
// value.
func (s *SessionService) Create(ctx context.Context, subject string) (string, error) {
	sid := uuid.New().String()

	if err := s.Redis.Set(ctx, sessionKeyPrefix+sid, subject, s.Cfg.TTL).Err(); err != nil {
		return "", err
	}

	return util.SignSessionID(sid, s.Cfg.Secret, s.Cfg.TTL)
}

// Resolve maps a signed cookie value back to the subject it was issued
// for. Tampered signatures, expired tokens and evicted records all come
// back as ErrSessionNotFound.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	claims, err := util.ParseSessionToken(token, s.Cfg.Secret)
	if err != nil {
		return "", util.ErrSessionNotFound
	}

	subject, err := s.Redis.Get(ctx, sessionKeyPrefix+claims.SessionID).Result()
	if err != nil {
		return "", util.ErrSessionNotFound
	}

	return subject, nil
}

// Destroy removes the session record unconditionally. Unknown or invalid
// tokens are not an error: logout always succeeds.
func (s *SessionService) Destroy(ctx context.Context, token string) {
	claims, err := util.ParseSessionToken(token, s.Cfg.Secret)
	if err != nil {
		return
	}
	s.Redis.Del(ctx, sessionKeyPrefix+claims.SessionID)
}
