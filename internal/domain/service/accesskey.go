package service

import (
	"context"
	"time"

	"github.com/clubstack/club-api/internal/domain/common/errorz"
	"github.com/clubstack/club-api/internal/domain/entity"
	"github.com/clubstack/club-api/pkg/generator"
	"github.com/clubstack/club-api/pkg/logger/types"
)

type AccessKeyStorage interface {
	Create(ctx context.Context, key *entity.AccessKey) (*entity.AccessKey, error)
	GetValidByCode(ctx context.Context, code string) (*entity.AccessKey, error)
	Invalidate(ctx context.Context, code string) error
	GetValid(ctx context.Context) ([]entity.AccessKey, error)
}

type credentialVerifier interface {
	VerifyCredentials(ctx context.Context, login, password string) (int64, error)
}

type expiryScheduler interface {
	ScheduleOnce(id string, delay time.Duration, run func())
}

// AccessKeyService issues, validates and expires the bearer keys gating every
// protected route. A key lives for a fixed TTL from issuance; expiry is a
// one-shot event fired outside any request.
type AccessKeyService struct {
	storage   AccessKeyStorage
	directory credentialVerifier
	scheduler expiryScheduler
	keyLength int
	ttl       time.Duration
	logger    *types.Logger
}

func NewAccessKeyService(
	storage AccessKeyStorage,
	directory credentialVerifier,
	scheduler expiryScheduler,
	keyLength int,
	ttl time.Duration,
	logger *types.Logger,
) *AccessKeyService {
	return &AccessKeyService{
		storage:   storage,
		directory: directory,
		scheduler: scheduler,
		keyLength: keyLength,
		ttl:       ttl,
		logger:    logger,
	}
}

// Issue verifies the credentials against the directory and mints a new valid
// key with its own expiry event. Repeated issuance is not deduplicated: every
// call yields a fresh key.
func (s *AccessKeyService) Issue(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", errorz.ErrInvalidCredentials
	}
	if _, err := s.directory.VerifyCredentials(ctx, login, password); err != nil {
		return "", errorz.ErrAuthenticationFailed
	}

	code, err := generator.KeyCode(s.keyLength)
	if err != nil {
		return "", err
	}
	if _, err = s.storage.Create(ctx, &entity.AccessKey{KeyCode: code, State: entity.KeyStateValid}); err != nil {
		return "", err
	}
	s.scheduleExpiry(code, s.ttl)

	return code, nil
}

// Authorize reports whether the exact code exists with state=valid. Checked
// against the store on every call: expiry runs asynchronously, so nothing is
// cached between requests.
func (s *AccessKeyService) Authorize(ctx context.Context, code string) bool {
	if code == "" {
		return false
	}
	_, err := s.storage.GetValidByCode(ctx, code)
	return err == nil
}

// Expire transitions the key to invalid. Idempotent: expiring an unknown or
// already invalid key is a no-op.
func (s *AccessKeyService) Expire(ctx context.Context, code string) error {
	return s.storage.Invalidate(ctx, code)
}

// RestoreExpiry re-arms expiry events for keys that were valid before a
// restart. Keys past their TTL are expired immediately, the rest keep their
// remaining window. The keys table is the source of truth; the in-process
// scheduler is not.
func (s *AccessKeyService) RestoreExpiry(ctx context.Context) error {
	keys, err := s.storage.GetValid(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		remaining := s.ttl - time.Since(key.CreatedAt)
		if remaining <= 0 {
			if err = s.Expire(ctx, key.KeyCode); err != nil {
				return err
			}
			continue
		}
		s.scheduleExpiry(key.KeyCode, remaining)
	}
	return nil
}

func (s *AccessKeyService) scheduleExpiry(code string, delay time.Duration) {
	s.scheduler.ScheduleOnce("key:"+code, delay, func() {
		if err := s.storage.Invalidate(context.Background(), code); err != nil {
			s.logger.Errorf("failed to expire key: %v", err)
			return
		}
		s.logger.Debugf("key expired after %s", delay)
	})
}
