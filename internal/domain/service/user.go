package service

import (
	"context"
	"errors"

	"github.com/clubstack/club-api/internal/domain/common/errorz"
	"github.com/clubstack/club-api/internal/domain/dto"
	"github.com/clubstack/club-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserStorage interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
}

// UserService is the identity directory behind key issuance and owner
// resolution. Password hashes are bcrypt.
type UserService struct {
	storage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

func (s *UserService) VerifyCredentials(ctx context.Context, login, password string) (int64, error) {
	user, err := s.storage.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errorz.ErrAuthenticationFailed
		}
		return 0, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, errorz.ErrAuthenticationFailed
	}
	return user.ID, nil
}

func (s *UserService) LookupUser(ctx context.Context, id int64) (dto.ClubOwner, error) {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return dto.ClubOwner{}, err
	}
	return dto.ClubOwner{
		OwnerID:    user.ID,
		OwnerName:  user.DisplayName,
		OwnerEmail: user.Email,
	}, nil
}
