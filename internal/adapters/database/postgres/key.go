package postgres

import (
	"context"

	"github.com/clubstack/club-api/internal/domain/entity"
	"gorm.io/gorm"
)

type AccessKeyStorage struct {
	db *gorm.DB
}

func NewAccessKeyStorage(db *gorm.DB) *AccessKeyStorage {
	return &AccessKeyStorage{
		db: db,
	}
}

func (s *AccessKeyStorage) Create(ctx context.Context, key *entity.AccessKey) (*entity.AccessKey, error) {
	err := s.db.WithContext(ctx).Create(&key).Error
	return key, err
}

func (s *AccessKeyStorage) GetValidByCode(ctx context.Context, code string) (*entity.AccessKey, error) {
	var key entity.AccessKey
	err := s.db.WithContext(ctx).
		Where("key_code = ? AND state = ?", code, entity.KeyStateValid).
		First(&key).Error
	return &key, err
}

// Invalidate flips the key to invalid in a single UPDATE. Unknown or already
// invalid codes are a no-op.
func (s *AccessKeyStorage) Invalidate(ctx context.Context, code string) error {
	return s.db.WithContext(ctx).
		Model(&entity.AccessKey{}).
		Where("key_code = ?", code).
		Update("state", entity.KeyStateInvalid).Error
}

func (s *AccessKeyStorage) GetValid(ctx context.Context) ([]entity.AccessKey, error) {
	var keys []entity.AccessKey
	err := s.db.WithContext(ctx).Where("state = ?", entity.KeyStateValid).Find(&keys).Error
	return keys, err
}
