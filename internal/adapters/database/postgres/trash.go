package postgres

import (
	"context"

	"github.com/clubstack/club-api/internal/domain/entity"
	"gorm.io/gorm"
)

type TrashStorage struct {
	db *gorm.DB
}

func NewTrashStorage(db *gorm.DB) *TrashStorage {
	return &TrashStorage{
		db: db,
	}
}

func (s *TrashStorage) Create(ctx context.Context, record *entity.TrashRecord) (*entity.TrashRecord, error) {
	err := s.db.WithContext(ctx).Create(&record).Error
	return record, err
}
