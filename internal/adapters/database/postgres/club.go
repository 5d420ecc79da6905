package postgres

import (
	"context"

	"github.com/clubstack/club-api/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(&club).Error
	return club, err
}

func (s *ClubStorage) Get(ctx context.Context, id uint) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	return &club, err
}

func (s *ClubStorage) GetByOwnerID(ctx context.Context, ownerID int64) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&club).Error
	return &club, err
}

// GetByOwnerIDExcluding looks up a club bound to the owner while ignoring the
// named club's own row, so a club keeps its owner without tripping the
// uniqueness check on update.
func (s *ClubStorage) GetByOwnerIDExcluding(ctx context.Context, ownerID int64, clubID uint) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("owner_id = ? AND id != ?", ownerID, clubID).First(&club).Error
	return &club, err
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(&club).Error
	return club, err
}

func (s *ClubStorage) ClearOwner(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&entity.Club{}).Where("id = ?", id).Update("owner_id", nil).Error
}

func (s *ClubStorage) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Club{}).Error
}

func (s *ClubStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Club{}).Count(&count).Error
	return count, err
}

func (s *ClubStorage) GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Preload("Members").Order(order).Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, err
}

func (s *ClubStorage) GetOwnerIDs(ctx context.Context, offset, limit int) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&entity.Club{}).
		Select("DISTINCT owner_id").
		Where("owner_id IS NOT NULL").
		Order("owner_id").
		Offset(offset).
		Limit(limit).
		Scan(&ids).Error
	return ids, err
}
