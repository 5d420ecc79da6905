package postgres

import (
	"context"

	"github.com/clubstack/club-api/internal/domain/entity"
	"gorm.io/gorm"
)

type MemberStorage struct {
	db *gorm.DB
}

func NewMemberStorage(db *gorm.DB) *MemberStorage {
	return &MemberStorage{
		db: db,
	}
}

func (s *MemberStorage) Create(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Create(&member).Error
	return member, err
}

func (s *MemberStorage) Get(ctx context.Context, id uint) (*entity.Member, error) {
	var member entity.Member
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	return &member, err
}

func (s *MemberStorage) Update(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Save(&member).Error
	return member, err
}

func (s *MemberStorage) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Member{}).Error
}

func (s *MemberStorage) GetAllByClubID(ctx context.Context, clubID uint) ([]entity.Member, error) {
	var members []entity.Member
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("id").Find(&members).Error
	return members, err
}

func (s *MemberStorage) GetByClubID(ctx context.Context, clubID uint, offset, limit int) ([]entity.Member, error) {
	var members []entity.Member
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("id").Offset(offset).Limit(limit).Find(&members).Error
	return members, err
}

func (s *MemberStorage) DeleteByClubID(ctx context.Context, clubID uint) error {
	return s.db.WithContext(ctx).Where("club_id = ?", clubID).Delete(&entity.Member{}).Error
}
