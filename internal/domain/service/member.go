package service

import (
	"context"
	"strings"

	"github.com/clubstack/club-api/internal/domain/common/errorz"
	"github.com/clubstack/club-api/internal/domain/dto"
	"github.com/clubstack/club-api/internal/domain/entity"
	"github.com/clubstack/club-api/internal/domain/utils"
)

type MemberStorage interface {
	Create(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Get(ctx context.Context, id uint) (*entity.Member, error)
	Update(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Delete(ctx context.Context, id uint) error
}

type memberClubStorage interface {
	Get(ctx context.Context, id uint) (*entity.Club, error)
}

type MemberService struct {
	storage     MemberStorage
	clubStorage memberClubStorage
}

func NewMemberService(storage MemberStorage, clubStorage memberClubStorage) *MemberService {
	return &MemberService{
		storage:     storage,
		clubStorage: clubStorage,
	}
}

func (s *MemberService) Add(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	if _, err := s.clubStorage.Get(ctx, member.ClubID); err != nil {
		return nil, errorz.ErrClubNotFound
	}
	if strings.TrimSpace(member.Name) == "" {
		return nil, errorz.ErrInvalidData
	}
	member.TermCondition = entity.NormalizeTermCondition(member.TermCondition)
	member.DateOfBirth = utils.NormalizeDate(member.DateOfBirth)
	return s.storage.Create(ctx, member)
}

// Remove hard-deletes the member. Standalone removal does not archive to
// trash; only the club removal cascade does.
func (s *MemberService) Remove(ctx context.Context, id uint) error {
	if _, err := s.storage.Get(ctx, id); err != nil {
		return errorz.ErrMemberNotFound
	}
	return s.storage.Delete(ctx, id)
}

// Update applies a partial update: nil fields in upd keep the stored value.
func (s *MemberService) Update(ctx context.Context, id uint, upd dto.MemberUpdate) (*entity.Member, error) {
	member, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, errorz.ErrMemberNotFound
	}

	if upd.Name != nil {
		member.Name = *upd.Name
	}
	if upd.DateOfBirth != nil {
		member.DateOfBirth = utils.NormalizeDate(*upd.DateOfBirth)
	}
	if upd.Place != nil {
		member.Place = *upd.Place
	}
	if upd.Status != nil {
		member.Status = *upd.Status
	}
	if upd.TermCondition != nil {
		member.TermCondition = entity.NormalizeTermCondition(*upd.TermCondition)
	}
	if upd.Genre != nil {
		member.Genre = *upd.Genre
	}
	if upd.Address != nil {
		member.Address = *upd.Address
	}
	if upd.EducationalInstitution != nil {
		member.EducationalInstitution = *upd.EducationalInstitution
	}

	return s.storage.Update(ctx, member)
}
