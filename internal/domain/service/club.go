package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clubstack/club-api/internal/domain/common/errorz"
	"github.com/clubstack/club-api/internal/domain/dto"
	"github.com/clubstack/club-api/internal/domain/entity"
	"github.com/clubstack/club-api/internal/domain/utils"
	"gorm.io/gorm"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id uint) (*entity.Club, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*entity.Club, error)
	GetByOwnerIDExcluding(ctx context.Context, ownerID int64, clubID uint) (*entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	ClearOwner(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error)
	GetOwnerIDs(ctx context.Context, offset, limit int) ([]int64, error)
}

type clubMemberStorage interface {
	GetAllByClubID(ctx context.Context, clubID uint) ([]entity.Member, error)
	GetByClubID(ctx context.Context, clubID uint, offset, limit int) ([]entity.Member, error)
	DeleteByClubID(ctx context.Context, clubID uint) error
}

type trashStorage interface {
	Create(ctx context.Context, record *entity.TrashRecord) (*entity.TrashRecord, error)
}

type ownerDirectory interface {
	LookupUser(ctx context.Context, id int64) (dto.ClubOwner, error)
}

type ClubService struct {
	storage       ClubStorage
	memberStorage clubMemberStorage
	trashStorage  trashStorage
	directory     ownerDirectory
}

func NewClubService(storage ClubStorage, memberStorage clubMemberStorage, trashStorage trashStorage, directory ownerDirectory) *ClubService {
	return &ClubService{
		storage:       storage,
		memberStorage: memberStorage,
		trashStorage:  trashStorage,
		directory:     directory,
	}
}

func (s *ClubService) Add(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	if club.OwnerID == nil {
		return nil, errorz.ErrInvalidOwner
	}
	if err := s.validateOwner(ctx, *club.OwnerID, 0); err != nil {
		return nil, err
	}
	return s.storage.Create(ctx, club)
}

// Update applies a partial update: nil fields in upd keep the stored value.
// An owner change re-validates uniqueness excluding the club's own row.
func (s *ClubService) Update(ctx context.Context, clubID uint, upd dto.ClubUpdate) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, clubID)
	if err != nil {
		return nil, errorz.ErrClubNotFound
	}

	ownerID := club.OwnerID
	if upd.OwnerID != nil {
		ownerID = upd.OwnerID
	}
	if ownerID != nil {
		if err = s.validateOwner(ctx, *ownerID, clubID); err != nil {
			return nil, err
		}
	}

	club.OwnerID = ownerID
	if upd.Name != nil {
		club.Name = *upd.Name
	}
	if upd.PostalCode != nil {
		club.PostalCode = *upd.PostalCode
	}
	if upd.Phone != nil {
		club.Phone = *upd.Phone
	}
	if upd.Mail != nil {
		club.Mail = *upd.Mail
	}
	if upd.Address != nil {
		club.Address = *upd.Address
	}
	club.Members = nil

	return s.storage.Update(ctx, club)
}

// Remove archives and deletes the club in two phases: members first, then the
// club row. The phases are independent store calls, not a transaction; when
// phase two fails the members are already gone while the club row remains.
func (s *ClubService) Remove(ctx context.Context, clubID uint) error {
	club, err := s.storage.Get(ctx, clubID)
	if err != nil {
		return errorz.ErrClubNotFound
	}

	members, err := s.memberStorage.GetAllByClubID(ctx, clubID)
	if err != nil {
		return fmt.Errorf("%w: %v", errorz.ErrMembersNotRemoved, err)
	}
	for i := range members {
		snapshot, errMarshal := json.Marshal(members[i])
		if errMarshal != nil {
			return fmt.Errorf("%w: %v", errorz.ErrMembersNotRemoved, errMarshal)
		}
		_, errTrash := s.trashStorage.Create(ctx, &entity.TrashRecord{
			Datetime:    time.Now(),
			Description: "Member removed from club",
			Details:     string(snapshot),
		})
		if errTrash != nil {
			return fmt.Errorf("%w: %v", errorz.ErrMembersNotRemoved, errTrash)
		}
	}
	if err = s.memberStorage.DeleteByClubID(ctx, clubID); err != nil {
		return fmt.Errorf("%w: %v", errorz.ErrMembersNotRemoved, err)
	}

	club.Members = nil
	snapshot, err := json.Marshal(club)
	if err != nil {
		return fmt.Errorf("%w: %v", errorz.ErrClubNotMovedToTrash, err)
	}
	_, err = s.trashStorage.Create(ctx, &entity.TrashRecord{
		Datetime:    time.Now(),
		Description: "Club removed: " + string(snapshot),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errorz.ErrClubNotMovedToTrash, err)
	}
	if err = s.storage.Delete(ctx, clubID); err != nil {
		return fmt.Errorf("%w: %v", errorz.ErrClubNotMovedToTrash, err)
	}

	return nil
}

// DeleteOwner clears the owner reference; members and the club itself are
// untouched.
func (s *ClubService) DeleteOwner(ctx context.Context, clubID uint) error {
	if _, err := s.storage.Get(ctx, clubID); err != nil {
		return errorz.ErrClubNotFound
	}
	return s.storage.ClearOwner(ctx, clubID)
}

func (s *ClubService) OwnerDetails(ctx context.Context, clubID uint) (dto.ClubOwner, error) {
	club, err := s.storage.Get(ctx, clubID)
	if err != nil {
		return dto.ClubOwner{}, errorz.ErrClubNotFound
	}
	if club.OwnerID == nil {
		return dto.ClubOwner{}, errorz.ErrClubNotFound
	}
	owner, err := s.directory.LookupUser(ctx, *club.OwnerID)
	if err != nil {
		return dto.ClubOwner{}, errorz.ErrClubNotFound
	}
	return owner, nil
}

func (s *ClubService) ListWithMembers(ctx context.Context, page, perPage int) ([]dto.ClubWithMembers, error) {
	offset, limit := utils.Pagination(page, perPage)
	clubs, err := s.storage.GetWithPagination(ctx, offset, limit, "id")
	if err != nil {
		return nil, err
	}
	if len(clubs) == 0 {
		return nil, errorz.ErrNoClubsFound
	}

	result := make([]dto.ClubWithMembers, 0, len(clubs))
	for i := range clubs {
		members := clubs[i].Members
		if members == nil {
			members = []entity.Member{}
		}
		result = append(result, dto.ClubWithMembers{
			ClubID:   clubs[i].ID,
			ClubName: clubs[i].Name,
			OwnerID:  clubs[i].OwnerID,
			Members:  members,
		})
	}
	return result, nil
}

// MembersByClub lists one club's members. A club that exists but has no
// members yields an empty list on the first page; only paginating past the
// rows is reported as not found.
func (s *ClubService) MembersByClub(ctx context.Context, clubID uint, page, perPage int) (dto.ClubWithMembers, error) {
	club, err := s.storage.Get(ctx, clubID)
	if err != nil {
		return dto.ClubWithMembers{}, errorz.ErrClubNotFound
	}

	offset, limit := utils.Pagination(page, perPage)
	members, err := s.memberStorage.GetByClubID(ctx, clubID, offset, limit)
	if err != nil {
		return dto.ClubWithMembers{}, err
	}
	if len(members) == 0 && offset > 0 {
		return dto.ClubWithMembers{}, errorz.ErrNoMembersFound
	}
	if members == nil {
		members = []entity.Member{}
	}

	return dto.ClubWithMembers{
		ClubID:   club.ID,
		ClubName: club.Name,
		OwnerID:  club.OwnerID,
		Members:  members,
	}, nil
}

// ListOwners returns the distinct bound owners. Ids that no longer resolve in
// the directory are kept with empty profile fields, matching left-join
// semantics.
func (s *ClubService) ListOwners(ctx context.Context, page, perPage int) ([]dto.ClubOwner, error) {
	offset, limit := utils.Pagination(page, perPage)
	ids, err := s.storage.GetOwnerIDs(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errorz.ErrNoOwnersFound
	}

	owners := make([]dto.ClubOwner, 0, len(ids))
	for _, id := range ids {
		owner, errLookup := s.directory.LookupUser(ctx, id)
		if errLookup != nil {
			owner = dto.ClubOwner{OwnerID: id}
		}
		owners = append(owners, owner)
	}
	return owners, nil
}

func (s *ClubService) validateOwner(ctx context.Context, ownerID int64, excludeClubID uint) error {
	if _, err := s.directory.LookupUser(ctx, ownerID); err != nil {
		return errorz.ErrInvalidOwner
	}
	var err error
	if excludeClubID == 0 {
		_, err = s.storage.GetByOwnerID(ctx, ownerID)
	} else {
		_, err = s.storage.GetByOwnerIDExcluding(ctx, ownerID, excludeClubID)
	}
	if err == nil {
		return errorz.ErrInvalidOwner
	}
	// only a missing row means the owner is free; a store failure must not
	// pass the uniqueness check
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
