package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/clubstack/club-api/internal/adapters/database/postgres"
	"github.com/clubstack/club-api/internal/domain/common/errorz"
	"github.com/clubstack/club-api/internal/domain/dto"
	"github.com/clubstack/club-api/internal/domain/entity"
	"github.com/clubstack/club-api/internal/domain/service"
)

func newMemberService(db *gorm.DB) *service.MemberService {
	return service.NewMemberService(postgres.NewMemberStorage(db), postgres.NewClubStorage(db))
}

func TestMemberService_Add(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedUser(t, db, 5, "alice", "pw")
	club := seedClub(t, db, "Chess Club", ownerID(5))
	members := newMemberService(db)

	t.Run("success with normalization", func(t *testing.T) {
		member, err := members.Add(ctx, &entity.Member{
			Name:          "Pawel",
			ClubID:        club.ID,
			DateOfBirth:   "21/05/1999",
			TermCondition: "premium",
		})
		require.NoError(t, err)
		assert.NotZero(t, member.ID)
		assert.Equal(t, "1999-05-21", member.DateOfBirth)
		assert.Equal(t, entity.TermConditionRegular, member.TermCondition)
	})

	t.Run("special needs kept as given", func(t *testing.T) {
		member, err := members.Add(ctx, &entity.Member{
			Name:          "Magnus",
			ClubID:        club.ID,
			TermCondition: entity.TermConditionSpecialNeeds,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.TermConditionSpecialNeeds, member.TermCondition)
	})

	t.Run("unknown club", func(t *testing.T) {
		_, err := members.Add(ctx, &entity.Member{Name: "Orphan", ClubID: 999})
		assert.ErrorIs(t, err, errorz.ErrClubNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := members.Add(ctx, &entity.Member{Name: "   ", ClubID: club.ID})
		assert.ErrorIs(t, err, errorz.ErrInvalidData)
	})
}

func TestMemberService_Remove(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedUser(t, db, 5, "alice", "pw")
	club := seedClub(t, db, "Chess Club", ownerID(5))
	member := seedMember(t, db, club.ID, "Pawel")
	members := newMemberService(db)

	require.NoError(t, members.Remove(ctx, member.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Member{}).Count(&count).Error)
	assert.Zero(t, count)

	// standalone removal does not archive to trash
	var trashCount int64
	require.NoError(t, db.Model(&entity.TrashRecord{}).Count(&trashCount).Error)
	assert.Zero(t, trashCount)

	t.Run("unknown member", func(t *testing.T) {
		assert.ErrorIs(t, members.Remove(ctx, member.ID), errorz.ErrMemberNotFound)
	})
}

func TestMemberService_Update(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedUser(t, db, 5, "alice", "pw")
	club := seedClub(t, db, "Chess Club", ownerID(5))
	member := seedMember(t, db, club.ID, "Pawel")
	members := newMemberService(db)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := members.Update(ctx, member.ID, dto.MemberUpdate{
			Place:       strPtr("Lyon"),
			DateOfBirth: strPtr("01-02-2003"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Pawel", updated.Name)
		assert.Equal(t, "Lyon", updated.Place)
		assert.Equal(t, "2003-02-01", updated.DateOfBirth)
	})

	t.Run("term condition coerced", func(t *testing.T) {
		updated, err := members.Update(ctx, member.ID, dto.MemberUpdate{TermCondition: strPtr("gold")})
		require.NoError(t, err)
		assert.Equal(t, entity.TermConditionRegular, updated.TermCondition)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := members.Update(ctx, 999, dto.MemberUpdate{Name: strPtr("x")})
		assert.ErrorIs(t, err, errorz.ErrMemberNotFound)
	})
}
