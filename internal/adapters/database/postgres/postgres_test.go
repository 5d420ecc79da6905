package postgres_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/clubstack/club-api/internal/adapters/database/postgres"
	"github.com/clubstack/club-api/internal/domain/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(postgres.Migrations...))
	return db
}

func TestAccessKeyStorage(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	storage := postgres.NewAccessKeyStorage(db)

	_, err := storage.Create(ctx, &entity.AccessKey{KeyCode: "abc", State: entity.KeyStateValid})
	require.NoError(t, err)

	t.Run("get valid by code", func(t *testing.T) {
		key, err := storage.GetValidByCode(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", key.KeyCode)

		_, err = storage.GetValidByCode(ctx, "missing")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("invalidate", func(t *testing.T) {
		require.NoError(t, storage.Invalidate(ctx, "abc"))
		_, err := storage.GetValidByCode(ctx, "abc")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		// no-op on unknown and repeated codes
		require.NoError(t, storage.Invalidate(ctx, "abc"))
		require.NoError(t, storage.Invalidate(ctx, "missing"))
	})

	t.Run("get valid lists only valid", func(t *testing.T) {
		_, err := storage.Create(ctx, &entity.AccessKey{KeyCode: "def", State: entity.KeyStateValid})
		require.NoError(t, err)

		keys, err := storage.GetValid(ctx)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, "def", keys[0].KeyCode)
	})
}

func TestClubStorage_GetWithPagination(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clubs := postgres.NewClubStorage(db)
	members := postgres.NewMemberStorage(db)

	first, err := clubs.Create(ctx, &entity.Club{Name: "Chess Club"})
	require.NoError(t, err)
	_, err = clubs.Create(ctx, &entity.Club{Name: "Swim Club"})
	require.NoError(t, err)
	_, err = members.Create(ctx, &entity.Member{Name: "Pawel", ClubID: first.ID})
	require.NoError(t, err)

	page, err := clubs.GetWithPagination(ctx, 0, 1, "id")
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Chess Club", page[0].Name)
	require.Len(t, page[0].Members, 1)
	assert.Equal(t, "Pawel", page[0].Members[0].Name)

	page, err = clubs.GetWithPagination(ctx, 1, 1, "id")
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Swim Club", page[0].Name)
	assert.Empty(t, page[0].Members)
}

func TestClubStorage_GetOwnerIDs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clubs := postgres.NewClubStorage(db)

	owner := func(id int64) *int64 { return &id }
	_, err := clubs.Create(ctx, &entity.Club{Name: "Chess Club", OwnerID: owner(7)})
	require.NoError(t, err)
	_, err = clubs.Create(ctx, &entity.Club{Name: "Swim Club", OwnerID: owner(3)})
	require.NoError(t, err)
	_, err = clubs.Create(ctx, &entity.Club{Name: "Run Club"})
	require.NoError(t, err)

	ids, err := clubs.GetOwnerIDs(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, ids)

	ids, err = clubs.GetOwnerIDs(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids)
}

func TestMemberStorage_DeleteByClubID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clubs := postgres.NewClubStorage(db)
	members := postgres.NewMemberStorage(db)

	first, err := clubs.Create(ctx, &entity.Club{Name: "Chess Club"})
	require.NoError(t, err)
	second, err := clubs.Create(ctx, &entity.Club{Name: "Swim Club"})
	require.NoError(t, err)
	_, err = members.Create(ctx, &entity.Member{Name: "Pawel", ClubID: first.ID})
	require.NoError(t, err)
	_, err = members.Create(ctx, &entity.Member{Name: "Magnus", ClubID: second.ID})
	require.NoError(t, err)

	require.NoError(t, members.DeleteByClubID(ctx, first.ID))

	left, err := members.GetAllByClubID(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "Magnus", left[0].Name)

	gone, err := members.GetAllByClubID(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, gone)
}
