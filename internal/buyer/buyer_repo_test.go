package buyer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Buyer{}))
	return db
}

func TestBuyerUpsertIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBuyerRepository(db)

	require.NoError(t, repo.Upsert(&Buyer{
		ScoutNick: "scout1",
		ManagerID: "700",
		Budget:    "2M",
		Status:    StatusAsked,
	}))
	require.NoError(t, repo.Upsert(&Buyer{
		ScoutNick: "scout1",
		ManagerID: "700",
		Budget:    "about 3M after sales",
		Spots:     "2",
		Status:    StatusInterested,
	}))

	var n int64
	require.NoError(t, db.Model(&Buyer{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	stored, err := repo.GetByManagerID("scout1", "700")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "about 3M after sales", stored.Budget)
	assert.Equal(t, "2", stored.Spots)
	assert.Equal(t, StatusInterested, stored.Status)
}

func TestBuyerGetAllOrderedByDateDesc(t *testing.T) {
	repo := NewBuyerRepository(setupTestDB(t))

	require.NoError(t, repo.Upsert(&Buyer{
		ScoutNick: "scout1", ManagerID: "700",
		ContactDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.Upsert(&Buyer{
		ScoutNick: "scout1", ManagerID: "701",
		ContactDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}))

	buyers, total, err := repo.GetAll("scout1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, buyers, 2)
	assert.Equal(t, "701", buyers[0].ManagerID)
	assert.Equal(t, "700", buyers[1].ManagerID)
}

func TestBuyerNamespaceDisjointPerScout(t *testing.T) {
	repo := NewBuyerRepository(setupTestDB(t))

	require.NoError(t, repo.Upsert(&Buyer{ScoutNick: "scout1", ManagerID: "700"}))
	require.NoError(t, repo.Upsert(&Buyer{ScoutNick: "scout2", ManagerID: "700"}))

	buyers, total, err := repo.GetAll("scout1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, buyers, 1)
}

func TestBuyerDeleteAbsentIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBuyerRepository(db)

	require.NoError(t, repo.Upsert(&Buyer{ScoutNick: "scout1", ManagerID: "700"}))

	require.NoError(t, repo.Delete("scout1", "nope"))
	require.NoError(t, repo.Delete("scout2", "700"))

	var n int64
	require.NoError(t, db.Model(&Buyer{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete("scout1", "700"))
	require.NoError(t, db.Model(&Buyer{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestBuyerValidStatus(t *testing.T) {
	for _, s := range StatusOptions {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Maybe"))
	assert.False(t, ValidStatus(""))
}
