package roster

import (
	"fmt"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&Player{}))
	return db
}

func TestRosterReplaceIsFullReplace(t *testing.T) {
	repo := NewRosterRepository(setupTestDB(t))

	require.NoError(t, repo.Replace("scout1", []Player{
		{PlayerID: 1, OwningUserID: "500"},
		{PlayerID: 2, OwningUserID: "501"},
	}))

	require.NoError(t, repo.Replace("scout1", []Player{
		{PlayerID: 3, OwningUserID: "502"},
	}))

	players, err := repo.GetAll("scout1")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, int64(3), players[0].PlayerID)
}

func TestRosterReplaceEmptyClearsOnlyThatScout(t *testing.T) {
	repo := NewRosterRepository(setupTestDB(t))

	require.NoError(t, repo.Replace("scout1", []Player{{PlayerID: 1}}))
	require.NoError(t, repo.Replace("scout2", []Player{{PlayerID: 2}}))

	require.NoError(t, repo.Replace("scout1", nil))

	players, err := repo.GetAll("scout1")
	require.NoError(t, err)
	assert.Empty(t, players)

	players, err = repo.GetAll("scout2")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, int64(2), players[0].PlayerID)
}

func TestRosterGetAllScopedByScout(t *testing.T) {
	repo := NewRosterRepository(setupTestDB(t))

	require.NoError(t, repo.Replace("scout1", []Player{{PlayerID: 1}, {PlayerID: 2}}))
	require.NoError(t, repo.Replace("scout2", []Player{{PlayerID: 9}}))

	players, err := repo.GetAll("scout1")
	require.NoError(t, err)
	require.Len(t, players, 2)
	// Import order preserved.
	assert.Equal(t, int64(1), players[0].PlayerID)
	assert.Equal(t, int64(2), players[1].PlayerID)
}

func TestRosterDuplicatePlayerIDsAllowed(t *testing.T) {
	repo := NewRosterRepository(setupTestDB(t))

	require.NoError(t, repo.Replace("scout1", []Player{
		{PlayerID: 1, FirstName: "first"},
		{PlayerID: 1, FirstName: "second"},
	}))

	players, err := repo.GetAll("scout1")
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestRosterGetByPlayerID(t *testing.T) {
	repo := NewRosterRepository(setupTestDB(t))

	require.NoError(t, repo.Replace("scout1", []Player{
		{PlayerID: 1, FirstName: "first"},
		{PlayerID: 1, FirstName: "shadowed"},
	}))

	player, err := repo.GetByPlayerID("scout1", 1)
	require.NoError(t, err)
	require.NotNil(t, player)
	assert.Equal(t, "first", player.FirstName)

	player, err = repo.GetByPlayerID("scout1", 404)
	require.NoError(t, err)
	assert.Nil(t, player)

	player, err = repo.GetByPlayerID("scout2", 1)
	require.NoError(t, err)
	assert.Nil(t, player)
}

func TestRosterDistinctOwnersSorted(t *testing.T) {
	repo := NewRosterRepository(setupTestDB(t))

	require.NoError(t, repo.Replace("scout1", []Player{
		{PlayerID: 1, OwningUserID: "502"},
		{PlayerID: 2, OwningUserID: "500"},
		{PlayerID: 3, OwningUserID: "500"},
	}))

	owners, err := repo.DistinctOwners("scout1")
	require.NoError(t, err)
	assert.Equal(t, []string{"500", "502"}, owners)
}

func TestRosterClear(t *testing.T) {
	repo := NewRosterRepository(setupTestDB(t))

	require.NoError(t, repo.Replace("scout1", []Player{{PlayerID: 1}}))
	require.NoError(t, repo.Clear("scout1"))
	// Clearing an already empty roster is a no-op.
	require.NoError(t, repo.Clear("scout1"))

	players, err := repo.GetAll("scout1")
	require.NoError(t, err)
	assert.Empty(t, players)
}
