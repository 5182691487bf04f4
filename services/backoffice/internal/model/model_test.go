package model

import (
	"path/filepath"
	"testing"
	"time"

	"lv33global/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"users", "posts", "casinos", "games", "global_slots", "poker_sites", "casino_cards", "best_casinos"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestBeforeCreate_AssignsUUID(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	game := &GameModel{Title: "Book of Dead", Link: "https://example.com"}
	require.NoError(t, db.Create(game).Error)

	_, err = uuid.Parse(game.ID)
	assert.NoError(t, err)

	fixed := &GameModel{ID: "game-1", Title: "Starburst", Link: "https://example.com"}
	require.NoError(t, db.Create(fixed).Error)
	assert.Equal(t, "game-1", fixed.ID)
}

func TestCasinoModel_PaymentsDefault(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, db.Exec(
		"INSERT INTO casinos (id, label1, label2, country, website, ranking, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		"c-1", "A", "B", "US", "x.com", 1, time.Now(), time.Now(),
	).Error)

	var casino CasinoModel
	require.NoError(t, db.First(&casino, "id = ?", "c-1").Error)
	assert.Equal(t, "[]", casino.Payments)
	assert.Nil(t, casino.Logo)
}
