package persistent

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"lv33global/pkg/database"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string {
	return &s
}

func TestContentRepository_CreateAndGet(t *testing.T) {
	repo := NewCasinoRepository(setupTestDB(t))
	ctx := context.Background()

	casino := &entity.Casino{
		Label1:   "A",
		Label2:   "B",
		Country:  "US",
		Website:  "x.com",
		Logo:     strPtr("/uploads/1-logo.png"),
		Payments: []string{"Visa"},
		Ranking:  1,
	}
	require.NoError(t, repo.Create(ctx, casino))
	assert.NotEmpty(t, casino.ID)
	assert.False(t, casino.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, casino.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Label1)
	assert.Equal(t, []string{"Visa"}, got.Payments)
	assert.Equal(t, "/uploads/1-logo.png", got.AssetPath())
}

func TestContentRepository_GetByID_NotFound(t *testing.T) {
	repo := NewGameRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentRepository_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	casinos := NewCasinoRepository(db)
	for _, ranking := range []int{3, 1, 2} {
		require.NoError(t, casinos.Create(ctx, &entity.Casino{Label1: "c", Label2: "c", Country: "US", Website: "w", Ranking: ranking}))
	}
	listed, err := casinos.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{listed[0].Ranking, listed[1].Ranking, listed[2].Ranking})

	sites := NewPokerSiteRepository(db)
	for _, rating := range []float64{4.1, 4.9, 3.5} {
		require.NoError(t, sites.Create(ctx, &entity.PokerSite{Name: "p", Rating: rating}))
	}
	listedSites, err := sites.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listedSites, 3)
	assert.Equal(t, 4.9, listedSites[0].Rating)
	assert.Equal(t, 3.5, listedSites[2].Rating)

	games := NewGameRepository(db)
	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"old", "new", "mid"} {
		offsets := []time.Duration{0, 2 * time.Minute, time.Minute}
		require.NoError(t, games.Create(ctx, &entity.Game{Title: title, Link: "l", CreatedAt: base.Add(offsets[i])}))
	}
	listedGames, err := games.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listedGames, 3)
	assert.Equal(t, "new", listedGames[0].Title)
	assert.Equal(t, "mid", listedGames[1].Title)
	assert.Equal(t, "old", listedGames[2].Title)
}

func TestContentRepository_ListFilter(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Post{Title: "a", Content: "x", Category: entity.CategoryFeaturedNews}))
	require.NoError(t, repo.Create(ctx, &entity.Post{Title: "b", Content: "x", Category: entity.CategoryCasinoBettingNews}))

	posts, err := repo.List(ctx, Filter{"category": entity.CategoryFeaturedNews})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Title)

	empty, err := repo.List(ctx, Filter{"category": "unknown"})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestContentRepository_UpdateOverwritesFields(t *testing.T) {
	repo := NewGlobalSlotRepository(setupTestDB(t))
	ctx := context.Background()

	slot := &entity.GlobalSlot{Name: "Lucky", Promo: "100 spins", Stars: 5, Payments: []string{"Visa"}}
	require.NoError(t, repo.Create(ctx, slot))

	slot.Promo = ""
	slot.Stars = 0
	slot.Payments = nil
	require.NoError(t, repo.Update(ctx, slot))

	got, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lucky", got.Name)
	assert.Equal(t, "", got.Promo)
	assert.Equal(t, 0, got.Stars)
	assert.Equal(t, []string{}, got.Payments)
}

func TestContentRepository_UpdateMissing(t *testing.T) {
	repo := NewCasinoCardRepository(setupTestDB(t))

	err := repo.Update(context.Background(), &entity.CasinoCard{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentRepository_Delete(t *testing.T) {
	repo := NewBestCasinoRepository(setupTestDB(t))
	ctx := context.Background()

	card := &entity.BestCasino{Promo: "200%", Code: "WELCOME", Rating: 4.5}
	require.NoError(t, repo.Create(ctx, card))

	require.NoError(t, repo.Delete(ctx, card.ID))
	_, err := repo.GetByID(ctx, card.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, card.ID), ErrNotFound)
}

func TestDecodeList_LegacyRowsReadBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCasinoRepository(db)
	ctx := context.Background()

	casino := &entity.Casino{Label1: "A", Label2: "B", Country: "US", Website: "x.com", Ranking: 1}
	require.NoError(t, repo.Create(ctx, casino))
	require.NoError(t, db.Model(&model.CasinoModel{}).Where("id = ?", casino.ID).
		Update("payments", `"[\"Visa\",\"Neteller\"]"`).Error)

	got, err := repo.GetByID(ctx, casino.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Visa", "Neteller"}, got.Payments)

	require.NoError(t, repo.Update(ctx, got))
	var stored model.CasinoModel
	require.NoError(t, db.First(&stored, "id = ?", casino.ID).Error)
	assert.Equal(t, `["Visa","Neteller"]`, stored.Payments)
}
