package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetPathAccessors(t *testing.T) {
	records := []Record{&Post{}, &Casino{}, &CasinoCard{}, &BestCasino{}, &Game{}, &GlobalSlot{}, &PokerSite{}}

	for _, r := range records {
		assert.Equal(t, "", r.AssetPath())

		r.SetAssetPath("/uploads/1-a.png")
		assert.Equal(t, "/uploads/1-a.png", r.AssetPath())

		r.SetAssetPath("")
		assert.Equal(t, "", r.AssetPath())
	}
}

func TestSetAssetPath_EmptyClearsPointer(t *testing.T) {
	game := &Game{ID: "g-1"}
	game.SetAssetPath("/uploads/1-a.png")
	assert.NotNil(t, game.Image)

	game.SetAssetPath("")
	assert.Nil(t, game.Image)
	assert.Equal(t, "g-1", game.RecordID())
}
