package persistent

import (
	"lv33global/services/backoffice/internal/entity"

	"gorm.io/gorm"
)

type Repositories struct {
	Users       UserRepository
	Posts       ContentRepository[entity.Post]
	Casinos     ContentRepository[entity.Casino]
	Games       ContentRepository[entity.Game]
	GlobalSlots ContentRepository[entity.GlobalSlot]
	PokerSites  ContentRepository[entity.PokerSite]
	CasinoCards ContentRepository[entity.CasinoCard]
	BestCasinos ContentRepository[entity.BestCasino]
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Posts:       NewPostRepository(db),
		Casinos:     NewCasinoRepository(db),
		Games:       NewGameRepository(db),
		GlobalSlots: NewGlobalSlotRepository(db),
		PokerSites:  NewPokerSiteRepository(db),
		CasinoCards: NewCasinoCardRepository(db),
		BestCasinos: NewBestCasinoRepository(db),
	}
}
