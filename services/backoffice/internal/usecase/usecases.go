package usecase

import (
	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/repo/persistent"
)

// UseCases groups every use case of the service.
type UseCases struct {
	Auth        AuthUseCase
	Posts       PostUseCase
	Casinos     ContentUseCase[entity.Casino]
	Games       ContentUseCase[entity.Game]
	GlobalSlots ContentUseCase[entity.GlobalSlot]
	PokerSites  ContentUseCase[entity.PokerSite]
	CasinoCards ContentUseCase[entity.CasinoCard]
	BestCasinos ContentUseCase[entity.BestCasino]
}

func NewUseCases(repos *persistent.Repositories, assets AssetStore, cache ListCache, bcryptCost int, log *logger.Logger) *UseCases {
	return &UseCases{
		Auth:        NewAuthUseCase(repos.Users, bcryptCost, log),
		Posts:       NewPostUseCase(repos.Posts, assets, cache, log),
		Casinos:     NewContentUseCase[entity.Casino](CasinoSchema, repos.Casinos, assets, cache, log),
		Games:       NewContentUseCase[entity.Game](GameSchema, repos.Games, assets, cache, log),
		GlobalSlots: NewContentUseCase[entity.GlobalSlot](GlobalSlotSchema, repos.GlobalSlots, assets, cache, log),
		PokerSites:  NewContentUseCase[entity.PokerSite](PokerSiteSchema, repos.PokerSites, assets, cache, log),
		CasinoCards: NewContentUseCase[entity.CasinoCard](CasinoCardSchema, repos.CasinoCards, assets, cache, log),
		BestCasinos: NewContentUseCase[entity.BestCasino](BestCasinoSchema, repos.BestCasinos, assets, cache, log),
	}
}
