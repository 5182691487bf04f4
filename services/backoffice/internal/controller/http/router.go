package http

import (
	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth        *AuthHandler
	Posts       *PostHandler
	Casinos     *CasinoHandler
	Games       *GameHandler
	GlobalSlots *GlobalSlotHandler
	PokerSites  *PokerSiteHandler
	CasinoCards *CasinoCardHandler
	BestCasinos *BestCasinoHandler
}

func NewHandlers(uc *usecase.UseCases, log *logger.Logger) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(uc.Auth, log),
		Posts:       NewPostHandler(uc.Posts, log),
		Casinos:     NewCasinoHandler(uc.Casinos, log),
		Games:       NewGameHandler(uc.Games, log),
		GlobalSlots: NewGlobalSlotHandler(uc.GlobalSlots, log),
		PokerSites:  NewPokerSiteHandler(uc.PokerSites, log),
		CasinoCards: NewCasinoCardHandler(uc.CasinoCards, log),
		BestCasinos: NewBestCasinoHandler(uc.BestCasinos, log),
	}
}

// Routes names the four endpoints of one content kind. Update and Delete
// get an ":id" segment appended.
type Routes struct {
	Create string
	List   string
	Update string
	Delete string
}

type crudHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func Register(api *gin.RouterGroup, h crudHandler, routes Routes) {
	api.POST(routes.Create, h.Create)
	api.GET(routes.List, h.List)
	api.POST(routes.Update+"/:id", h.Update)
	api.DELETE(routes.Delete+"/:id", h.Delete)
}

func RegisterRoutes(api *gin.RouterGroup, h *Handlers) {
	api.POST("/signup", h.Auth.Signup)
	api.POST("/login", h.Auth.Login)

	Register(api, h.Posts, Routes{Create: "/create-post", List: "/posts", Update: "/update-post", Delete: "/delete-post"})
	api.GET("/posts/:alias", h.Posts.ListByAlias)

	Register(api, h.Casinos, Routes{Create: "/create-casino", List: "/casino-list", Update: "/update-casino", Delete: "/delete-casino"})
	api.POST("/update-casino", h.Casinos.UpdateByBody)

	Register(api, h.Games, Routes{Create: "/create-game", List: "/games", Update: "/update-game", Delete: "/delete-game"})
	Register(api, h.GlobalSlots, Routes{Create: "/create-global-slot", List: "/global-slots", Update: "/update-global-slot", Delete: "/delete-global-slot"})
	Register(api, h.PokerSites, Routes{Create: "/create-poker-site", List: "/poker-sites", Update: "/update-poker-site", Delete: "/delete-poker-site"})
	Register(api, h.CasinoCards, Routes{Create: "/add-casino-card", List: "/casino-cards", Update: "/update-casino-card", Delete: "/delete-casino-card"})
	Register(api, h.BestCasinos, Routes{Create: "/best-casino", List: "/best-casino", Update: "/update-best-casino", Delete: "/delete-best-casino"})
}
