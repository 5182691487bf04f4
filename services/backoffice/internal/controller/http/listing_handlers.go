package http

import (
	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// The handlers below bind each content kind to its routes and carry the
// swag annotations for them.

type CasinoHandler struct {
	*ContentHandler[entity.Casino]
}

func NewCasinoHandler(useCase usecase.ContentUseCase[entity.Casino], log *logger.Logger) *CasinoHandler {
	return &CasinoHandler{
		ContentHandler: NewContentHandler(useCase, func() usecase.Form[entity.Casino] { return &CasinoForm{} }, log),
	}
}

// Create godoc
// @Summary      Create a casino
// @Tags         casinos
// @Accept       multipart/form-data
// @Produce      json
// @Param        label1        formData  string  true   "label1"
// @Param        label2        formData  string  true   "label2"
// @Param        country       formData  string  true   "country"
// @Param        website       formData  string  true   "website"
// @Param        ranking       formData  integer true   "ranking"
// @Param        payments[]    formData  string  false  "payments[]"
// @Param        logo          formData  file    true   "logo upload"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /create-casino [post]
func (h *CasinoHandler) Create(c *gin.Context) {
	h.ContentHandler.Create(c)
}

// List godoc
// @Summary      List casino records
// @Tags         casinos
// @Produce      json
// @Success      200  {array}   entity.Casino
// @Failure      500  {object}  MessageResponse
// @Router       /casino-list [get]
func (h *CasinoHandler) List(c *gin.Context) {
	h.ContentHandler.List(c)
}

// Update godoc
// @Summary      Update a casino
// @Tags         casinos
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Param        label1        formData  string  false  "label1"
// @Param        label2        formData  string  false  "label2"
// @Param        country       formData  string  false  "country"
// @Param        website       formData  string  false  "website"
// @Param        ranking       formData  integer false  "ranking"
// @Param        payments[]    formData  string  false  "payments[]"
// @Param        logo          formData  file    false  "logo upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-casino/{id} [post]
func (h *CasinoHandler) Update(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// UpdateByBody godoc
// @Summary      Update a casino
// @Description  Legacy route carrying the casino id in the body
// @Tags         casinos
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            formData  string  true   "Record ID"
// @Param        label1        formData  string  false  "label1"
// @Param        label2        formData  string  false  "label2"
// @Param        country       formData  string  false  "country"
// @Param        website       formData  string  false  "website"
// @Param        ranking       formData  integer false  "ranking"
// @Param        payments[]    formData  string  false  "payments[]"
// @Param        logo          formData  file    false  "logo upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-casino [post]
func (h *CasinoHandler) UpdateByBody(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// Delete godoc
// @Summary      Delete a casino and its asset
// @Tags         casinos
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /delete-casino/{id} [delete]
func (h *CasinoHandler) Delete(c *gin.Context) {
	h.ContentHandler.Delete(c)
}

type GameHandler struct {
	*ContentHandler[entity.Game]
}

func NewGameHandler(useCase usecase.ContentUseCase[entity.Game], log *logger.Logger) *GameHandler {
	return &GameHandler{
		ContentHandler: NewContentHandler(useCase, func() usecase.Form[entity.Game] { return &GameForm{} }, log),
	}
}

// Create godoc
// @Summary      Create a game
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Param        title         formData  string  true   "title"
// @Param        link          formData  string  true   "link"
// @Param        image         formData  file    true   "image upload"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /create-game [post]
func (h *GameHandler) Create(c *gin.Context) {
	h.ContentHandler.Create(c)
}

// List godoc
// @Summary      List game records
// @Tags         games
// @Produce      json
// @Success      200  {array}   entity.Game
// @Failure      500  {object}  MessageResponse
// @Router       /games [get]
func (h *GameHandler) List(c *gin.Context) {
	h.ContentHandler.List(c)
}

// Update godoc
// @Summary      Update a game
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Param        title         formData  string  false  "title"
// @Param        link          formData  string  false  "link"
// @Param        image         formData  file    false  "image upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-game/{id} [post]
func (h *GameHandler) Update(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// Delete godoc
// @Summary      Delete a game and its asset
// @Tags         games
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /delete-game/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	h.ContentHandler.Delete(c)
}

type GlobalSlotHandler struct {
	*ContentHandler[entity.GlobalSlot]
}

func NewGlobalSlotHandler(useCase usecase.ContentUseCase[entity.GlobalSlot], log *logger.Logger) *GlobalSlotHandler {
	return &GlobalSlotHandler{
		ContentHandler: NewContentHandler(useCase, func() usecase.Form[entity.GlobalSlot] { return &GlobalSlotForm{} }, log),
	}
}

// Create godoc
// @Summary      Create a global lucky slot
// @Tags         global-slots
// @Accept       multipart/form-data
// @Produce      json
// @Param        name          formData  string  true   "name"
// @Param        promo         formData  string  false  "promo"
// @Param        score         formData  number  false  "score"
// @Param        stars         formData  integer false  "stars"
// @Param        link          formData  string  false  "link"
// @Param        payments[]    formData  string  false  "payments[]"
// @Param        image         formData  file    false  "image upload"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /create-global-slot [post]
func (h *GlobalSlotHandler) Create(c *gin.Context) {
	h.ContentHandler.Create(c)
}

// List godoc
// @Summary      List global lucky slot records
// @Tags         global-slots
// @Produce      json
// @Success      200  {array}   entity.GlobalSlot
// @Failure      500  {object}  MessageResponse
// @Router       /global-slots [get]
func (h *GlobalSlotHandler) List(c *gin.Context) {
	h.ContentHandler.List(c)
}

// Update godoc
// @Summary      Update a global lucky slot
// @Tags         global-slots
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Param        name          formData  string  false  "name"
// @Param        promo         formData  string  false  "promo"
// @Param        score         formData  number  false  "score"
// @Param        stars         formData  integer false  "stars"
// @Param        link          formData  string  false  "link"
// @Param        payments[]    formData  string  false  "payments[]"
// @Param        image         formData  file    false  "image upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-global-slot/{id} [post]
func (h *GlobalSlotHandler) Update(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// Delete godoc
// @Summary      Delete a global lucky slot and its asset
// @Tags         global-slots
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /delete-global-slot/{id} [delete]
func (h *GlobalSlotHandler) Delete(c *gin.Context) {
	h.ContentHandler.Delete(c)
}

type PokerSiteHandler struct {
	*ContentHandler[entity.PokerSite]
}

func NewPokerSiteHandler(useCase usecase.ContentUseCase[entity.PokerSite], log *logger.Logger) *PokerSiteHandler {
	return &PokerSiteHandler{
		ContentHandler: NewContentHandler(useCase, func() usecase.Form[entity.PokerSite] { return &PokerSiteForm{} }, log),
	}
}

// Create godoc
// @Summary      Create a poker site
// @Tags         poker-sites
// @Accept       multipart/form-data
// @Produce      json
// @Param        name          formData  string  true   "name"
// @Param        description   formData  string  true   "description"
// @Param        rating        formData  number  true   "rating"
// @Param        link          formData  string  true   "link"
// @Param        logo          formData  file    true   "logo upload"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /create-poker-site [post]
func (h *PokerSiteHandler) Create(c *gin.Context) {
	h.ContentHandler.Create(c)
}

// List godoc
// @Summary      List poker site records
// @Tags         poker-sites
// @Produce      json
// @Success      200  {array}   entity.PokerSite
// @Failure      500  {object}  MessageResponse
// @Router       /poker-sites [get]
func (h *PokerSiteHandler) List(c *gin.Context) {
	h.ContentHandler.List(c)
}

// Update godoc
// @Summary      Update a poker site
// @Tags         poker-sites
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Param        name          formData  string  false  "name"
// @Param        description   formData  string  false  "description"
// @Param        rating        formData  number  false  "rating"
// @Param        link          formData  string  false  "link"
// @Param        logo          formData  file    false  "logo upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-poker-site/{id} [post]
func (h *PokerSiteHandler) Update(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// Delete godoc
// @Summary      Delete a poker site and its asset
// @Tags         poker-sites
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /delete-poker-site/{id} [delete]
func (h *PokerSiteHandler) Delete(c *gin.Context) {
	h.ContentHandler.Delete(c)
}

type CasinoCardHandler struct {
	*ContentHandler[entity.CasinoCard]
}

func NewCasinoCardHandler(useCase usecase.ContentUseCase[entity.CasinoCard], log *logger.Logger) *CasinoCardHandler {
	return &CasinoCardHandler{
		ContentHandler: NewContentHandler(useCase, func() usecase.Form[entity.CasinoCard] { return &CasinoCardForm{} }, log),
	}
}

// Create godoc
// @Summary      Create a casino card
// @Tags         casino-cards
// @Accept       multipart/form-data
// @Produce      json
// @Param        name          formData  string  true   "name"
// @Param        safety_index  formData  number  true   "safety_index"
// @Param        features      formData  string  true   "features"
// @Param        bonus         formData  string  true   "bonus"
// @Param        terms_link    formData  string  false  "terms_link"
// @Param        visit_link    formData  string  true   "visit_link"
// @Param        review_link   formData  string  true   "review_link"
// @Param        rank          formData  integer false  "rank"
// @Param        image         formData  file    true   "image upload"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /add-casino-card [post]
func (h *CasinoCardHandler) Create(c *gin.Context) {
	h.ContentHandler.Create(c)
}

// List godoc
// @Summary      List casino card records
// @Tags         casino-cards
// @Produce      json
// @Success      200  {array}   entity.CasinoCard
// @Failure      500  {object}  MessageResponse
// @Router       /casino-cards [get]
func (h *CasinoCardHandler) List(c *gin.Context) {
	h.ContentHandler.List(c)
}

// Update godoc
// @Summary      Update a casino card
// @Tags         casino-cards
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Param        name          formData  string  false  "name"
// @Param        safety_index  formData  number  false  "safety_index"
// @Param        features      formData  string  false  "features"
// @Param        bonus         formData  string  false  "bonus"
// @Param        terms_link    formData  string  false  "terms_link"
// @Param        visit_link    formData  string  false  "visit_link"
// @Param        review_link   formData  string  false  "review_link"
// @Param        rank          formData  integer false  "rank"
// @Param        image         formData  file    false  "image upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-casino-card/{id} [post]
func (h *CasinoCardHandler) Update(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// Delete godoc
// @Summary      Delete a casino card and its asset
// @Tags         casino-cards
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /delete-casino-card/{id} [delete]
func (h *CasinoCardHandler) Delete(c *gin.Context) {
	h.ContentHandler.Delete(c)
}

type BestCasinoHandler struct {
	*ContentHandler[entity.BestCasino]
}

func NewBestCasinoHandler(useCase usecase.ContentUseCase[entity.BestCasino], log *logger.Logger) *BestCasinoHandler {
	return &BestCasinoHandler{
		ContentHandler: NewContentHandler(useCase, func() usecase.Form[entity.BestCasino] { return &BestCasinoForm{} }, log),
	}
}

// Create godoc
// @Summary      Create a best casino
// @Tags         best-casinos
// @Accept       multipart/form-data
// @Produce      json
// @Param        promo         formData  string  true   "promo"
// @Param        code          formData  string  true   "code"
// @Param        min_deposit   formData  string  true   "min_deposit"
// @Param        wagering      formData  string  true   "wagering"
// @Param        rating        formData  number  true   "rating"
// @Param        link          formData  string  true   "link"
// @Param        logo          formData  file    true   "logo upload"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /best-casino [post]
func (h *BestCasinoHandler) Create(c *gin.Context) {
	h.ContentHandler.Create(c)
}

// List godoc
// @Summary      List best casino records
// @Tags         best-casinos
// @Produce      json
// @Success      200  {array}   entity.BestCasino
// @Failure      500  {object}  MessageResponse
// @Router       /best-casino [get]
func (h *BestCasinoHandler) List(c *gin.Context) {
	h.ContentHandler.List(c)
}

// Update godoc
// @Summary      Update a best casino
// @Tags         best-casinos
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Param        promo         formData  string  false  "promo"
// @Param        code          formData  string  false  "code"
// @Param        min_deposit   formData  string  false  "min_deposit"
// @Param        wagering      formData  string  false  "wagering"
// @Param        rating        formData  number  false  "rating"
// @Param        link          formData  string  false  "link"
// @Param        logo          formData  file    false  "logo upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-best-casino/{id} [post]
func (h *BestCasinoHandler) Update(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// Delete godoc
// @Summary      Delete a best casino and its asset
// @Tags         best-casinos
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /delete-best-casino/{id} [delete]
func (h *BestCasinoHandler) Delete(c *gin.Context) {
	h.ContentHandler.Delete(c)
}
