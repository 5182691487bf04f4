package http

import (
	"net/http"
	"strings"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// categoryAliases maps the public list routes onto stored categories.
var categoryAliases = map[string]string{
	"casino-news":   entity.CategoryCasinoBettingNews,
	"featured-news": entity.CategoryFeaturedNews,
}

type PostHandler struct {
	*ContentHandler[entity.Post]
	postUseCase usecase.PostUseCase
}

func NewPostHandler(postUseCase usecase.PostUseCase, log *logger.Logger) *PostHandler {
	return &PostHandler{
		ContentHandler: NewContentHandler[entity.Post](postUseCase, func() usecase.Form[entity.Post] { return &PostForm{} }, log),
		postUseCase:    postUseCase,
	}
}

// Create godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        title         formData  string  true   "title"
// @Param        content       formData  string  true   "content"
// @Param        link          formData  string  false  "link"
// @Param        category      formData  string  false  "category"
// @Param        image         formData  file    true   "image upload"
// @Success      201  {object}  CreatedResponse
// @Failure      400  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /create-post [post]
func (h *PostHandler) Create(c *gin.Context) {
	h.ContentHandler.Create(c)
}

// List godoc
// @Summary      List post records
// @Tags         posts
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   entity.Post
// @Failure      500       {object}  MessageResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		h.ContentHandler.List(c)
		return
	}
	h.listCategory(c, category)
}

// ListByAlias godoc
// @Summary      List posts of a fixed category
// @Tags         posts
// @Produce      json
// @Param        alias  path      string  true  "casino-news or featured-news"
// @Success      200    {array}   entity.Post
// @Failure      404    {object}  MessageResponse
// @Failure      500    {object}  MessageResponse
// @Router       /posts/{alias} [get]
func (h *PostHandler) ListByAlias(c *gin.Context) {
	category, ok := categoryAliases[c.Param("alias")]
	if !ok {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Unknown post category."})
		return
	}
	h.listCategory(c, category)
}

// Update godoc
// @Summary      Update a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Param        title         formData  string  false  "title"
// @Param        content       formData  string  false  "content"
// @Param        link          formData  string  false  "link"
// @Param        category      formData  string  false  "category"
// @Param        image         formData  file    false  "image upload"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /update-post/{id} [post]
func (h *PostHandler) Update(c *gin.Context) {
	h.ContentHandler.Update(c)
}

// Delete godoc
// @Summary      Delete a post and its asset
// @Tags         posts
// @Produce      json
// @Param        id            path      string  true   "Record ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /delete-post/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	h.ContentHandler.Delete(c)
}

func (h *PostHandler) listCategory(c *gin.Context, category string) {
	posts, err := h.postUseCase.ListByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, h.logger, err, "", "Error fetching posts.")
		return
	}
	c.JSON(http.StatusOK, posts)
}
