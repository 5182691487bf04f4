package http

import (
	"mime/multipart"
	"net/http"
	"strings"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// bodyIdentified is implemented by forms that may carry the record id in
// the request body.
type bodyIdentified interface {
	BodyID() string
}

// ContentHandler serves create, list, update and delete for one content
// kind.
type ContentHandler[E any] struct {
	useCase usecase.ContentUseCase[E]
	newForm func() usecase.Form[E]
	logger  *logger.Logger
}

func NewContentHandler[E any](useCase usecase.ContentUseCase[E], newForm func() usecase.Form[E], log *logger.Logger) *ContentHandler[E] {
	return &ContentHandler[E]{
		useCase: useCase,
		newForm: newForm,
		logger:  log,
	}
}

func (h *ContentHandler[E]) label() string {
	return h.useCase.Schema().Label
}

func (h *ContentHandler[E]) bind(c *gin.Context) (usecase.Form[E], *multipart.FileHeader, bool) {
	form := h.newForm()
	if err := c.ShouldBind(form); err != nil {
		badRequest(c, "Invalid request body.")
		return nil, nil, false
	}

	asset, err := c.FormFile(h.useCase.Schema().AssetField)
	if err != nil {
		asset = nil
	}
	return form, asset, true
}

func (h *ContentHandler[E]) Create(c *gin.Context) {
	form, asset, ok := h.bind(c)
	if !ok {
		return
	}

	record, err := h.useCase.Create(c.Request.Context(), form, asset)
	if err != nil {
		respondError(c, h.logger, err, h.label()+" not found.", "Server error while creating "+strings.ToLower(h.label())+".")
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{
		Message: h.label() + " created successfully!",
		ID:      recordID(record),
	})
}

func (h *ContentHandler[E]) List(c *gin.Context) {
	records, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "", "Error fetching "+h.useCase.Schema().Kind+".")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ContentHandler[E]) Update(c *gin.Context) {
	form, asset, ok := h.bind(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		if identified, ok := form.(bodyIdentified); ok {
			id = identified.BodyID()
		}
	}
	if id == "" {
		badRequest(c, h.label()+" ID is required for updating.")
		return
	}

	if _, err := h.useCase.Update(c.Request.Context(), id, form, asset); err != nil {
		respondError(c, h.logger, err, h.label()+" not found.", "Server error while updating "+strings.ToLower(h.label())+".")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: h.label() + " updated successfully!"})
}

func (h *ContentHandler[E]) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		badRequest(c, h.label()+" ID is required.")
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, h.label()+" not found.", "Server error while deleting "+strings.ToLower(h.label())+".")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: h.label() + " deleted successfully."})
}

func recordID(record any) string {
	if r, ok := record.(interface{ RecordID() string }); ok {
		return r.RecordID()
	}
	return ""
}
