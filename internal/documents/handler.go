package documents

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legaldecode-backend/internal/shared/server/middleware"
	"legaldecode-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.DELETE("/documents/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "User not identified", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "No file uploaded", nil)
		return
	}

	language := c.PostForm("language")
	if language == "" {
		language = "English"
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}

	doc, err := h.Svc.Decode(c.Request.Context(), DecodeRequest{
		UserID:   userID,
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Language: language,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		case errors.Is(err, ErrUnauthorized):
			respond.Error(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "User not identified", nil)
		case errors.Is(err, ErrBadExtraction):
			respond.Error(c, http.StatusInternalServerError, ErrorCodeParse, "Failed to process document", nil)
		case errors.Is(err, ErrGateway):
			respond.Error(c, http.StatusInternalServerError, ErrorCodeGateway, "Failed to process document", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "Failed to process document", nil)
		}
		return
	}

	c.Set("documentId", doc.ID)
	respond.Created(c, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "User not identified", nil)
		return
	}

	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "failed to list documents", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponseList(docs))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "User not identified", nil)
		return
	}

	id, ok := parseID(c)
	if !ok {
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "Not found", nil)
		return
	}

	doc, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.Set("documentId", doc.ID)
	respond.JSON(c, http.StatusOK, toResponse(doc))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "User not identified", nil)
		return
	}

	id, ok := parseID(c)
	if !ok {
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "Not found", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		respondFetchError(c, err)
		return
	}

	c.Set("documentId", id)
	c.Status(http.StatusNoContent)
}

// respondFetchError maps get/delete failures. Ownership mismatches surface as
// unauthorized, distinct from not-found, matching the upstream contract.
func respondFetchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "Not found", nil)
	case errors.Is(err, ErrNotOwner):
		respond.Error(c, http.StatusUnauthorized, ErrorCodeUnauthorized, "Unauthorized", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "internal error", nil)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
