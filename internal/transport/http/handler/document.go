package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kumamoto2401-netizen/document-qa/internal/app"
	"github.com/kumamoto2401-netizen/document-qa/internal/model"
	"github.com/kumamoto2401-netizen/document-qa/internal/pkg/textextract"
	"github.com/kumamoto2401-netizen/document-qa/internal/repository"
	"github.com/kumamoto2401-netizen/document-qa/internal/transport/http/response"
)

const maxUploadSize = 10 << 20 // 10 MB

type DocumentHandler struct {
	sessionService *app.SessionService
}

func NewDocumentHandler(sessionService *app.SessionService) *DocumentHandler {
	return &DocumentHandler{sessionService: sessionService}
}

// documentMeta is the document without its content; transcripts and
// uploads can be large and the content is never needed by the list views.
type documentMeta struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Size      int    `json:"size"`
}

func toMeta(doc *model.Document) documentMeta {
	return documentMeta{
		ID:        doc.ID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Size:      len(doc.Content),
	}
}

// Upload accepts a multipart form with "file" and an optional "name"
// field. The decoded text becomes the new current document.
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "file too large")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "read upload failed")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		name = filepath.Base(header.Filename)
	}

	content, err := textextract.FromUpload(header.Filename, data)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "extract text failed: "+err.Error())
		return
	}

	doc, err := h.sessionService.Upload(c.Request.Context(), app.UploadInput{
		Name:    name,
		Content: content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "document has no text content")
		case errors.Is(err, repository.ErrStorageUnavailable):
			response.Error(c, http.StatusServiceUnavailable, response.CodeStorageUnavailable, "storage unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "upload failed")
		}
		return
	}

	response.OK(c, toMeta(doc))
}

// Current returns metadata for the current document.
func (h *DocumentHandler) Current(c *gin.Context) {
	doc, err := h.sessionService.CurrentDocument(c.Request.Context())
	if err != nil {
		if errors.Is(err, app.ErrNoDocument) {
			response.Error(c, http.StatusConflict, response.CodeNoDocument, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get current document failed")
		return
	}

	response.OK(c, toMeta(doc))
}
