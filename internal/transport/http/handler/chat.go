package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kumamoto2401-netizen/document-qa/internal/app"
	"github.com/kumamoto2401-netizen/document-qa/internal/repository"
	"github.com/kumamoto2401-netizen/document-qa/internal/transport/http/response"
)

type ChatHandler struct {
	sessionService *app.SessionService
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

func NewChatHandler(sessionService *app.SessionService) *ChatHandler {
	return &ChatHandler{sessionService: sessionService}
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.sessionService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmptyQuestion), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrNoDocument):
			response.Error(c, http.StatusConflict, response.CodeNoDocument, err.Error())
		case errors.Is(err, app.ErrGateway):
			response.Error(c, http.StatusBadGateway, response.CodeGatewayFailed, err.Error())
		case errors.Is(err, repository.ErrUnknownDocument):
			response.Error(c, http.StatusNotFound, response.CodeDocumentNotFound, err.Error())
		case errors.Is(err, repository.ErrStorageUnavailable):
			response.Error(c, http.StatusServiceUnavailable, response.CodeStorageUnavailable, "storage unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "ask failed")
		}
		return
	}

	response.OK(c, result)
}

func (h *ChatHandler) Transcript(c *gin.Context) {
	view, err := h.sessionService.Transcript(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoDocument):
			response.Error(c, http.StatusConflict, response.CodeNoDocument, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get transcript failed")
		}
		return
	}

	response.OK(c, view)
}
