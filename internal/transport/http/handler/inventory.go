package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kumamoto2401-netizen/document-qa/internal/app"
	"github.com/kumamoto2401-netizen/document-qa/internal/transport/http/response"
)

type InventoryHandler struct {
	inventoryService *app.InventoryService
}

func NewInventoryHandler(inventoryService *app.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.ListItems()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list inventory failed")
		return
	}
	response.OK(c, items)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req app.InventoryItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	item, err := h.inventoryService.CreateItem(req)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create item failed")
		}
		return
	}

	response.OK(c, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid item id")
		return
	}

	var req app.InventoryItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	item, err := h.inventoryService.UpdateItem(id, req)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrItemNotFound):
			response.Error(c, http.StatusNotFound, response.CodeItemNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update item failed")
		}
		return
	}

	response.OK(c, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid item id")
		return
	}

	if err := h.inventoryService.DeleteItem(id); err != nil {
		switch {
		case errors.Is(err, app.ErrItemNotFound):
			response.Error(c, http.StatusNotFound, response.CodeItemNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete item failed")
		}
		return
	}

	response.OK(c, gin.H{"deleted_item_id": id})
}

func (h *InventoryHandler) ReorderAlerts(c *gin.Context) {
	items, err := h.inventoryService.ReorderAlerts()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list reorder alerts failed")
		return
	}
	response.OK(c, items)
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	s := c.Param(key)
	u, err := strconv.ParseUint(s, 10, 64)
	return uint(u), err
}
