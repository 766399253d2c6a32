package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

type InventoryController struct {
	InventorySvc *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{InventorySvc: svc}
}

type createInventoryRequest struct {
	Name      string  `json:"name" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	Stock     int     `json:"stock" binding:"gte=0"`
}

type updateInventoryRequest struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,gte=0"`
	Stock     *int     `json:"stock" binding:"omitempty,gte=0"`
}

func (r updateInventoryRequest) patch() services.InventoryPatch {
	return services.InventoryPatch{Name: r.Name, Type: r.Type, UnitPrice: r.UnitPrice, Stock: r.Stock}
}

// GetInventory (GET /api/inventory?search=&type=&stock=low|normal|high)
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	var filter services.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	items, err := ctrl.InventorySvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "inventory", err)
		return
	}

	visible := services.FilterInventory(items, filter)
	utils.JSONSuccess(c, http.StatusOK, newListPayload(visible, len(items), filter.Active()))
}

func (ctrl *InventoryController) GetInventoryStats(c *gin.Context) {
	items, err := ctrl.InventorySvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "inventory", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.InventoryStatsOf(items))
}

func (ctrl *InventoryController) GetInventoryItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	item, err := ctrl.InventorySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "inventory item", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (ctrl *InventoryController) CreateInventoryItem(c *gin.Context) {
	var req createInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item := models.InventoryItem{
		Name:      strings.TrimSpace(req.Name),
		Type:      strings.TrimSpace(req.Type),
		UnitPrice: req.UnitPrice,
		Stock:     req.Stock,
	}
	if err := ctrl.InventorySvc.Create(c.Request.Context(), &item); err != nil {
		respondServiceError(c, "inventory item", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (ctrl *InventoryController) UpdateInventoryItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload updateInventoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := ctrl.InventorySvc.Update(c.Request.Context(), id, payload.patch())
	if err != nil {
		respondServiceError(c, "inventory item", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (ctrl *InventoryController) DeleteInventoryItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.InventorySvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, "inventory item", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
