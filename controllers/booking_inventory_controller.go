package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

// BookingInventoryController manages the items attached to a booking
// (/api/bookings/:id/inventory).
type BookingInventoryController struct {
	LinkSvc    *services.BookingInventoryService
	BookingSvc *services.BookingService
}

func NewBookingInventoryController(links *services.BookingInventoryService, bookings *services.BookingService) *BookingInventoryController {
	return &BookingInventoryController{LinkSvc: links, BookingSvc: bookings}
}

type attachInventoryRequest struct {
	InventoryID uint `json:"inventory_id" binding:"required"`
	Quantity    int  `json:"quantity" binding:"gte=0"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

// bookingParam resolves :id and makes sure the booking exists.
func (ctrl *BookingInventoryController) bookingParam(c *gin.Context) (uint, bool) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return 0, false
	}
	if _, err := ctrl.BookingSvc.GetByID(c.Request.Context(), id); err != nil {
		respondServiceError(c, "booking", err)
		return 0, false
	}
	return id, true
}

func (ctrl *BookingInventoryController) ListItems(c *gin.Context) {
	bookingID, ok := ctrl.bookingParam(c)
	if !ok {
		return
	}
	links, err := ctrl.LinkSvc.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, "booking inventory", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, links)
}

func (ctrl *BookingInventoryController) AttachItem(c *gin.Context) {
	bookingID, ok := ctrl.bookingParam(c)
	if !ok {
		return
	}

	var req attachInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	link := models.BookingInventory{BookingID: bookingID, InventoryID: req.InventoryID, Quantity: req.Quantity}
	if err := ctrl.LinkSvc.Create(c.Request.Context(), &link); err != nil {
		respondServiceError(c, "booking inventory", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, link)
}

func (ctrl *BookingInventoryController) UpdateItem(c *gin.Context) {
	bookingID, ok := ctrl.bookingParam(c)
	if !ok {
		return
	}
	inventoryID, ok := parseUintParam(c, "inventory_id")
	if !ok {
		return
	}

	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	link, err := ctrl.LinkSvc.UpdateQuantity(c.Request.Context(), bookingID, inventoryID, req.Quantity)
	if err != nil {
		respondServiceError(c, "booking inventory", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, link)
}

func (ctrl *BookingInventoryController) DetachItem(c *gin.Context) {
	bookingID, ok := ctrl.bookingParam(c)
	if !ok {
		return
	}
	inventoryID, ok := parseUintParam(c, "inventory_id")
	if !ok {
		return
	}

	if err := ctrl.LinkSvc.Delete(c.Request.Context(), bookingID, inventoryID); err != nil {
		respondServiceError(c, "booking inventory", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking_id": bookingID, "inventory_id": inventoryID})
}
