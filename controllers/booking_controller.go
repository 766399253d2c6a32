// controllers/booking_controller.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// Dates accept YYYY-MM-DD or RFC3339.
type CreateBookingRequest struct {
	CustomerID uint    `json:"customer_id" binding:"required"`
	RoomID     uint    `json:"room_id" binding:"required"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	TotalPrice float64 `json:"total_price" binding:"gte=0"`
	State      string  `json:"state" binding:"omitempty,bookingstate"`
}

type UpdateBookingRequest struct {
	CustomerID *uint    `json:"customer_id"`
	RoomID     *uint    `json:"room_id"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
	TotalPrice *float64 `json:"total_price" binding:"omitempty,gte=0"`
	State      *string  `json:"state" binding:"omitempty,bookingstate"`
}

type bookingListQuery struct {
	Search string `form:"search"`
	State  string `form:"state"`
	From   string `form:"from"`
	To     string `form:"to"`
}

type stayQuery struct {
	RoomID    uint   `form:"room_id" binding:"required"`
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	ExcludeID uint   `form:"exclude_id"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(raw string, parse func(string) (time.Time, error)) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (q stayQuery) parse() (time.Time, time.Time, error) {
	start, err := services.ParseDate(q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := services.ParseDate(q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ---------------------------
// CRUD: Bookings
// ---------------------------

// GetBookings (GET /api/bookings?search=&state=&from=&to=)
// A plain-date "to" includes the whole day.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	var q bookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	from, err := parseOptionalDate(q.From, services.ParseDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseOptionalDate(q.To, services.ParseRangeEnd)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	filter := services.BookingFilter{Search: q.Search, State: q.State, From: from, To: to}

	bookings, warnings, err := ctrl.BookingSvc.ListWithRelations(c.Request.Context())
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		respondServiceError(c, "bookings", err)
		return
	}

	visible := services.FilterBookings(bookings, filter)
	utils.JSONSuccessWithWarnings(c, http.StatusOK, newListPayload(visible, len(bookings), filter.Active()), warnings)
}

func (ctrl *BookingController) GetBookingStats(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "bookings", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BookingStatsOf(bookings))
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	booking, warnings, err := ctrl.BookingSvc.GetWithRelations(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "booking", err)
		return
	}
	utils.JSONSuccessWithWarnings(c, http.StatusOK, booking, warnings)
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	start, err := services.ParseDate(payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := services.ParseDate(payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking := models.Booking{
		CustomerID: payload.CustomerID,
		RoomID:     payload.RoomID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: payload.TotalPrice,
		State:      payload.State,
	}

	warnings, err := ctrl.BookingSvc.Create(c.Request.Context(), &booking)
	if err != nil {
		log.Printf("Service error creating booking: %v", err)
		respondServiceError(c, "booking", err)
		return
	}

	utils.JSONSuccessWithWarnings(c, http.StatusCreated, booking, warnings)
}

// UpdateBooking (PUT|PATCH /api/bookings/:id)
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	patch := services.BookingPatch{
		CustomerID: payload.CustomerID,
		RoomID:     payload.RoomID,
		TotalPrice: payload.TotalPrice,
		State:      payload.State,
	}
	if payload.StartDate != nil {
		t, err := services.ParseDate(*payload.StartDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		patch.StartDate = &t
	}
	if payload.EndDate != nil {
		t, err := services.ParseDate(*payload.EndDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		patch.EndDate = &t
	}

	booking, warnings, err := ctrl.BookingSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("UpdateBooking error for booking %d: %v", id, err)
		respondServiceError(c, "booking", err)
		return
	}
	utils.JSONSuccessWithWarnings(c, http.StatusOK, booking, warnings)
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, "booking", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}

// ---------------------------
// Availability / Pricing
// ---------------------------

// CheckAvailability (GET /api/bookings/availability?room_id=&start_date=&end_date=&exclude_id=)
func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	var q stayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	start, end, err := q.parse()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	end = services.ClampEnd(start, end)

	var exclude *uint
	if q.ExcludeID != 0 {
		exclude = &q.ExcludeID
	}

	available, warnings, err := ctrl.BookingSvc.CheckAvailability(c.Request.Context(), q.RoomID, start, end, exclude)
	if err != nil {
		respondServiceError(c, "availability", err)
		return
	}
	utils.JSONSuccessWithWarnings(c, http.StatusOK, gin.H{
		"room_id":    q.RoomID,
		"start_date": start.Format(services.DateLayout),
		"end_date":   end.Format(services.DateLayout),
		"available":  available,
	}, warnings)
}

// GetQuote (GET /api/bookings/quote?room_id=&start_date=&end_date=)
func (ctrl *BookingController) GetQuote(c *gin.Context) {
	var q stayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	start, end, err := q.parse()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := ctrl.BookingSvc.Quote(c.Request.Context(), q.RoomID, start, end)
	if err != nil {
		respondServiceError(c, "room", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}
