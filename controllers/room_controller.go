package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type createRoomRequest struct {
	RoomNumber string         `json:"room_number" binding:"required"`
	Type       string         `json:"type" binding:"required"`
	Capacity   int            `json:"capacity" binding:"required,gte=1"`
	Price      float64        `json:"price" binding:"required,gt=0"`
	State      string         `json:"state" binding:"required,roomstate"`
	CustomerID uint           `json:"customer_id"`
	Amenities  datatypes.JSON `json:"amenities"`
}

type updateRoomRequest struct {
	RoomNumber *string         `json:"room_number"`
	Type       *string         `json:"type"`
	Capacity   *int            `json:"capacity" binding:"omitempty,gte=1"`
	Price      *float64        `json:"price" binding:"omitempty,gte=0"`
	State      *string         `json:"state" binding:"omitempty,roomstate"`
	CustomerID *uint           `json:"customer_id"`
	Amenities  *datatypes.JSON `json:"amenities"`
}

func (r updateRoomRequest) patch() services.RoomPatch {
	return services.RoomPatch{
		RoomNumber: r.RoomNumber,
		Type:       r.Type,
		Capacity:   r.Capacity,
		Price:      r.Price,
		State:      r.State,
		CustomerID: r.CustomerID,
		Amenities:  r.Amenities,
	}
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms?search=&type=&state=)
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var filter services.RoomFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	rooms, err := ctrl.RoomSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "rooms", err)
		return
	}

	visible := services.FilterRooms(rooms, filter)
	utils.JSONSuccess(c, http.StatusOK, newListPayload(visible, len(rooms), filter.Active()))
}

func (ctrl *RoomController) GetRoomStats(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "rooms", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.RoomStatsOf(rooms))
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "room", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if strings.TrimSpace(req.RoomNumber) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room Number is required.")
		return
	}

	room := models.Room{
		RoomNumber: req.RoomNumber,
		Type:       strings.TrimSpace(req.Type),
		Capacity:   req.Capacity,
		Price:      req.Price,
		State:      req.State,
		CustomerID: req.CustomerID,
		Amenities:  req.Amenities,
	}

	if err := ctrl.RoomSvc.Create(c.Request.Context(), &room); err != nil {
		if services.IsDuplicate(err) {
			log.Printf("❌ Duplicate Room Number: %s", room.RoomNumber)
			utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Room Number '%s' already exists.", room.RoomNumber))
			return
		}
		respondServiceError(c, "room", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PUT|PATCH /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload updateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.RoomSvc.Update(c.Request.Context(), id, payload.patch())
	if err != nil {
		log.Printf("❌ Update Error for Room %d: %v", id, err)
		respondServiceError(c, "room", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, "room", err)
		return
	}

	log.Printf("✅ Room ID %d deleted.", id)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
