package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin/services"
	"hotel-admin/utils"
)

// listPayload is returned by every list endpoint. Total is the size of the unfiltered
// collection so the caller can tell an empty table from an over-restrictive filter.
type listPayload[T any] struct {
	Items    []T  `json:"items"`
	Count    int  `json:"count"`
	Total    int  `json:"total"`
	Filtered bool `json:"filtered"`
}

func newListPayload[T any](items []T, total int, filtered bool) listPayload[T] {
	return listPayload[T]{Items: items, Count: len(items), Total: total, Filtered: filtered}
}

// parseUintParam reads a positive numeric path parameter and answers 400 when it is not one.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps a service error to a response. Database failures carry the driver
// message unmodified.
func respondServiceError(c *gin.Context, what string, err error) {
	switch {
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidRoomOccupant), errors.Is(err, services.ErrUnknownRoom):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, what+" not found")
	case services.IsDuplicate(err):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		var re *services.RemoteError
		if errors.As(err, &re) {
			log.Printf("❌ DB ERROR (%s): %v", re.Op, re.Err)
		} else {
			log.Printf("❌ %s: %v", what, err)
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

func respondBindError(c *gin.Context, err error) {
	log.Printf("❌ JSON BINDING ERROR (400): %v", err)
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}
