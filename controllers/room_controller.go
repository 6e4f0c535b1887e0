package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"safir-backend/models"
	"safir-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid room id.",
		})
		return 0, false
	}
	return uint(id), true
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/admin/rooms, GET /api/public/rooms)
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms serves the public browse page and the walk-in selector:
// only AVAILABLE rooms are offered.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAvailable()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := rc.RoomSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/admin/rooms)
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room

	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Room name is required.",
		})
		return
	}
	if room.BasePrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Base price cannot be negative.",
		})
		return
	}

	if err := rc.RoomSvc.Create(&room); err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PATCH /api/admin/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := rc.RoomSvc.Update(id, updateData); err != nil {
		log.Printf("❌ Update Error for Room %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room updated successfully",
	})
}

// ----------------------------------------------------
// 4. Toggle Maintenance (POST /api/admin/rooms/:id/toggle)
// ----------------------------------------------------

func (rc *RoomController) ToggleRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := rc.RoomSvc.ToggleMaintenance(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomBooked) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Booked rooms cannot be toggled manually.",
			})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Toggle failed"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 5. Delete Room (DELETE /api/admin/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	affected, err := rc.RoomSvc.Delete(id)
	if err != nil {
		log.Printf("❌ DB Error during deletion (ID: %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete room.",
		})
		return
	}

	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Room with ID %d not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room deleted successfully",
	})
}
