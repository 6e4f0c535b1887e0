package services

import (
	"errors"
	"fmt"

	"safir-backend/models"

	"gorm.io/gorm"
)

// ErrRoomBooked is returned when a maintenance toggle hits a BOOKED room.
// Booked rooms are released only through the reservation lifecycle.
var ErrRoomBooked = errors.New("room_booked")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("id ASC").Find(&rooms).Error
	return rooms, err
}

// GetAvailable lists the rooms offered to the public site and the walk-in
// room selector.
func (s *RoomService) GetAvailable() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("status = ?", models.RoomAvailable).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, id).Error
	return room, err
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	return s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error
}

func (s *RoomService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.Room{}, id)
	return result.RowsAffected, result.Error
}

// ToggleMaintenance flips a room between AVAILABLE and MAINTENANCE. A BOOKED
// room is rejected unchanged.
func (s *RoomService) ToggleMaintenance(id uint) (models.Room, error) {
	var room models.Room

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			return err
		}

		var next string
		switch room.Status {
		case models.RoomAvailable:
			next = models.RoomMaintenance
		case models.RoomMaintenance:
			next = models.RoomAvailable
		default:
			return ErrRoomBooked
		}

		if err := tx.Model(&room).
			Updates(map[string]interface{}{"status": next}).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", id, err)
		}
		room.Status = next
		return nil
	})

	return room, err
}
