package services

import (
	"path/filepath"
	"testing"

	"safir-backend/config"
	"safir-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a throwaway sqlite database with the production schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "safir_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedRoom(t *testing.T, db *gorm.DB, name string, basePrice, extraBedCost float64) models.Room {
	t.Helper()

	room := models.Room{
		Name:         name,
		Type:         "SUITE",
		BasePrice:    basePrice,
		ExtraBedCost: extraBedCost,
		Capacity:     2,
		Status:       models.RoomAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room %q: %v", name, err)
	}
	return room
}

func seedVault(t *testing.T, db *gorm.DB, code, name string, balance float64) models.Vault {
	t.Helper()

	vault := models.Vault{Code: code, Name: name, Balance: balance}
	if err := db.Create(&vault).Error; err != nil {
		t.Fatalf("failed to seed vault %q: %v", code, err)
	}
	return vault
}

func roomStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()

	var room models.Room
	if err := db.First(&room, id).Error; err != nil {
		t.Fatalf("failed to reload room %d: %v", id, err)
	}
	return room.Status
}
