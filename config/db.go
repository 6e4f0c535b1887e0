package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"safir-backend/models"

	driver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func jsonList(items ...string) datatypes.JSON {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(item)
		sb.WriteByte('"')
	}
	sb.WriteByte(']')
	return datatypes.JSON(sb.String())
}

// SeedDatabase loads the fixed initial rooms, vaults, the default admin and
// the default site content when their tables are empty.
func SeedDatabase() {
	// ---------------- Admin ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: envOrDefault("ADMIN_USERNAME", "admin@safir.local"),
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{
				Name:          "Royal Nile Suite 101",
				Type:          "Royal Suite",
				BasePrice:     4500,
				WeekendPrice:  5500,
				SeasonalPrice: 7000,
				Description:   "Direct Nile view with a private balcony and premium furnishings.",
				Features:      jsonList("Free WiFi", "Air conditioning", "65\" TV", "Mini bar", "Coffee machine"),
				Capacity:      2,
				ExtraBedCost:  800,
				Images:        jsonList("https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=1000"),
				Status:        models.RoomAvailable,
			},
			{
				Name:          "Deluxe Family Room 205",
				Type:          "Family Room",
				BasePrice:     2800,
				WeekendPrice:  3200,
				SeasonalPrice: 3800,
				Description:   "Spacious family room with two king beds.",
				Features:      jsonList("Free WiFi", "Air conditioning", "Seating area", "Kettle"),
				Capacity:      4,
				ExtraBedCost:  500,
				Images:        jsonList("https://images.unsplash.com/photo-1566665797739-1674de7a421a?q=80&w=1000"),
				Status:        models.RoomAvailable,
			},
			{
				Name:          "Standard Room 301",
				Type:          "Standard",
				BasePrice:     1500,
				WeekendPrice:  1800,
				SeasonalPrice: 2200,
				Description:   "Practical and comfortable room for business travellers.",
				Features:      jsonList("WiFi", "Air conditioning", "Work desk"),
				Capacity:      2,
				ExtraBedCost:  400,
				Images:        jsonList("https://images.unsplash.com/photo-1590490360182-c33d57733427?q=80&w=1000"),
				Status:        models.RoomAvailable,
			},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Vaults ----------------
	var vaultCount int64
	DB.Model(&models.Vault{}).Count(&vaultCount)
	if vaultCount == 0 {
		vaults := []models.Vault{
			{Code: "MAIN", Name: "Main Vault", Balance: 150000},
			{Code: "RECEPTION", Name: "Reception Vault", Balance: 15000},
			{Code: "CAFE", Name: "Cafe Vault", Balance: 5000},
		}
		if err := DB.Create(&vaults).Error; err != nil {
			log.Printf("warning: failed to seed vaults: %v", err)
		} else {
			log.Println("Vaults seeded")
		}
	}

	// ---------------- Site settings ----------------
	var settingCount int64
	DB.Model(&models.SiteSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.SiteSetting{
			BannerTitle:          "Live luxury in every detail",
			BannerSubtitle:       "An exceptional stay combining heritage and modern comfort.",
			ThankYouMessage:      "Thank you for choosing Safir Hotel. We will contact you shortly to confirm arrival details.",
			WhatsappConfirmation: true,
			ScarcityBadge:        false,
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed site settings: %v", err)
		} else {
			log.Println("Site settings seeded")
		}
	}
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := driver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	port := u.Port()
	if port == "" {
		port = "3306"
	}
	cfg.Addr = u.Hostname() + ":" + port
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	cfg := driver.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	cfg.DBName = envOrDefault("DB_NAME", "safir_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

// Migrate runs AutoMigrate in parent->child order on the given handle.
// Shared with the test harness, which opens sqlite instead of MySQL.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.SiteSetting{},
		&models.Room{},
		&models.Reservation{},
		&models.ReservationRoom{},
		&models.Vault{},
		&models.Transaction{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
