package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"safir-backend/config"
	"safir-backend/controllers"
	"safir-backend/routes"
	"safir-backend/services"
	"safir-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue admin sessions.")
	}
	if os.Getenv("ADVISORY_API_KEY") == "" {
		log.Println("⚠️  ADVISORY_API_KEY not set; AI advisory endpoints will serve fallback text.")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db)
	financeService := services.NewFinanceService(db)
	reportService := services.NewReportService(db)
	advisoryService := services.NewAdvisoryService()

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(reservationService, roomService, advisoryService)
	reservationController := controllers.NewReservationController(reservationService)
	financeController := controllers.NewFinanceController(financeService)
	reportController := controllers.NewReportController(reportService, roomService, advisoryService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		bookingController,
		reservationController,
		financeController,
		reportController,
	)

	// Port from env (prefer), fallback to 8080
	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
