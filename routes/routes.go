package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"safir-backend/controllers"
	"safir-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public booking surface and the JWT-guarded admin
// console onto one engine.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	resc *controllers.ReservationController,
	fc *controllers.FinanceController,
	repc *controllers.ReportController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		// Public booking surface: browse, quote, book.
		public := api.Group("/public")
		{
			public.GET("/rooms", rc.GetAvailableRooms)
			public.GET("/rooms/:id", rc.GetRoom)
			public.POST("/quote", bc.QuoteStay)
			public.POST("/bookings", bc.CreateBooking)
			public.GET("/settings", controllers.GetSiteSettings)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth())
		{
			rooms := admin.Group("/rooms")
			{
				rooms.GET("", rc.GetRooms)
				rooms.GET("/:id", rc.GetRoom)
				rooms.POST("", rc.CreateRoom)
				rooms.PATCH("/:id", rc.UpdateRoom)
				rooms.PUT("/:id", rc.UpdateRoom)
				rooms.POST("/:id/toggle", rc.ToggleRoomStatus)
				rooms.DELETE("/:id", rc.DeleteRoom)
			}

			reservations := admin.Group("/reservations")
			{
				reservations.GET("", resc.GetReservations)
				reservations.POST("", resc.CreateWalkIn)
				reservations.GET("/:ref", resc.GetReservation)
				reservations.POST("/:ref/confirm", resc.ConfirmReservation)
				reservations.POST("/:ref/cancel", resc.CancelReservation)
				reservations.POST("/:ref/complete", resc.CompleteReservation)
			}

			finance := admin.Group("/finance")
			{
				finance.GET("/transactions", fc.GetTransactions)
				finance.POST("/expenses", fc.CreateExpense)
				finance.GET("/vaults", fc.GetVaults)
				finance.GET("/summary", fc.GetSummary)
			}

			admin.GET("/dashboard", repc.GetDashboard)
			admin.GET("/reports", repc.GetReport)
			admin.GET("/advisory/pricing", repc.GetPricingAdvice)

			settings := admin.Group("/settings")
			{
				settings.GET("/site", controllers.GetSiteSettings)
				settings.PUT("/site", controllers.UpdateSiteSettings)
			}
		}
	}

	return r
}
