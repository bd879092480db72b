package routes

import (
	"time"

	"medicare/handlers"
	"medicare/middleware"
	"medicare/services/access"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterProbeRoutes registers the banner, health and metrics endpoints.
func RegisterProbeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterSlotRoutes registers catalog and availability endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/slots", hb.GetAvailabilityHandler)
	r.POST("/slots", middleware.AdminOnly(hb.Roles), hb.CreateTemplateHandler)
	r.GET("/slotSpeciality", hb.GetServiceNamesHandler)
	r.GET("/addPrice", hb.AddPriceHandler)
}

// RegisterBookingRoutes registers reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", hb.CreateBookingHandler)
		bookings.GET("", middleware.Authorize(access.Authenticated()), hb.GetMyBookingsHandler)
		bookings.GET("/:id", hb.GetBookingByIDHandler)
	}
}

// RegisterPaymentRoutes registers intent creation and payment confirmation.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
	r.POST("/payment", hb.RecordPaymentHandler)
}

// RegisterUserRoutes registers token and user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.IssueTokenHandler)

	users := r.Group("/users")
	{
		users.POST("", hb.UpsertUserHandler)
		users.GET("", hb.ListUsersHandler)
		users.GET("/admin/:email", hb.CheckAdminHandler)
		users.PUT("/admin/:id", middleware.AdminOnly(hb.Roles), hb.PromoteToAdminHandler)
	}
}

// RegisterDoctorRoutes registers the admin-only doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	{
		doctors.Use(middleware.AdminOnly(hb.Roles))
		doctors.POST("", hb.AddDoctorHandler)
		doctors.GET("", hb.ListDoctorsHandler)
		doctors.DELETE("/:id", hb.DeleteDoctorHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Authenticate(hb.Tokens))

	RegisterProbeRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
