package routes

import (
	"net/http"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/handlers"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("", hb.AddDoctorHandler)
		api.GET("", hb.GetAllDoctorsHandler)
		api.GET("/id/:id", hb.GetDoctorByIDHandler)
		api.GET("/search", hb.SearchDoctorsHandler)
		api.PUT("/update/:id", hb.UpdateDoctorHandler)
		api.DELETE("/delete/:id", hb.DeleteDoctorHandler)
	}
}

// RegisterPatientRoutes registers patient management endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.POST("", hb.RegisterPatientHandler)
		api.GET("", hb.GetAllPatientsHandler)
		api.GET("/id/:id", hb.GetPatientByIDHandler)
		api.GET("/search", hb.SearchPatientsHandler)
		api.PUT("/update/:id", hb.UpdatePatientHandler)
		api.DELETE("/delete/:id", hb.DeletePatientHandler)
	}
}

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.BookAppointmentHandler)
		api.GET("", hb.GetAllAppointmentsHandler)
		api.GET("/id/:id", hb.GetAppointmentByIDHandler)
		api.GET("/patient", hb.GetPatientAppointmentsHandler)
		api.PUT("/cancel/:id", hb.CancelAppointmentHandler)
		api.PUT("/reschedule/:id", hb.RescheduleAppointmentHandler)
	}
}

// RegisterReviewRoutes registers doctor review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.AddReviewHandler)
		api.GET("", hb.GetAllReviewsHandler)
		api.GET("/doctor/:name", hb.GetDoctorReviewsHandler)
		api.PUT("/helpful/:id", hb.MarkReviewHelpfulHandler)
		api.DELETE("/delete/:id", hb.DeleteReviewHandler)
	}
}

// RegisterChatRoutes registers the booking chatbot endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.ChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)

	r.GET("/api/stats", hb.ClinicStatsHandler)
}
