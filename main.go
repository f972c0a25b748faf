// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/config"
	"github.com/mmh06md-hub/Dental-Clinic-V2/cron"
	"github.com/mmh06md-hub/Dental-Clinic-V2/database"
	appointmentRepoPkg "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/appointment"
	doctorRepoPkg "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/doctor"
	patientRepoPkg "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/patient"
	reviewRepoPkg "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/review"
	"github.com/mmh06md-hub/Dental-Clinic-V2/handlers"
	"github.com/mmh06md-hub/Dental-Clinic-V2/middleware"
	"github.com/mmh06md-hub/Dental-Clinic-V2/routes"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/appointment"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/chatbot"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/clinic"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/tasks"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	clinicService := &clinic.DefaultClinicService{
		DoctorRepo:  doctorRepo,
		PatientRepo: patientRepo,
		ReviewRepo:  reviewRepo,
	}

	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      apptRepo,
		Reminders: reminderScheduler,
	}

	sessionStore := chatbot.NewRedisSessionStore(utils.GetChatSessionClient(), config.ChatSessionTTL())
	chatEngine := chatbot.NewEngine(sessionStore, appointmentService, config.ChatSessionTTL())

	// handlers.
	doctorHandler := &handlers.DoctorHandler{Service: clinicService}
	patientHandler := &handlers.PatientHandler{Service: clinicService}
	apptHandler := &handlers.AppointmentHandler{Service: appointmentService}
	reviewHandler := &handlers.ReviewHandler{Service: clinicService}
	chatHandler := &handlers.ChatHandler{Engine: chatEngine}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Doctor endpoints.
		AddDoctorHandler:     doctorHandler.AddDoctorHandler,
		GetDoctorByIDHandler: doctorHandler.GetDoctorByIDHandler,
		GetAllDoctorsHandler: doctorHandler.GetAllDoctorsHandler,
		SearchDoctorsHandler: doctorHandler.SearchDoctorsHandler,
		UpdateDoctorHandler:  doctorHandler.UpdateDoctorHandler,
		DeleteDoctorHandler:  doctorHandler.DeleteDoctorHandler,

		// Patient endpoints.
		RegisterPatientHandler: patientHandler.RegisterPatientHandler,
		GetPatientByIDHandler:  patientHandler.GetPatientByIDHandler,
		GetAllPatientsHandler:  patientHandler.GetAllPatientsHandler,
		SearchPatientsHandler:  patientHandler.SearchPatientsHandler,
		UpdatePatientHandler:   patientHandler.UpdatePatientHandler,
		DeletePatientHandler:   patientHandler.DeletePatientHandler,

		// Appointment endpoints.
		BookAppointmentHandler:        apptHandler.BookAppointmentHandler,
		GetAppointmentByIDHandler:     apptHandler.GetAppointmentByIDHandler,
		GetAllAppointmentsHandler:     apptHandler.GetAllAppointmentsHandler,
		GetPatientAppointmentsHandler: apptHandler.GetPatientAppointmentsHandler,
		CancelAppointmentHandler:      apptHandler.CancelAppointmentHandler,
		RescheduleAppointmentHandler:  apptHandler.RescheduleAppointmentHandler,

		// Review endpoints.
		AddReviewHandler:         reviewHandler.AddReviewHandler,
		GetAllReviewsHandler:     reviewHandler.GetAllReviewsHandler,
		GetDoctorReviewsHandler:  reviewHandler.GetDoctorReviewsHandler,
		MarkReviewHelpfulHandler: reviewHandler.MarkReviewHelpfulHandler,
		DeleteReviewHandler:      reviewHandler.DeleteReviewHandler,

		// Chatbot endpoint.
		ChatHandler: chatHandler.ChatHandlerFunc,

		// Stats endpoint.
		ClinicStatsHandler: patientHandler.ClinicStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(apptRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatSessionClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
