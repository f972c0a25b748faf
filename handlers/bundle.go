// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Doctor endpoints
	AddDoctorHandler     gin.HandlerFunc
	GetDoctorByIDHandler gin.HandlerFunc
	GetAllDoctorsHandler gin.HandlerFunc
	SearchDoctorsHandler gin.HandlerFunc
	UpdateDoctorHandler  gin.HandlerFunc
	DeleteDoctorHandler  gin.HandlerFunc

	// Patient endpoints
	RegisterPatientHandler gin.HandlerFunc
	GetPatientByIDHandler  gin.HandlerFunc
	GetAllPatientsHandler  gin.HandlerFunc
	SearchPatientsHandler  gin.HandlerFunc
	UpdatePatientHandler   gin.HandlerFunc
	DeletePatientHandler   gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler        gin.HandlerFunc
	GetAppointmentByIDHandler     gin.HandlerFunc
	GetAllAppointmentsHandler     gin.HandlerFunc
	GetPatientAppointmentsHandler gin.HandlerFunc
	CancelAppointmentHandler      gin.HandlerFunc
	RescheduleAppointmentHandler  gin.HandlerFunc

	// Review endpoints
	AddReviewHandler         gin.HandlerFunc
	GetAllReviewsHandler     gin.HandlerFunc
	GetDoctorReviewsHandler  gin.HandlerFunc
	MarkReviewHelpfulHandler gin.HandlerFunc
	DeleteReviewHandler      gin.HandlerFunc

	// Chatbot endpoint
	ChatHandler gin.HandlerFunc

	// Stats endpoint
	ClinicStatsHandler gin.HandlerFunc
}
