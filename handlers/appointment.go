// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes appointment management endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		logger.Error("Invalid appointment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booked, err := h.Service.Book(c.Request.Context(), appt)
	if err != nil {
		if errors.Is(err, appointment.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to book appointment", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// GetAppointmentByIDHandler handles GET /api/appointments/id/:id.
func (h *AppointmentHandler) GetAppointmentByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	appt, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Appointment not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// GetAllAppointmentsHandler handles GET /api/appointments.
func (h *AppointmentHandler) GetAllAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)
	appts, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetPatientAppointmentsHandler handles GET /api/appointments/patient?q=term,
// where term is a patient name or phone number.
func (h *AppointmentHandler) GetPatientAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)
	term := c.Query("q")
	appts, err := h.Service.GetByPatient(c.Request.Context(), term)
	if err != nil {
		logger.Error("Patient appointment lookup failed", zap.String("term", term), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// CancelAppointmentHandler handles PUT /api/appointments/cancel/:id.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.Service.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		logger.Error("Failed to cancel appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// RescheduleAppointmentHandler handles PUT /api/appointments/reschedule/:id.
func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.Reschedule(c.Request.Context(), id, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, appointment.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to reschedule appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}
