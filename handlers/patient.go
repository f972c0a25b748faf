// File: handlers/patient.go
package handlers

import (
	"net/http"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/clinic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler exposes patient management endpoints.
type PatientHandler struct {
	Service clinic.ClinicService
}

// RegisterPatientHandler handles POST /api/patients.
func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	logger := getLogger(c)
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		logger.Error("Invalid patient payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.RegisterPatient(patient)
	if err != nil {
		logger.Error("Failed to register patient", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPatientByIDHandler handles GET /api/patients/id/:id.
func (h *PatientHandler) GetPatientByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	patient, err := h.Service.GetPatientByID(id)
	if err != nil {
		logger.Error("Patient not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// GetAllPatientsHandler handles GET /api/patients.
func (h *PatientHandler) GetAllPatientsHandler(c *gin.Context) {
	logger := getLogger(c)
	patients, err := h.Service.GetAllPatients()
	if err != nil {
		logger.Error("Failed to list patients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// SearchPatientsHandler handles GET /api/patients/search?q=term.
func (h *PatientHandler) SearchPatientsHandler(c *gin.Context) {
	logger := getLogger(c)
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search term"})
		return
	}
	patients, err := h.Service.SearchPatients(term)
	if err != nil {
		logger.Error("Patient search failed", zap.String("term", term), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// UpdatePatientHandler handles PUT /api/patients/update/:id.
func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	logger := getLogger(c)
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		logger.Error("Invalid patient payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient.ID = c.Param("id")
	updated, err := h.Service.UpdatePatient(patient)
	if err != nil {
		logger.Error("Failed to update patient", zap.String("id", patient.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePatientHandler handles DELETE /api/patients/delete/:id.
func (h *PatientHandler) DeletePatientHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.DeletePatient(id); err != nil {
		logger.Error("Failed to delete patient", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}

// ClinicStatsHandler handles GET /api/stats.
func (h *PatientHandler) ClinicStatsHandler(c *gin.Context) {
	logger := getLogger(c)
	stats, err := h.Service.GetClinicStats()
	if err != nil {
		logger.Error("Failed to compute clinic stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
