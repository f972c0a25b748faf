// File: handlers/doctor.go
package handlers

import (
	"net/http"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/clinic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes doctor management endpoints.
type DoctorHandler struct {
	Service clinic.ClinicService
}

// AddDoctorHandler handles POST /api/doctors.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		logger.Error("Invalid doctor payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.AddDoctor(doctor)
	if err != nil {
		logger.Error("Failed to add doctor", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetDoctorByIDHandler handles GET /api/doctors/id/:id.
func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	doctor, err := h.Service.GetDoctorByID(id)
	if err != nil {
		logger.Error("Doctor not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// GetAllDoctorsHandler handles GET /api/doctors.
func (h *DoctorHandler) GetAllDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)
	doctors, err := h.Service.GetAllDoctors()
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// SearchDoctorsHandler handles GET /api/doctors/search?q=term.
func (h *DoctorHandler) SearchDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search term"})
		return
	}
	doctors, err := h.Service.SearchDoctors(term)
	if err != nil {
		logger.Error("Doctor search failed", zap.String("term", term), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// UpdateDoctorHandler handles PUT /api/doctors/update/:id.
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		logger.Error("Invalid doctor payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doctor.ID = c.Param("id")
	updated, err := h.Service.UpdateDoctor(doctor)
	if err != nil {
		logger.Error("Failed to update doctor", zap.String("id", doctor.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDoctorHandler handles DELETE /api/doctors/delete/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.DeleteDoctor(id); err != nil {
		logger.Error("Failed to delete doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}
