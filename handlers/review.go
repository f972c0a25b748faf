// File: handlers/review.go
package handlers

import (
	"net/http"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/clinic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes doctor review endpoints.
type ReviewHandler struct {
	Service clinic.ClinicService
}

// AddReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		logger.Error("Invalid review payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.AddReview(review)
	if err != nil {
		logger.Error("Failed to add review", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllReviewsHandler handles GET /api/reviews.
func (h *ReviewHandler) GetAllReviewsHandler(c *gin.Context) {
	logger := getLogger(c)
	reviews, err := h.Service.GetAllReviews()
	if err != nil {
		logger.Error("Failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetDoctorReviewsHandler handles GET /api/reviews/doctor/:name.
func (h *ReviewHandler) GetDoctorReviewsHandler(c *gin.Context) {
	logger := getLogger(c)
	name := c.Param("name")
	reviews, err := h.Service.GetReviewsForDoctor(name)
	if err != nil {
		logger.Error("Failed to list doctor reviews", zap.String("doctor", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// MarkReviewHelpfulHandler handles PUT /api/reviews/helpful/:id.
func (h *ReviewHandler) MarkReviewHelpfulHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	count, err := h.Service.MarkReviewHelpful(id)
	if err != nil {
		logger.Error("Failed to mark review helpful", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "helpfulCount": count})
}

// DeleteReviewHandler handles DELETE /api/reviews/delete/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.DeleteReview(id); err != nil {
		logger.Error("Failed to delete review", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
