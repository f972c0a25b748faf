package clinic

import (
	"fmt"
	"strings"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"go.uber.org/zap"
)

// AddReview stores patient feedback after validating its business rules.
func (s *DefaultClinicService) AddReview(review models.Review) (*models.Review, error) {
	logger := utils.GetLogger()

	review.Comment = strings.TrimSpace(review.Comment)
	if err := review.Validate(); err != nil {
		return nil, err
	}

	// Reviews only attach to doctors the clinic actually knows.
	if _, err := s.DoctorRepo.GetByFullName(review.DoctorName); err != nil {
		return nil, fmt.Errorf("doctor %q is not registered at this clinic", review.DoctorName)
	}

	if err := s.ReviewRepo.Create(&review); err != nil {
		logger.Error("Failed to add review", zap.String("doctor", review.DoctorName), zap.Error(err))
		return nil, err
	}
	logger.Info("Review added",
		zap.String("id", review.ID),
		zap.String("doctor", review.DoctorName),
		zap.Int("rating", review.Rating))
	return &review, nil
}

// GetAllReviews lists every review, newest first.
func (s *DefaultClinicService) GetAllReviews() ([]models.Review, error) {
	return s.ReviewRepo.GetAll()
}

// GetReviewsForDoctor lists a doctor's reviews, newest first.
func (s *DefaultClinicService) GetReviewsForDoctor(doctorName string) ([]models.Review, error) {
	return s.ReviewRepo.GetByDoctor(doctorName)
}

// MarkReviewHelpful bumps the helpful counter and returns the new value.
func (s *DefaultClinicService) MarkReviewHelpful(id string) (int, error) {
	return s.ReviewRepo.IncrementHelpful(id)
}

// DeleteReview removes a review record.
func (s *DefaultClinicService) DeleteReview(id string) error {
	return s.ReviewRepo.Delete(id)
}
