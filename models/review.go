package models

import (
	"fmt"
	"strings"
	"time"
)

// Review represents patient feedback on a doctor.
type Review struct {
	ID           string    `bson:"id" json:"id"`
	PatientName  string    `bson:"patientName" json:"patientName"`
	DoctorName   string    `bson:"doctorName" json:"doctorName"`
	Rating       int       `bson:"rating" json:"rating"` // 1-5 stars
	Comment      string    `bson:"comment" json:"comment"`
	IsAnonymous  bool      `bson:"isAnonymous" json:"isAnonymous"`
	HelpfulCount int       `bson:"helpfulCount" json:"helpfulCount"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Validate checks the review's business rules.
func (r Review) Validate() error {
	if strings.TrimSpace(r.PatientName) == "" {
		return fmt.Errorf("patient name is required")
	}
	if strings.TrimSpace(r.DoctorName) == "" {
		return fmt.Errorf("doctor name is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be an integer between 1 and 5")
	}
	comment := strings.TrimSpace(r.Comment)
	if len(comment) < 5 || len(comment) > 1000 {
		return fmt.Errorf("comment must be between 5 and 1000 characters")
	}
	return nil
}

// ReviewerName returns the display name, hiding it for anonymous reviews.
func (r Review) ReviewerName() string {
	if r.IsAnonymous {
		return "Anonymous"
	}
	return r.PatientName
}
