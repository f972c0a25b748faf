// File: database/repository/review/review_mongo.go
package reviewRepo

import (
	"context"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/database"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// GetByID retrieves a review by its unique ID.
	GetByID(id string) (*models.Review, error)
	// GetAll retrieves all reviews, newest first.
	GetAll() ([]models.Review, error)
	// GetByDoctor retrieves reviews for a doctor, newest first.
	GetByDoctor(doctorName string) ([]models.Review, error)
	// IncrementHelpful bumps a review's helpful counter and returns the new value.
	IncrementHelpful(id string) (int, error)
	// Delete removes a review record by its ID.
	Delete(id string) error
}

// MongoReviewRepo is the MongoDB implementation of ReviewRepository.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{
		coll: database.DB().Collection("reviews"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
