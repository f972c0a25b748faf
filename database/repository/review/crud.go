// File: database/repository/review/crud.go
package reviewRepo

import (
	"fmt"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if review.ID == "" {
		review.ID = models.NewID()
	}
	review.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &review, nil
}

// GetAll retrieves all reviews, newest first.
func (r *MongoReviewRepo) GetAll() ([]models.Review, error) {
	return r.find(bson.M{})
}

// GetByDoctor retrieves reviews for a doctor, newest first.
func (r *MongoReviewRepo) GetByDoctor(doctorName string) ([]models.Review, error) {
	return r.find(bson.M{"doctorName": doctorName})
}

func (r *MongoReviewRepo) find(filter bson.M) ([]models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// IncrementHelpful bumps a review's helpful counter and returns the new value.
func (r *MongoReviewRepo) IncrementHelpful(id string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	update := bson.M{"$inc": bson.M{"helpfulCount": 1}}

	var review models.Review
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&review); err != nil {
		return 0, fmt.Errorf("failed to mark review %s helpful: %w", id, err)
	}
	return review.HelpfulCount, nil
}

// Delete removes a review document by its ID.
func (r *MongoReviewRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}
