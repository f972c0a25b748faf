// File: database/repository/patient/queries.go
package patientRepo

import (
	"fmt"
	"regexp"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetByID retrieves a patient by its unique ID.
func (r *MongoPatientRepo) GetByID(id string) (*models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var patient models.Patient
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient); err != nil {
		return nil, fmt.Errorf("failed to fetch patient with id %s: %w", id, err)
	}
	return &patient, nil
}

// GetAll retrieves all patients.
func (r *MongoPatientRepo) GetAll() ([]models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// Search finds patients by first name, last name or phone substring.
func (r *MongoPatientRepo) Search(term string) ([]models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"firstName": pattern},
		{"lastName": pattern},
		{"phone": pattern},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// Count returns the number of registered patients.
func (r *MongoPatientRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}
