// File: database/repository/patient/patient_mongo.go
package patientRepo

import (
	"context"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/database"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository defines methods for patient data access.
type PatientRepository interface {
	// GetByID retrieves a patient by its unique ID.
	GetByID(id string) (*models.Patient, error)
	// GetAll retrieves all patients.
	GetAll() ([]models.Patient, error)
	// Search finds patients by name or phone substring.
	Search(term string) ([]models.Patient, error)
	// Create inserts a new patient record.
	Create(patient *models.Patient) error
	// Update modifies an existing patient record.
	Update(patient *models.Patient) error
	// Delete removes a patient record by its ID.
	Delete(id string) error
	// Count returns the number of registered patients.
	Count() (int64, error)
}

// MongoPatientRepo is the MongoDB implementation of PatientRepository.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	repo := &MongoPatientRepo{
		coll: database.DB().Collection("patients"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
