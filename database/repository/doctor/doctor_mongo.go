// File: database/repository/doctor/doctor_mongo.go
package doctorRepo

import (
	"context"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/database"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// GetByFullName retrieves a doctor by "First Last" name.
	GetByFullName(fullName string) (*models.Doctor, error)
	// Search finds doctors by name or license number substring.
	Search(term string) ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// Update modifies an existing doctor record.
	Update(doctor *models.Doctor) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error
	// Count returns the number of registered doctors.
	Count() (int64, error)
}

// MongoDoctorRepo is the MongoDB implementation of DoctorRepository.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	repo := &MongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
