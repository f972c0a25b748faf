// File: database/repository/appointment/appointment_mongo.go
package appointmentRepo

import (
	"context"

	"github.com/mmh06md-hub/Dental-Clinic-V2/database"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll retrieves all appointments.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByPatient retrieves appointments whose patient name or phone matches term.
	GetByPatient(ctx context.Context, term string) ([]models.Appointment, error)
	// CountActiveAt counts scheduled or confirmed appointments for a
	// doctor at the given date and time.
	CountActiveAt(ctx context.Context, doctorName, date, timeStr string) (int64, error)
	// UpdateStatus transitions an appointment to the given status.
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus, reason string) error
	// Reschedule moves an appointment to a new date and time.
	Reschedule(ctx context.Context, id, date, timeStr string) error
	// MarkReminderSent flags the appointment's reminder as delivered.
	MarkReminderSent(ctx context.Context, id string) error
}

// MongoAppointmentRepo is the MongoDB implementation of AppointmentRepository.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
