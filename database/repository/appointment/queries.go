// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// GetAll retrieves all appointments.
func (r *MongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// GetByPatient retrieves appointments whose patient name or phone matches term.
func (r *MongoAppointmentRepo) GetByPatient(ctx context.Context, term string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"patientName": pattern},
		{"patientPhone": pattern},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for %q: %w", term, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// CountActiveAt counts scheduled or confirmed appointments for a doctor at the
// given date and time. A non-zero count means the slot is taken.
func (r *MongoAppointmentRepo) CountActiveAt(ctx context.Context, doctorName, date, timeStr string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorName": doctorName,
		"date":       date,
		"time":       timeStr,
		"status":     bson.M{"$in": models.ActiveStatuses},
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments for %s on %s %s: %w", doctorName, date, timeStr, err)
	}
	return count, nil
}
