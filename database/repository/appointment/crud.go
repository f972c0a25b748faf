// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = models.NewID()
	}
	if appt.Status == "" {
		appt.Status = models.StatusScheduled
	}
	if appt.DurationMinutes == 0 {
		appt.DurationMinutes = 30
	}
	appt.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// UpdateStatus transitions an appointment to the given status.
// The reason is recorded only for cancellations.
func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": status}
	if status == models.StatusCancelled && reason != "" {
		set["cancellationReason"] = reason
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update appointment %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// Reschedule moves an appointment to a new date and time and resets its
// reminder so a new one can be queued.
func (r *MongoAppointmentRepo) Reschedule(ctx context.Context, id, date, timeStr string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":         date,
		"time":         timeStr,
		"status":       models.StatusScheduled,
		"reminderSent": false,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to reschedule appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// MarkReminderSent flags the appointment's reminder as delivered.
func (r *MongoAppointmentRepo) MarkReminderSent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"reminderSent": true}})
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent for appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}
