// File: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes backing the conflict check and patient
// lookups.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary conflict-check pattern: doctor + date + time + status.
		{
			Keys:    bson.D{{Key: "doctorName", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("doctor_date_time_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "patientName", Value: 1}},
			Options: options.Index().SetName("patient_name_idx"),
		},
		{
			Keys:    bson.D{{Key: "patientPhone", Value: 1}},
			Options: options.Index().SetName("patient_phone_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
