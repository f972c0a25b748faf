// File: database/repository/doctor/queries.go
package doctorRepo

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetByID retrieves a doctor by its unique ID.
func (r *MongoDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor); err != nil {
		return nil, fmt.Errorf("failed to fetch doctor with id %s: %w", id, err)
	}
	return &doctor, nil
}

// GetAll retrieves all doctors.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

// GetByFullName retrieves a doctor whose "First Last" name matches fullName
// (case-insensitive).
func (r *MongoDoctorRepo) GetByFullName(fullName string) (*models.Doctor, error) {
	doctors, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	target := strings.ToLower(strings.TrimSpace(fullName))
	for _, d := range doctors {
		if strings.ToLower(d.FullName()) == target {
			doc := d
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("doctor %q not found", fullName)
}

// Search finds doctors by first name, last name or license number substring.
func (r *MongoDoctorRepo) Search(term string) ([]models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"firstName": pattern},
		{"lastName": pattern},
		{"licenseNumber": pattern},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

// Count returns the number of registered doctors.
func (r *MongoDoctorRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
