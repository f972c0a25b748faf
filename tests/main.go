package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/config"
	"github.com/mmh06md-hub/Dental-Clinic-V2/database"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seed tool: wipes and repopulates the doctors and patients collections with
// sample data for local development.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()
	doctorColl := db.Collection("doctors")
	patientColl := db.Collection("patients")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := doctorColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear doctors collection: %v", err)
	}
	if _, err := patientColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear patients collection: %v", err)
	}

	specialties := []models.MedicalSpecialty{
		models.SpecialtyGeneral,
		models.SpecialtyOrthodontist,
		models.SpecialtyPediatric,
		models.SpecialtySurgeon,
	}
	doctorNames := [][2]string{
		{"Sarah", "Johnson"},
		{"Michael", "Chen"},
		{"Emily", "Rodriguez"},
		{"David", "Kim"},
		{"Laura", "Bennett"},
		{"James", "Okafor"},
	}

	var doctors []interface{}
	for i, name := range doctorNames {
		doctors = append(doctors, models.Doctor{
			ID:            models.NewID(),
			FirstName:     name[0],
			LastName:      name[1],
			Phone:         fmt.Sprintf("+1-555-01%02d", i+1),
			Email:         fmt.Sprintf("%s.%s@dentalclinicpro.example", name[0], name[1]),
			LicenseNumber: fmt.Sprintf("DDS-%05d", 10000+i),
			Specialty:     specialties[i%len(specialties)],
			PatientRating: 3.5 + rand.Float64()*1.5,
			CreatedAt:     time.Now(),
		})
	}
	if _, err := doctorColl.InsertMany(ctx, doctors); err != nil {
		log.Fatalf("Failed to seed doctors: %v", err)
	}

	patientNames := [][2]string{
		{"Alice", "Martin"},
		{"Bruno", "Silva"},
		{"Carmen", "Lopez"},
		{"Derek", "Hughes"},
		{"Fatima", "Hassan"},
		{"Greg", "Olsen"},
		{"Hana", "Sato"},
		{"Ivan", "Petrov"},
	}
	bloodTypes := []string{"A+", "A-", "B+", "O+", "O-", "AB+"}

	var patients []interface{}
	for i, name := range patientNames {
		patients = append(patients, models.Patient{
			ID:        models.NewID(),
			FirstName: name[0],
			LastName:  name[1],
			Age:       18 + rand.Intn(60),
			Gender:    []models.Gender{models.GenderFemale, models.GenderMale}[i%2],
			Phone:     fmt.Sprintf("+1-555-02%02d", i+1),
			Email:     fmt.Sprintf("%s.%s@example.com", name[0], name[1]),
			BloodType: bloodTypes[i%len(bloodTypes)],
			CreatedAt: time.Now(),
		})
	}
	if _, err := patientColl.InsertMany(ctx, patients); err != nil {
		log.Fatalf("Failed to seed patients: %v", err)
	}

	fmt.Printf("Seeded %d doctors and %d patients into %s\n",
		len(doctors), len(patients), config.AppConfig.DatabaseName)
}
