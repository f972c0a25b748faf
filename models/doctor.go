package models

import "time"

// MedicalSpecialty enumerates the dental specialties offered by the clinic.
type MedicalSpecialty string

const (
	SpecialtyGeneral      MedicalSpecialty = "General"
	SpecialtyOrthodontist MedicalSpecialty = "Orthodontist"
	SpecialtyPediatric    MedicalSpecialty = "Pediatric"
	SpecialtySurgeon      MedicalSpecialty = "Oral Surgeon"
)

// MedicalSpecialties lists all valid specialties.
var MedicalSpecialties = []MedicalSpecialty{
	SpecialtyGeneral,
	SpecialtyOrthodontist,
	SpecialtyPediatric,
	SpecialtySurgeon,
}

// Valid reports whether s is a member of the closed specialty set.
func (s MedicalSpecialty) Valid() bool {
	for _, known := range MedicalSpecialties {
		if s == known {
			return true
		}
	}
	return false
}

// Doctor represents a practitioner employed by the clinic.
type Doctor struct {
	ID            string           `bson:"id" json:"id"`
	FirstName     string           `bson:"firstName" json:"firstName"`
	LastName      string           `bson:"lastName" json:"lastName"`
	Phone         string           `bson:"phone" json:"phone"`
	Email         string           `bson:"email,omitempty" json:"email,omitempty"`
	LicenseNumber string           `bson:"licenseNumber" json:"licenseNumber"`
	Specialty     MedicalSpecialty `bson:"specialty" json:"specialty"`
	PatientRating float64          `bson:"patientRating" json:"patientRating"`
	CreatedAt     time.Time        `bson:"createdAt" json:"createdAt"`
}

// FullName returns the doctor's display name.
func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
