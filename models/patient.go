package models

import "time"

// Gender enumerates patient gender options.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is a member of the closed gender set.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// EmergencyContact is the person to notify on a patient's behalf.
type EmergencyContact struct {
	FirstName    string `bson:"firstName" json:"firstName"`
	LastName     string `bson:"lastName" json:"lastName"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	Relationship string `bson:"relationship" json:"relationship"`
}

// Patient represents a registered clinic patient.
type Patient struct {
	ID               string            `bson:"id" json:"id"`
	FirstName        string            `bson:"firstName" json:"firstName"`
	LastName         string            `bson:"lastName" json:"lastName"`
	Phone            string            `bson:"phone" json:"phone"`
	Email            string            `bson:"email,omitempty" json:"email,omitempty"`
	Age              int               `bson:"age" json:"age"`
	Gender           Gender            `bson:"gender" json:"gender"`
	BloodType        string            `bson:"bloodType,omitempty" json:"bloodType,omitempty"`
	MedicalHistory   []string          `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	EmergencyContact *EmergencyContact `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	CreatedAt        time.Time         `bson:"createdAt" json:"createdAt"`
}

// FullName returns the patient's display name.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
