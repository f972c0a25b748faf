package clinic

import (
	doctorRepo "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/doctor"
	patientRepo "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/patient"
	reviewRepo "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/review"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
)

// ClinicService defines doctor, patient and review management operations.
type ClinicService interface {
	// Doctors.
	AddDoctor(doctor models.Doctor) (*models.Doctor, error)
	GetDoctorByID(id string) (*models.Doctor, error)
	GetAllDoctors() ([]models.Doctor, error)
	SearchDoctors(term string) ([]models.Doctor, error)
	UpdateDoctor(doctor models.Doctor) (*models.Doctor, error)
	DeleteDoctor(id string) error

	// Patients.
	RegisterPatient(patient models.Patient) (*models.Patient, error)
	GetPatientByID(id string) (*models.Patient, error)
	GetAllPatients() ([]models.Patient, error)
	SearchPatients(term string) ([]models.Patient, error)
	UpdatePatient(patient models.Patient) (*models.Patient, error)
	DeletePatient(id string) error

	// Reviews.
	AddReview(review models.Review) (*models.Review, error)
	GetAllReviews() ([]models.Review, error)
	GetReviewsForDoctor(doctorName string) ([]models.Review, error)
	MarkReviewHelpful(id string) (int, error)
	DeleteReview(id string) error

	// Stats.
	GetClinicStats() (*ClinicStats, error)
}

// ClinicStats is a summary of the clinic's registered records.
type ClinicStats struct {
	TotalDoctors  int64 `json:"totalDoctors"`
	TotalPatients int64 `json:"totalPatients"`
}

// DefaultClinicService implements ClinicService.
type DefaultClinicService struct {
	DoctorRepo  doctorRepo.DoctorRepository
	PatientRepo patientRepo.PatientRepository
	ReviewRepo  reviewRepo.ReviewRepository
}
