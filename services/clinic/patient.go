package clinic

import (
	"fmt"
	"strings"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"go.uber.org/zap"
)

// RegisterPatient registers a new patient after validating its fields.
func (s *DefaultClinicService) RegisterPatient(patient models.Patient) (*models.Patient, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(patient.FirstName) == "" || strings.TrimSpace(patient.LastName) == "" {
		return nil, fmt.Errorf("patient first and last name are required")
	}
	if patient.Age <= 0 || patient.Age >= 150 {
		return nil, fmt.Errorf("age must be between 1 and 149")
	}
	if !patient.Gender.Valid() {
		return nil, fmt.Errorf("unknown gender %q", patient.Gender)
	}
	if err := utils.ValidatePhone(patient.Phone); err != nil {
		return nil, err
	}
	if patient.Email != "" {
		if err := utils.ValidateEmail(patient.Email); err != nil {
			return nil, err
		}
	}
	if ec := patient.EmergencyContact; ec != nil {
		if err := utils.ValidatePhone(ec.Phone); err != nil {
			return nil, fmt.Errorf("emergency contact: %w", err)
		}
	}

	if err := s.PatientRepo.Create(&patient); err != nil {
		logger.Error("Failed to register patient", zap.String("name", patient.FullName()), zap.Error(err))
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}
	logger.Info("Patient registered", zap.String("id", patient.ID), zap.String("name", patient.FullName()))
	return &patient, nil
}

// GetPatientByID fetches a single patient.
func (s *DefaultClinicService) GetPatientByID(id string) (*models.Patient, error) {
	return s.PatientRepo.GetByID(id)
}

// GetAllPatients lists every registered patient.
func (s *DefaultClinicService) GetAllPatients() ([]models.Patient, error) {
	return s.PatientRepo.GetAll()
}

// SearchPatients finds patients by name or phone substring.
func (s *DefaultClinicService) SearchPatients(term string) ([]models.Patient, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("search term is required")
	}
	return s.PatientRepo.Search(term)
}

// UpdatePatient modifies an existing patient record.
func (s *DefaultClinicService) UpdatePatient(patient models.Patient) (*models.Patient, error) {
	if patient.ID == "" {
		return nil, fmt.Errorf("patient ID is required for update")
	}

	current, err := s.PatientRepo.GetByID(patient.ID)
	if err != nil {
		return nil, err
	}

	// Partial update: zero-valued fields keep their current values.
	if patient.FirstName == "" {
		patient.FirstName = current.FirstName
	}
	if patient.LastName == "" {
		patient.LastName = current.LastName
	}
	if patient.Phone == "" {
		patient.Phone = current.Phone
	}
	if patient.Email == "" {
		patient.Email = current.Email
	}
	if patient.Age == 0 {
		patient.Age = current.Age
	}
	if patient.Gender == "" {
		patient.Gender = current.Gender
	}
	if patient.BloodType == "" {
		patient.BloodType = current.BloodType
	}
	if patient.MedicalHistory == nil {
		patient.MedicalHistory = current.MedicalHistory
	}
	if patient.EmergencyContact == nil {
		patient.EmergencyContact = current.EmergencyContact
	}
	patient.CreatedAt = current.CreatedAt

	if err := s.PatientRepo.Update(&patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// DeletePatient removes a patient record.
func (s *DefaultClinicService) DeletePatient(id string) error {
	return s.PatientRepo.Delete(id)
}

// GetClinicStats returns a summary of registered records.
func (s *DefaultClinicService) GetClinicStats() (*ClinicStats, error) {
	doctors, err := s.DoctorRepo.Count()
	if err != nil {
		return nil, err
	}
	patients, err := s.PatientRepo.Count()
	if err != nil {
		return nil, err
	}
	return &ClinicStats{TotalDoctors: doctors, TotalPatients: patients}, nil
}
