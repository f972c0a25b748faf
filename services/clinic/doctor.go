package clinic

import (
	"fmt"
	"strings"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"go.uber.org/zap"
)

// AddDoctor registers a new doctor after validating its fields.
// The license number must be unique across the clinic.
func (s *DefaultClinicService) AddDoctor(doctor models.Doctor) (*models.Doctor, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(doctor.FirstName) == "" || strings.TrimSpace(doctor.LastName) == "" {
		return nil, fmt.Errorf("doctor first and last name are required")
	}
	if strings.TrimSpace(doctor.LicenseNumber) == "" {
		return nil, fmt.Errorf("license number is required")
	}
	if !doctor.Specialty.Valid() {
		return nil, fmt.Errorf("unknown specialty %q", doctor.Specialty)
	}
	if err := utils.ValidatePhone(doctor.Phone); err != nil {
		return nil, err
	}
	if doctor.Email != "" {
		if err := utils.ValidateEmail(doctor.Email); err != nil {
			return nil, err
		}
	}

	// Duplicate licenses are rejected here and enforced by the unique index.
	if existing, err := s.DoctorRepo.Search(doctor.LicenseNumber); err == nil {
		for _, d := range existing {
			if strings.EqualFold(d.LicenseNumber, doctor.LicenseNumber) {
				return nil, fmt.Errorf("a doctor with license %s already exists", doctor.LicenseNumber)
			}
		}
	}

	if err := s.DoctorRepo.Create(&doctor); err != nil {
		logger.Error("Failed to add doctor", zap.String("license", doctor.LicenseNumber), zap.Error(err))
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	logger.Info("Doctor added", zap.String("id", doctor.ID), zap.String("name", doctor.FullName()))
	return &doctor, nil
}

// GetDoctorByID fetches a single doctor.
func (s *DefaultClinicService) GetDoctorByID(id string) (*models.Doctor, error) {
	return s.DoctorRepo.GetByID(id)
}

// GetAllDoctors lists every registered doctor.
func (s *DefaultClinicService) GetAllDoctors() ([]models.Doctor, error) {
	return s.DoctorRepo.GetAll()
}

// SearchDoctors finds doctors by name or license substring.
func (s *DefaultClinicService) SearchDoctors(term string) ([]models.Doctor, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("search term is required")
	}
	return s.DoctorRepo.Search(term)
}

// UpdateDoctor modifies an existing doctor record.
func (s *DefaultClinicService) UpdateDoctor(doctor models.Doctor) (*models.Doctor, error) {
	if doctor.ID == "" {
		return nil, fmt.Errorf("doctor ID is required for update")
	}
	if doctor.Specialty != "" && !doctor.Specialty.Valid() {
		return nil, fmt.Errorf("unknown specialty %q", doctor.Specialty)
	}

	current, err := s.DoctorRepo.GetByID(doctor.ID)
	if err != nil {
		return nil, err
	}

	// Partial update: empty fields keep their current values.
	if doctor.FirstName == "" {
		doctor.FirstName = current.FirstName
	}
	if doctor.LastName == "" {
		doctor.LastName = current.LastName
	}
	if doctor.Phone == "" {
		doctor.Phone = current.Phone
	}
	if doctor.Email == "" {
		doctor.Email = current.Email
	}
	if doctor.LicenseNumber == "" {
		doctor.LicenseNumber = current.LicenseNumber
	}
	if doctor.Specialty == "" {
		doctor.Specialty = current.Specialty
	}
	if doctor.PatientRating == 0 {
		doctor.PatientRating = current.PatientRating
	}
	doctor.CreatedAt = current.CreatedAt

	if err := s.DoctorRepo.Update(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// DeleteDoctor removes a doctor record.
func (s *DefaultClinicService) DeleteDoctor(id string) error {
	return s.DoctorRepo.Delete(id)
}
