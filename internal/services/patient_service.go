package services

import (
	"clinic-scheduling-server/internal/models"
	"clinic-scheduling-server/internal/repository"
)

// PatientService wraps patient storage with entity-specific lookups.
type PatientService struct {
	patientRepo repository.PatientRepository
}

// NewPatientService creates a PatientService over the given repository.
func NewPatientService(patientRepo repository.PatientRepository) *PatientService {
	return &PatientService{patientRepo: patientRepo}
}

// GetAllPatients returns all patients in stored order.
func (s *PatientService) GetAllPatients() ([]models.Patient, error) {
	return s.patientRepo.FindAll()
}

// GetPatientByID returns the patient with the given id, or nil if absent.
func (s *PatientService) GetPatientByID(id string) (*models.Patient, error) {
	return s.patientRepo.FindByID(id)
}

// GetPatientByEmailOrPhone tries email first and returns on a hit, then falls
// through to phone. Email always wins when both are supplied and match
// different patients.
func (s *PatientService) GetPatientByEmailOrPhone(email, phone string) (*models.Patient, error) {
	if email != "" {
		patient, err := s.patientRepo.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			return patient, nil
		}
	}

	if phone != "" {
		return s.patientRepo.FindByPhone(phone)
	}

	return nil, nil
}

// SavePatient persists a patient record.
func (s *PatientService) SavePatient(patient *models.Patient) error {
	return s.patientRepo.Save(patient)
}

// SearchPatientsByName returns patients whose name contains the given
// substring, case-insensitively.
func (s *PatientService) SearchPatientsByName(name string) ([]models.Patient, error) {
	return s.patientRepo.FindByNameContaining(name)
}

// ExistsByEmail reports whether a patient with that email is registered.
func (s *PatientService) ExistsByEmail(email string) (bool, error) {
	patient, err := s.patientRepo.FindByEmail(email)
	if err != nil {
		return false, err
	}
	return patient != nil, nil
}

// ExistsByPhone reports whether a patient with that phone is registered.
func (s *PatientService) ExistsByPhone(phone string) (bool, error) {
	patient, err := s.patientRepo.FindByPhone(phone)
	if err != nil {
		return false, err
	}
	return patient != nil, nil
}
