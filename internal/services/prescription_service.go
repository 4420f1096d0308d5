package services

import (
	"clinic-scheduling-server/internal/models"
	"clinic-scheduling-server/internal/repository"
	"clinic-scheduling-server/internal/utils"
)

// TokenValidator checks a presented bearer credential.
type TokenValidator interface {
	Validate(token string) (*utils.Claims, error)
}

// PrescriptionService wraps prescription storage behind a token check.
type PrescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
	doctorService    *DoctorService
	patientService   *PatientService
	tokens           TokenValidator
}

// NewPrescriptionService creates a PrescriptionService with its collaborators.
func NewPrescriptionService(
	prescriptionRepo repository.PrescriptionRepository,
	doctorService *DoctorService,
	patientService *PatientService,
	tokens TokenValidator,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptionRepo: prescriptionRepo,
		doctorService:    doctorService,
		patientService:   patientService,
		tokens:           tokens,
	}
}

// GetAllPrescriptions returns all prescriptions.
func (s *PrescriptionService) GetAllPrescriptions() ([]models.Prescription, error) {
	return s.prescriptionRepo.FindAll()
}

// GetPrescriptionByID returns the prescription with the given id, or nil if absent.
func (s *PrescriptionService) GetPrescriptionByID(id string) (*models.Prescription, error) {
	return s.prescriptionRepo.FindByID(id)
}

// CreatePrescription validates the token, requires doctor and patient to
// exist, then persists. Any valid token passes regardless of the role it was
// issued with; role checking is a known gap carried over deliberately.
func (s *PrescriptionService) CreatePrescription(authToken, doctorID, patientID, medication, dosage, instructions string) (*models.Prescription, error) {
	if _, err := s.tokens.Validate(authToken); err != nil {
		return nil, ErrInvalidToken
	}

	doctor, err := s.doctorService.GetDoctorByID(doctorID)
	if err != nil {
		return nil, err
	}
	patient, err := s.patientService.GetPatientByID(patientID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || patient == nil {
		return nil, ErrDoctorOrPatientNotFound
	}

	prescription := &models.Prescription{
		DoctorID:     doctorID,
		PatientID:    patientID,
		Medication:   medication,
		Dosage:       dosage,
		Instructions: instructions,
	}
	if err := s.prescriptionRepo.Save(prescription); err != nil {
		return nil, err
	}

	prescription.Doctor = *doctor
	prescription.Patient = *patient
	return prescription, nil
}

// GetPrescriptionsByDoctor returns prescriptions issued by a doctor.
func (s *PrescriptionService) GetPrescriptionsByDoctor(doctorID string) ([]models.Prescription, error) {
	return s.prescriptionRepo.FindByDoctorID(doctorID)
}

// GetPrescriptionsByPatient returns prescriptions issued for a patient.
func (s *PrescriptionService) GetPrescriptionsByPatient(patientID string) ([]models.Prescription, error) {
	return s.prescriptionRepo.FindByPatientID(patientID)
}

// DeletePrescription removes a prescription by id.
func (s *PrescriptionService) DeletePrescription(id string) error {
	return s.prescriptionRepo.Delete(id)
}
