package repository

import (
	"errors"

	"clinic-scheduling-server/internal/models"

	"gorm.io/gorm"
)

// PrescriptionRepository defines storage operations for prescriptions.
type PrescriptionRepository interface {
	FindAll() ([]models.Prescription, error)
	FindByID(id string) (*models.Prescription, error)
	FindByDoctorID(doctorID string) ([]models.Prescription, error)
	FindByPatientID(patientID string) ([]models.Prescription, error)
	Save(prescription *models.Prescription) error
	Delete(id string) error
}

type prescriptionRepository struct {
	db *gorm.DB
}

// NewPrescriptionRepository creates a gorm-backed PrescriptionRepository.
func NewPrescriptionRepository(db *gorm.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) FindAll() ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	if err := r.db.Preload("Doctor").Preload("Patient").Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByID(id string) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := r.db.Preload("Doctor").Preload("Patient").First(&prescription, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByDoctorID(doctorID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByPatientID(patientID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("patient_id = ?", patientID).
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Save(prescription *models.Prescription) error {
	return r.db.Save(prescription).Error
}

func (r *prescriptionRepository) Delete(id string) error {
	return r.db.Delete(&models.Prescription{}, "id = ?", id).Error
}
