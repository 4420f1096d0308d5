package repository

import (
	"errors"

	"clinic-scheduling-server/internal/models"

	"gorm.io/gorm"
)

// PatientRepository defines storage operations for patients.
type PatientRepository interface {
	FindAll() ([]models.Patient, error)
	FindByID(id string) (*models.Patient, error)
	FindByEmail(email string) (*models.Patient, error)
	FindByPhone(phone string) (*models.Patient, error)
	FindByNameContaining(name string) ([]models.Patient, error)
	Save(patient *models.Patient) error
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a gorm-backed PatientRepository.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) FindAll() ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("email = ?", email).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByPhone(phone string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("phone = ?", phone).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByNameContaining(name string) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Save(patient *models.Patient) error {
	return r.db.Save(patient).Error
}
