package repository

import (
	"errors"
	"time"

	"clinic-scheduling-server/internal/models"

	"gorm.io/gorm"
)

// DoctorRepository defines storage operations for doctors.
type DoctorRepository interface {
	FindAll() ([]models.Doctor, error)
	FindByID(id string) (*models.Doctor, error)
	FindByEmail(email string) (*models.Doctor, error)
	FindBySpecialty(specialty string) ([]models.Doctor, error)
	// FindAvailableAtTime returns the doctor row iff it has no appointment
	// inside [start, end], or no appointments at all. An empty result means
	// the doctor is booked somewhere in the window (or does not exist).
	FindAvailableAtTime(doctorID string, start, end time.Time) ([]models.Doctor, error)
	Save(doctor *models.Doctor) error
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a gorm-backed DoctorRepository.
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.Where("email = ?", email).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Where("specialty = ?", specialty).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindAvailableAtTime(doctorID string, start, end time.Time) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.
		Distinct("doctors.*").
		Joins("LEFT JOIN appointments ON appointments.doctor_id = doctors.id").
		Where("doctors.id = ? AND (appointments.appointment_time IS NULL OR appointments.appointment_time NOT BETWEEN ? AND ?)",
			doctorID, start, end).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Save(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}
