package repository

import (
	"errors"
	"time"

	"clinic-scheduling-server/internal/models"

	"gorm.io/gorm"
)

// AppointmentRepository defines storage operations for appointments.
type AppointmentRepository interface {
	FindAll() ([]models.Appointment, error)
	FindByID(id string) (*models.Appointment, error)
	FindByDoctorID(doctorID string) ([]models.Appointment, error)
	FindByPatientID(patientID string) ([]models.Appointment, error)
	// FindByDoctorAndDate returns the doctor's appointments whose calendar
	// date matches, ordered by time ascending.
	FindByDoctorAndDate(doctorID string, date time.Time) ([]models.Appointment, error)
	// FindByPatientEmailOrPhone joins through patients and matches either
	// credential, ordered by time descending.
	FindByPatientEmailOrPhone(email, phone string) ([]models.Appointment, error)
	Save(appointment *models.Appointment) error
	Delete(id string) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a gorm-backed AppointmentRepository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Preload("Doctor").Preload("Patient").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.Preload("Doctor").Preload("Patient").First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(doctorID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("patient_id = ?", patientID).
		Order("appointment_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorAndDate(doctorID string, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("doctor_id = ? AND DATE(appointment_time) = ?", doctorID, date.Format("2006-01-02")).
		Order("appointment_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientEmailOrPhone(email, phone string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("patients.email = ? OR patients.phone = ?", email, phone).
		Order("appointment_time desc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(id string) error {
	return r.db.Delete(&models.Appointment{}, "id = ?", id).Error
}
