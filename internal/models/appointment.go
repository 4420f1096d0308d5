package models

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// ParseAppointmentStatus matches a raw string against the recognized status
// values. Returns an error for anything else rather than letting free-form
// strings reach the database.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), nil
	}
	return "", fmt.Errorf("invalid appointment status: %q", s)
}

// Appointment represents a scheduled visit between a doctor and a patient
type Appointment struct {
	BaseModel
	DoctorID        string            `gorm:"size:36;index" json:"doctorId"`
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
	AppointmentTime time.Time         `gorm:"index" json:"appointmentTime"`
	Status          AppointmentStatus `gorm:"size:20;default:'SCHEDULED'" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes"`

	// Relations
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
