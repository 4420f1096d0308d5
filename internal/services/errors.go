package services

import "errors"

// Sentinel errors surfaced to handlers. The messages double as the API error
// strings, so they keep their client-facing capitalization.
var (
	ErrDoctorOrPatientNotFound = errors.New("Doctor or Patient not found")
	ErrDoctorUnavailable       = errors.New("Doctor is not available at the requested time")
	ErrDoctorNotFound          = errors.New("Doctor not found")
	ErrAppointmentNotFound     = errors.New("Appointment not found")
	ErrInvalidToken            = errors.New("Invalid or expired token")
	ErrInvalidStatus           = errors.New("Invalid appointment status")
)
