package services

import (
	"fmt"
	"time"

	"clinic-scheduling-server/internal/models"
	"clinic-scheduling-server/internal/repository"
)

// AppointmentService wraps appointment storage and owns the booking rule.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	doctorService   *DoctorService
	patientService  *PatientService
}

// NewAppointmentService creates an AppointmentService with its collaborators.
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	doctorService *DoctorService,
	patientService *PatientService,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		doctorService:   doctorService,
		patientService:  patientService,
	}
}

// GetAllAppointments returns all appointments.
func (s *AppointmentService) GetAllAppointments() ([]models.Appointment, error) {
	return s.appointmentRepo.FindAll()
}

// GetAppointmentByID returns the appointment with the given id, or nil if absent.
func (s *AppointmentService) GetAppointmentByID(id string) (*models.Appointment, error) {
	return s.appointmentRepo.FindByID(id)
}

// BookAppointment checks that doctor and patient exist and that the doctor is
// free around the requested time, then persists a new SCHEDULED appointment.
// The availability check and the insert are two separate storage calls with
// no transaction spanning them; two concurrent bookings can both pass the
// check and both insert.
func (s *AppointmentService) BookAppointment(doctorID, patientID string, appointmentTime time.Time, notes string) (*models.Appointment, error) {
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

	available, err := s.doctorService.IsDoctorAvailableAtTime(doctorID, appointmentTime)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrDoctorUnavailable
	}

	appointment := &models.Appointment{
		DoctorID:        doctorID,
		PatientID:       patientID,
		AppointmentTime: appointmentTime,
		Status:          models.StatusScheduled,
		Notes:           notes,
	}
	if err := s.appointmentRepo.Save(appointment); err != nil {
		return nil, err
	}

	appointment.Doctor = *doctor
	appointment.Patient = *patient
	return appointment, nil
}

// GetAppointmentsByDoctor returns all appointments for a doctor, failing with
// ErrDoctorNotFound when the doctor does not exist.
func (s *AppointmentService) GetAppointmentsByDoctor(doctorID string) ([]models.Appointment, error) {
	doctor, err := s.doctorService.GetDoctorByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return s.appointmentRepo.FindByDoctorID(doctorID)
}

// GetAppointmentsByDoctorAndDate returns the doctor's appointments on the
// given calendar date, ordered by time ascending.
func (s *AppointmentService) GetAppointmentsByDoctorAndDate(doctorID string, date time.Time) ([]models.Appointment, error) {
	return s.appointmentRepo.FindByDoctorAndDate(doctorID, date)
}

// GetAppointmentsByPatientCredentials returns appointments whose patient
// matches either credential. Unlike PatientService.GetPatientByEmailOrPhone,
// this is a true OR at the query level.
func (s *AppointmentService) GetAppointmentsByPatientCredentials(email, phone string) ([]models.Appointment, error) {
	return s.appointmentRepo.FindByPatientEmailOrPhone(email, phone)
}

// UpdateAppointmentStatus parses the status strictly and overwrites the
// record. Unknown ids fail with ErrAppointmentNotFound; unrecognized status
// values fail with ErrInvalidStatus and leave the record untouched.
func (s *AppointmentService) UpdateAppointmentStatus(id, newStatus string) error {
	appointment, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	status, err := models.ParseAppointmentStatus(newStatus)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	appointment.Status = status
	return s.appointmentRepo.Save(appointment)
}

// DeleteAppointment removes an appointment by id.
func (s *AppointmentService) DeleteAppointment(id string) error {
	return s.appointmentRepo.Delete(id)
}
