package services

import (
	"testing"
	"time"

	"clinic-scheduling-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func bookingFixtures(available bool) (*MockAppointmentRepository, *AppointmentService) {
	doctorRepo := &MockDoctorRepository{
		FindByIDFunc: func(id string) (*models.Doctor, error) {
			if id == "d1" {
				return doctorWithTimes("d1", ""), nil
			}
			return nil, nil
		},
		FindAvailableAtTimeFunc: func(doctorID string, start, end time.Time) ([]models.Doctor, error) {
			if available {
				return []models.Doctor{*doctorWithTimes(doctorID, "")}, nil
			}
			return []models.Doctor{}, nil
		},
	}
	patientRepo := &MockPatientRepository{
		FindByIDFunc: func(id string) (*models.Patient, error) {
			if id == "p1" {
				return patientFixture("p1", "pat@x.com", "555-1234"), nil
			}
			return nil, nil
		},
	}
	appointmentRepo := &MockAppointmentRepository{}

	svc := NewAppointmentService(
		appointmentRepo,
		NewDoctorService(doctorRepo),
		NewPatientService(patientRepo),
	)
	return appointmentRepo, svc
}

func TestBookAppointmentSuccess(t *testing.T) {
	repo, svc := bookingFixtures(true)

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	appointment, err := svc.BookAppointment("d1", "p1", at, "first visit")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appointment.Status)
	assert.Equal(t, at, appointment.AppointmentTime)
	assert.Equal(t, "Dr. Grey", appointment.Doctor.Name)
	assert.Equal(t, "Pat p1", appointment.Patient.Name)
	assert.Equal(t, 1, repo.SaveCallCount)
}

func TestBookAppointmentConflict(t *testing.T) {
	repo, svc := bookingFixtures(false)

	_, err := svc.BookAppointment("d1", "p1", time.Now(), "")
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
	assert.Equal(t, 0, repo.SaveCallCount)
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	repo, svc := bookingFixtures(true)

	_, err := svc.BookAppointment("missing", "p1", time.Now(), "")
	assert.ErrorIs(t, err, ErrDoctorOrPatientNotFound)
	assert.Equal(t, 0, repo.SaveCallCount)
}

func TestBookAppointmentUnknownPatient(t *testing.T) {
	repo, svc := bookingFixtures(true)

	_, err := svc.BookAppointment("d1", "missing", time.Now(), "")
	assert.ErrorIs(t, err, ErrDoctorOrPatientNotFound)
	assert.Equal(t, 0, repo.SaveCallCount)
}

func TestUpdateAppointmentStatusUnknownID(t *testing.T) {
	repo := &MockAppointmentRepository{}
	svc := NewAppointmentService(repo, NewDoctorService(&MockDoctorRepository{}), NewPatientService(&MockPatientRepository{}))

	err := svc.UpdateAppointmentStatus("missing", "COMPLETED")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointmentStatusInvalidValue(t *testing.T) {
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(id string) (*models.Appointment, error) {
			return &models.Appointment{
				BaseModel: models.BaseModel{ID: id},
				Status:    models.StatusScheduled,
			}, nil
		},
	}
	svc := NewAppointmentService(repo, NewDoctorService(&MockDoctorRepository{}), NewPatientService(&MockPatientRepository{}))

	err := svc.UpdateAppointmentStatus("a1", "NOT_A_STATUS")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	// The record must be left untouched on a parse failure.
	assert.Equal(t, 0, repo.SaveCallCount)
}

func TestUpdateAppointmentStatusSuccess(t *testing.T) {
	var saved *models.Appointment
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(id string) (*models.Appointment, error) {
			return &models.Appointment{
				BaseModel: models.BaseModel{ID: id},
				Status:    models.StatusScheduled,
			}, nil
		},
		SaveFunc: func(appointment *models.Appointment) error {
			saved = appointment
			return nil
		},
	}
	svc := NewAppointmentService(repo, NewDoctorService(&MockDoctorRepository{}), NewPatientService(&MockPatientRepository{}))

	err := svc.UpdateAppointmentStatus("a1", "COMPLETED")
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, models.StatusCompleted, saved.Status)
}

func TestGetAppointmentsByDoctorUnknownDoctor(t *testing.T) {
	svc := NewAppointmentService(&MockAppointmentRepository{}, NewDoctorService(&MockDoctorRepository{}), NewPatientService(&MockPatientRepository{}))

	_, err := svc.GetAppointmentsByDoctor("missing")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

// The patient-layer lookup gives email precedence; the appointment-layer
// credential search is a true OR. When email and phone match different
// patients, the first returns only the email match while the second returns
// appointments for both.
func TestCredentialLookupSemanticsDiffer(t *testing.T) {
	alice := patientFixture("alice", "alice@x.com", "111")
	bob := patientFixture("bob", "bob@x.com", "222")

	patientRepo := &MockPatientRepository{
		FindByEmailFunc: func(email string) (*models.Patient, error) {
			if email == alice.Email {
				return alice, nil
			}
			return nil, nil
		},
		FindByPhoneFunc: func(phone string) (*models.Patient, error) {
			if phone == bob.Phone {
				return bob, nil
			}
			return nil, nil
		},
	}
	appointmentRepo := &MockAppointmentRepository{
		FindByPatientEmailOrPhoneFunc: func(email, phone string) ([]models.Appointment, error) {
			var out []models.Appointment
			for _, p := range []*models.Patient{alice, bob} {
				if p.Email == email || p.Phone == phone {
					out = append(out, models.Appointment{
						BaseModel: models.BaseModel{ID: "appt-" + p.ID},
						PatientID: p.ID,
					})
				}
			}
			return out, nil
		},
	}

	patientSvc := NewPatientService(patientRepo)
	appointmentSvc := NewAppointmentService(appointmentRepo, NewDoctorService(&MockDoctorRepository{}), patientSvc)

	patient, err := patientSvc.GetPatientByEmailOrPhone("alice@x.com", "222")
	assert.NoError(t, err)
	assert.Equal(t, "alice", patient.ID)

	appointments, err := appointmentSvc.GetAppointmentsByPatientCredentials("alice@x.com", "222")
	assert.NoError(t, err)
	assert.Len(t, appointments, 2)
}
