package services

import (
	"errors"
	"time"

	"clinic-scheduling-server/internal/models"
	"clinic-scheduling-server/internal/repository"
	"clinic-scheduling-server/internal/utils"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repository.DoctorRepository       = (*MockDoctorRepository)(nil)
	_ repository.PatientRepository      = (*MockPatientRepository)(nil)
	_ repository.AppointmentRepository  = (*MockAppointmentRepository)(nil)
	_ repository.PrescriptionRepository = (*MockPrescriptionRepository)(nil)
	_ TokenValidator                    = (*MockTokenValidator)(nil)
)

// MockDoctorRepository is a function-field mock of DoctorRepository.
type MockDoctorRepository struct {
	FindAllFunc             func() ([]models.Doctor, error)
	FindByIDFunc            func(id string) (*models.Doctor, error)
	FindByEmailFunc         func(email string) (*models.Doctor, error)
	FindBySpecialtyFunc     func(specialty string) ([]models.Doctor, error)
	FindAvailableAtTimeFunc func(doctorID string, start, end time.Time) ([]models.Doctor, error)
	SaveFunc                func(doctor *models.Doctor) error

	SaveCallCount int
}

func (m *MockDoctorRepository) FindAll() ([]models.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindByID(id string) (*models.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	if m.FindBySpecialtyFunc != nil {
		return m.FindBySpecialtyFunc(specialty)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindAvailableAtTime(doctorID string, start, end time.Time) ([]models.Doctor, error) {
	if m.FindAvailableAtTimeFunc != nil {
		return m.FindAvailableAtTimeFunc(doctorID, start, end)
	}
	return nil, nil
}

func (m *MockDoctorRepository) Save(doctor *models.Doctor) error {
	m.SaveCallCount++
	if m.SaveFunc != nil {
		return m.SaveFunc(doctor)
	}
	return nil
}

// MockPatientRepository is a function-field mock of PatientRepository.
type MockPatientRepository struct {
	FindAllFunc              func() ([]models.Patient, error)
	FindByIDFunc             func(id string) (*models.Patient, error)
	FindByEmailFunc          func(email string) (*models.Patient, error)
	FindByPhoneFunc          func(phone string) (*models.Patient, error)
	FindByNameContainingFunc func(name string) ([]models.Patient, error)
	SaveFunc                 func(patient *models.Patient) error

	SaveCallCount int
}

func (m *MockPatientRepository) FindAll() ([]models.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByID(id string) (*models.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByEmail(email string) (*models.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByPhone(phone string) (*models.Patient, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(phone)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByNameContaining(name string) ([]models.Patient, error) {
	if m.FindByNameContainingFunc != nil {
		return m.FindByNameContainingFunc(name)
	}
	return nil, nil
}

func (m *MockPatientRepository) Save(patient *models.Patient) error {
	m.SaveCallCount++
	if m.SaveFunc != nil {
		return m.SaveFunc(patient)
	}
	return nil
}

// MockAppointmentRepository is a function-field mock of AppointmentRepository.
type MockAppointmentRepository struct {
	FindAllFunc                   func() ([]models.Appointment, error)
	FindByIDFunc                  func(id string) (*models.Appointment, error)
	FindByDoctorIDFunc            func(doctorID string) ([]models.Appointment, error)
	FindByPatientIDFunc           func(patientID string) ([]models.Appointment, error)
	FindByDoctorAndDateFunc       func(doctorID string, date time.Time) ([]models.Appointment, error)
	FindByPatientEmailOrPhoneFunc func(email, phone string) ([]models.Appointment, error)
	SaveFunc                      func(appointment *models.Appointment) error
	DeleteFunc                    func(id string) error

	SaveCallCount int
}

func (m *MockAppointmentRepository) FindAll() ([]models.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByID(id string) (*models.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDoctorID(doctorID string) ([]models.Appointment, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByPatientID(patientID string) ([]models.Appointment, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(patientID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDoctorAndDate(doctorID string, date time.Time) ([]models.Appointment, error) {
	if m.FindByDoctorAndDateFunc != nil {
		return m.FindByDoctorAndDateFunc(doctorID, date)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByPatientEmailOrPhone(email, phone string) ([]models.Appointment, error) {
	if m.FindByPatientEmailOrPhoneFunc != nil {
		return m.FindByPatientEmailOrPhoneFunc(email, phone)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) Save(appointment *models.Appointment) error {
	m.SaveCallCount++
	if m.SaveFunc != nil {
		return m.SaveFunc(appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) Delete(id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

// MockPrescriptionRepository is a function-field mock of PrescriptionRepository.
type MockPrescriptionRepository struct {
	FindAllFunc         func() ([]models.Prescription, error)
	FindByIDFunc        func(id string) (*models.Prescription, error)
	FindByDoctorIDFunc  func(doctorID string) ([]models.Prescription, error)
	FindByPatientIDFunc func(patientID string) ([]models.Prescription, error)
	SaveFunc            func(prescription *models.Prescription) error
	DeleteFunc          func(id string) error

	SaveCallCount int
	Saved         []models.Prescription
}

func (m *MockPrescriptionRepository) FindAll() ([]models.Prescription, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}

func (m *MockPrescriptionRepository) FindByID(id string) (*models.Prescription, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

func (m *MockPrescriptionRepository) FindByDoctorID(doctorID string) ([]models.Prescription, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(doctorID)
	}
	out := []models.Prescription{}
	for _, p := range m.Saved {
		if p.DoctorID == doctorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPrescriptionRepository) FindByPatientID(patientID string) ([]models.Prescription, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(patientID)
	}
	out := []models.Prescription{}
	for _, p := range m.Saved {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPrescriptionRepository) Save(prescription *models.Prescription) error {
	m.SaveCallCount++
	if m.SaveFunc != nil {
		return m.SaveFunc(prescription)
	}
	m.Saved = append(m.Saved, *prescription)
	return nil
}

func (m *MockPrescriptionRepository) Delete(id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

// MockTokenValidator accepts any token unless Err is set.
type MockTokenValidator struct {
	Err    error
	Claims *utils.Claims
}

func (m *MockTokenValidator) Validate(token string) (*utils.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if token == "" {
		return nil, errors.New("empty token")
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return &utils.Claims{Subject: "doc@example.com", Role: "DOCTOR"}, nil
}
