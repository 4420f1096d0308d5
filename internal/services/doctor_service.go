package services

import (
	"fmt"
	"strings"
	"time"

	"clinic-scheduling-server/internal/models"
	"clinic-scheduling-server/internal/repository"
)

// DoctorService wraps doctor storage with lookup and availability logic.
type DoctorService struct {
	doctorRepo repository.DoctorRepository
}

// NewDoctorService creates a DoctorService over the given repository.
func NewDoctorService(doctorRepo repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo}
}

// GetAllDoctors returns all doctors in stored order.
func (s *DoctorService) GetAllDoctors() ([]models.Doctor, error) {
	return s.doctorRepo.FindAll()
}

// GetDoctorByID returns the doctor with the given id, or nil if absent.
func (s *DoctorService) GetDoctorByID(id string) (*models.Doctor, error) {
	return s.doctorRepo.FindByID(id)
}

// ValidateDoctorCredentials reports whether a doctor with the email exists.
// This is the entirety of doctor authentication: no password is involved.
func (s *DoctorService) ValidateDoctorCredentials(email string) (bool, error) {
	doctor, err := s.doctorRepo.FindByEmail(email)
	if err != nil {
		return false, err
	}
	return doctor != nil, nil
}

// GetAvailableTimeSlots returns the doctor's declared slots, or the default
// business-hours ladder when none are declared. Slots are static per doctor;
// the date argument does not affect the result. Unknown doctors get an empty
// slice.
func (s *DoctorService) GetAvailableTimeSlots(doctorID string, date time.Time) ([]string, error) {
	timeSlots := []string{}
	doctor, err := s.doctorRepo.FindByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return timeSlots, nil
	}

	if doctor.AvailableTimes != "" {
		for _, slot := range strings.Split(doctor.AvailableTimes, ",") {
			timeSlots = append(timeSlots, strings.TrimSpace(slot))
		}
	} else {
		for hour := 9; hour <= 17; hour++ {
			timeSlots = append(timeSlots, fmt.Sprintf("%02d:00", hour))
		}
	}

	return timeSlots, nil
}

// SaveDoctor persists a doctor record.
func (s *DoctorService) SaveDoctor(doctor *models.Doctor) error {
	return s.doctorRepo.Save(doctor)
}

// GetDoctorsBySpecialty returns doctors with an exact specialty match.
func (s *DoctorService) GetDoctorsBySpecialty(specialty string) ([]models.Doctor, error) {
	return s.doctorRepo.FindBySpecialty(specialty)
}

// IsDoctorAvailableAtTime checks the 30-minute window either side of the
// requested time. It is an existence check over a join: callers learn yes
// or no, never which appointment conflicts.
func (s *DoctorService) IsDoctorAvailableAtTime(doctorID string, appointmentTime time.Time) (bool, error) {
	startTime := appointmentTime.Add(-30 * time.Minute)
	endTime := appointmentTime.Add(30 * time.Minute)

	availableDoctors, err := s.doctorRepo.FindAvailableAtTime(doctorID, startTime, endTime)
	if err != nil {
		return false, err
	}
	return len(availableDoctors) > 0, nil
}
