package handlers

import (
	"errors"
	"net/http"
	"time"

	"clinic-scheduling-server/internal/services"
	"clinic-scheduling-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// Wire formats for date-time payloads. Appointment times carry no offset.
const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// BookAppointmentRequest represents the request body for booking an appointment.
type BookAppointmentRequest struct {
	DoctorID        string `json:"doctorId" binding:"required"`
	PatientID       string `json:"patientId" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`
	Notes           string `json:"notes"`
}

// BookAppointment handles creating a new appointment.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointmentTime, err := time.Parse(dateTimeLayout, req.AppointmentTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid appointmentTime format, expected " + dateTimeLayout,
		})
		return
	}

	appointment, err := h.appointmentService.BookAppointment(req.DoctorID, req.PatientID, appointmentTime, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"appointmentId": appointment.ID,
		"message":       "Appointment booked successfully",
		"appointment": gin.H{
			"id":              appointment.ID,
			"doctorName":      appointment.Doctor.Name,
			"patientName":     appointment.Patient.Name,
			"appointmentTime": appointment.AppointmentTime.Format(dateTimeLayout),
			"status":          appointment.Status,
			"notes":           appointment.Notes,
		},
	})
}

// GetAppointmentsByDoctorAndDate handles fetching a doctor's appointments on a date.
func (h *AppointmentHandler) GetAppointmentsByDoctorAndDate(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected " + dateLayout})
		return
	}

	appointments, err := h.appointmentService.GetAppointmentsByDoctorAndDate(doctorID, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := make([]gin.H, len(appointments))
	for i, a := range appointments {
		list[i] = gin.H{
			"id":              a.ID,
			"patientName":     a.Patient.Name,
			"patientEmail":    a.Patient.Email,
			"appointmentTime": a.AppointmentTime.Format(dateTimeLayout),
			"status":          a.Status,
			"notes":           a.Notes,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"doctorId":     doctorID,
		"date":         date.Format(dateLayout),
		"appointments": list,
		"count":        len(appointments),
	})
}

// GetAppointmentsByDoctor handles fetching all appointments for a doctor.
func (h *AppointmentHandler) GetAppointmentsByDoctor(c *gin.Context) {
	doctorID := c.Param("doctorId")

	appointments, err := h.appointmentService.GetAppointmentsByDoctor(doctorID)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	list := make([]gin.H, len(appointments))
	for i, a := range appointments {
		list[i] = gin.H{
			"id":              a.ID,
			"patientName":     a.Patient.Name,
			"patientEmail":    a.Patient.Email,
			"appointmentTime": a.AppointmentTime.Format(dateTimeLayout),
			"status":          a.Status,
			"notes":           a.Notes,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"doctorId":     doctorID,
		"appointments": list,
		"count":        len(appointments),
	})
}

// SearchAppointmentsByPatient handles fetching appointments by patient credentials.
// Either credential matching is enough; this is a true OR at the query level.
func (h *AppointmentHandler) SearchAppointmentsByPatient(c *gin.Context) {
	email := c.Query("email")
	phone := c.Query("phone")

	if email == "" && phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email or phone is required"})
		return
	}

	appointments, err := h.appointmentService.GetAppointmentsByPatientCredentials(email, phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := make([]gin.H, len(appointments))
	for i, a := range appointments {
		list[i] = gin.H{
			"id":              a.ID,
			"doctorName":      a.Doctor.Name,
			"doctorSpecialty": a.Doctor.Specialty,
			"appointmentTime": a.AppointmentTime.Format(dateTimeLayout),
			"status":          a.Status,
			"notes":           a.Notes,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": list,
		"count":        len(appointments),
	})
}

// UpdateAppointmentStatusRequest represents the request body for a status update.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAppointmentStatus handles updating the status of an appointment.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := h.appointmentService.UpdateAppointmentStatus(id, req.Status); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment status updated successfully",
	})
}
