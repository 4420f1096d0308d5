package handlers

import (
	"net/http"
	"time"

	"clinic-scheduling-server/internal/models"
	"clinic-scheduling-server/internal/services"
	"clinic-scheduling-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler handles doctor related requests.
type DoctorHandler struct {
	doctorService *services.DoctorService
	tokens        *utils.TokenManager
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctorService *services.DoctorService, tokens *utils.TokenManager) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService, tokens: tokens}
}

// GetAllDoctors handles fetching the full doctor list.
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.doctorService.GetAllDoctors()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// GetDoctorAvailability handles fetching a doctor's available time slots.
// The date is echoed back but does not change the slots.
func (h *DoctorHandler) GetDoctorAvailability(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected " + dateLayout})
		return
	}

	doctor, err := h.doctorService.GetDoctorByID(doctorID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctor: "+err.Error())
		return
	}
	if doctor == nil {
		utils.NotFound(c, "Doctor not found")
		return
	}

	slots, err := h.doctorService.GetAvailableTimeSlots(doctorID, date)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch time slots: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctorId":           doctorID,
		"doctorName":         doctor.Name,
		"date":               date.Format(dateLayout),
		"availableTimeSlots": slots,
	})
}

// ValidateDoctorRequest represents the request body for doctor validation.
type ValidateDoctorRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ValidateDoctor handles the doctor credential check. A doctor whose email
// exists gets a DOCTOR token; there is no password.
func (h *DoctorHandler) ValidateDoctor(c *gin.Context) {
	var req ValidateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	valid, err := h.doctorService.ValidateDoctorCredentials(req.Email)
	if err != nil {
		utils.InternalServerError(c, "Failed to validate credentials: "+err.Error())
		return
	}

	if !valid {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"message": "Invalid doctor credentials",
		})
		return
	}

	token, err := h.tokens.Generate(req.Email, "DOCTOR")
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"token": token,
		"role":  "DOCTOR",
	})
}

// GetDoctorsBySpecialty handles fetching doctors with a given specialty.
func (h *DoctorHandler) GetDoctorsBySpecialty(c *gin.Context) {
	doctors, err := h.doctorService.GetDoctorsBySpecialty(c.Param("specialty"))
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctorRequest represents the request body for creating a doctor.
type CreateDoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Specialty      string `json:"specialty"`
	AvailableTimes string `json:"availableTimes"`
}

// CreateDoctor handles creating a new doctor.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := models.Doctor{
		Name:           req.Name,
		Email:          req.Email,
		Specialty:      req.Specialty,
		AvailableTimes: req.AvailableTimes,
	}
	if err := h.doctorService.SaveDoctor(&doctor); err != nil {
		utils.BadRequest(c, "Failed to create doctor: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, doctor)
}
