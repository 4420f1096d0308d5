package handlers

import (
	"net/http"
	"strings"

	"clinic-scheduling-server/internal/models"
	"clinic-scheduling-server/internal/services"
	"clinic-scheduling-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler handles patient related requests.
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// SearchPatient handles looking up a patient by email or phone. Email wins
// when both are supplied. A miss is a normal 200 with found:false.
func (h *PatientHandler) SearchPatient(c *gin.Context) {
	email := c.Query("email")
	phone := c.Query("phone")

	if email == "" && phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email or phone is required"})
		return
	}

	patient, err := h.patientService.GetPatientByEmailOrPhone(email, phone)
	if err != nil {
		utils.InternalServerError(c, "Failed to search patient: "+err.Error())
		return
	}

	if patient == nil {
		c.JSON(http.StatusOK, gin.H{
			"found":   false,
			"message": "Patient not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found": true,
		"patient": gin.H{
			"id":      patient.ID,
			"name":    patient.Name,
			"email":   patient.Email,
			"phone":   patient.Phone,
			"address": patient.Address,
		},
	})
}

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreatePatient handles registering a new patient. Duplicate emails are
// rejected before the insert.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	exists, err := h.patientService.ExistsByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "Failed to check email: "+err.Error())
		return
	}
	if exists {
		utils.BadRequest(c, "Patient with this email already exists")
		return
	}

	patient := models.Patient{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.patientService.SavePatient(&patient); err != nil {
		utils.BadRequest(c, "Failed to create patient: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, patient)
}

// SearchPatientsByName handles case-insensitive partial name search.
func (h *PatientHandler) SearchPatientsByName(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	patients, err := h.patientService.SearchPatientsByName(name)
	if err != nil {
		utils.InternalServerError(c, "Failed to search patients: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}
