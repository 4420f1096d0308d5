package handlers

import (
	"net/http"

	"clinic-scheduling-server/internal/middleware"
	"clinic-scheduling-server/internal/services"
	"clinic-scheduling-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// PrescriptionHandler handles prescription related requests.
type PrescriptionHandler struct {
	prescriptionService *services.PrescriptionService
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(prescriptionService *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService}
}

// CreatePrescriptionRequest represents the request body for issuing a prescription.
type CreatePrescriptionRequest struct {
	DoctorID     string `json:"doctorId" binding:"required"`
	PatientID    string `json:"patientId" binding:"required"`
	Medication   string `json:"medication" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Instructions string `json:"instructions"`
}

// CreatePrescription handles issuing a new prescription. The bearer token is
// checked for validity by the service; an invalid or missing token is a 400
// with the error flattened into the envelope.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	token := middleware.BearerToken(c)

	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prescription, err := h.prescriptionService.CreatePrescription(
		token, req.DoctorID, req.PatientID, req.Medication, req.Dosage, req.Instructions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"prescriptionId": prescription.ID,
		"message":        "Prescription created successfully",
		"prescription": gin.H{
			"id":           prescription.ID,
			"doctorName":   prescription.Doctor.Name,
			"patientName":  prescription.Patient.Name,
			"medication":   prescription.Medication,
			"dosage":       prescription.Dosage,
			"instructions": prescription.Instructions,
			"createdAt":    prescription.CreatedAt.Format(dateTimeLayout),
		},
	})
}

// GetPrescriptionsByDoctor handles fetching prescriptions issued by a doctor.
func (h *PrescriptionHandler) GetPrescriptionsByDoctor(c *gin.Context) {
	doctorID := c.Param("doctorId")

	prescriptions, err := h.prescriptionService.GetPrescriptionsByDoctor(doctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := make([]gin.H, len(prescriptions))
	for i, p := range prescriptions {
		list[i] = gin.H{
			"id":           p.ID,
			"patientName":  p.Patient.Name,
			"patientEmail": p.Patient.Email,
			"medication":   p.Medication,
			"dosage":       p.Dosage,
			"instructions": p.Instructions,
			"createdAt":    p.CreatedAt.Format(dateTimeLayout),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"doctorId":      doctorID,
		"prescriptions": list,
		"count":         len(prescriptions),
	})
}

// GetPrescriptionsByPatient handles fetching prescriptions issued for a patient.
func (h *PrescriptionHandler) GetPrescriptionsByPatient(c *gin.Context) {
	patientID := c.Param("patientId")

	prescriptions, err := h.prescriptionService.GetPrescriptionsByPatient(patientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := make([]gin.H, len(prescriptions))
	for i, p := range prescriptions {
		list[i] = gin.H{
			"id":              p.ID,
			"doctorName":      p.Doctor.Name,
			"doctorSpecialty": p.Doctor.Specialty,
			"medication":      p.Medication,
			"dosage":          p.Dosage,
			"instructions":    p.Instructions,
			"createdAt":       p.CreatedAt.Format(dateTimeLayout),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"patientId":     patientID,
		"prescriptions": list,
		"count":         len(prescriptions),
	})
}

// DeletePrescription handles removing a prescription.
func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	if err := h.prescriptionService.DeletePrescription(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prescription deleted successfully",
	})
}
