package routes

import (
	"clinic-scheduling-server/internal/config"
	"clinic-scheduling-server/internal/handlers"
	"clinic-scheduling-server/internal/repository"
	"clinic-scheduling-server/internal/services"
	"clinic-scheduling-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto the router.
// Every dependency is passed explicitly; there is no ambient registry.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)

	// Token collaborator
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpirationMinutes)

	// Services
	doctorService := services.NewDoctorService(doctorRepo)
	patientService := services.NewPatientService(patientRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, doctorService, patientService)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo, doctorService, patientService, tokens)

	// Handlers
	doctorHandler := handlers.NewDoctorHandler(doctorService, tokens)
	patientHandler := handlers.NewPatientHandler(patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)

	api := router.Group("/api")
	{
		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.BookAppointment)
			appointmentRoutes.GET("/doctor/:doctorId", appointmentHandler.GetAppointmentsByDoctor)
			appointmentRoutes.GET("/doctor/:doctorId/date/:date", appointmentHandler.GetAppointmentsByDoctorAndDate)
			appointmentRoutes.GET("/patient/search", appointmentHandler.SearchAppointmentsByPatient)
			appointmentRoutes.PUT("/:id/status", appointmentHandler.UpdateAppointmentStatus)
		}

		doctorRoutes := api.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.GetAllDoctors)
			doctorRoutes.GET("/availability/:doctorId", doctorHandler.GetDoctorAvailability)
			doctorRoutes.POST("/validate", doctorHandler.ValidateDoctor)
			doctorRoutes.GET("/specialty/:specialty", doctorHandler.GetDoctorsBySpecialty)
			doctorRoutes.POST("", doctorHandler.CreateDoctor)
		}

		patientRoutes := api.Group("/patients")
		{
			patientRoutes.GET("/search", patientHandler.SearchPatient)
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("/search-by-name", patientHandler.SearchPatientsByName)
		}

		prescriptionRoutes := api.Group("/prescriptions")
		{
			prescriptionRoutes.POST("", prescriptionHandler.CreatePrescription)
			prescriptionRoutes.GET("/doctor/:doctorId", prescriptionHandler.GetPrescriptionsByDoctor)
			prescriptionRoutes.GET("/patient/:patientId", prescriptionHandler.GetPrescriptionsByPatient)
			prescriptionRoutes.DELETE("/:id", prescriptionHandler.DeletePrescription)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
