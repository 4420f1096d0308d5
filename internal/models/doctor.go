package models

// Doctor represents a practitioner who can be booked for appointments.
type Doctor struct {
	BaseModel
	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`
	// AvailableTimes is a comma-separated list of "HH:MM" tokens the doctor
	// has declared bookable. Empty means the default business-hours ladder.
	AvailableTimes string `gorm:"size:255" json:"availableTimes"`

	// Relations (not always preloaded)
	Appointments  []Appointment  `gorm:"foreignKey:DoctorID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:DoctorID" json:"-"`
}
