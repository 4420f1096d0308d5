package models

// Patient represents a registered patient.
type Patient struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone   string `gorm:"size:30;index" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	// Relations (not always preloaded)
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"-"`
}
