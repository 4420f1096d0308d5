package models

// Prescription represents a medication order issued by a doctor for a patient.
type Prescription struct {
	BaseModel
	DoctorID     string `gorm:"size:36;index" json:"doctorId"`
	PatientID    string `gorm:"size:36;index" json:"patientId"`
	Medication   string `gorm:"size:255;not null" json:"medication"`
	Dosage       string `gorm:"size:100;not null" json:"dosage"`
	Instructions string `gorm:"type:text" json:"instructions"`

	// Relations
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
