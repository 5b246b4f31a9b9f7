package models

import (
	"time"
)

// InsurancePlan model. Catalog entity referenced by patients; no
// back-navigation is kept on the plan side.
type InsurancePlan struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name               string  `gorm:"column:name;not null" json:"name"`
	Copay              float64 `gorm:"column:copay;not null" json:"copay"`
	Deductible         float64 `gorm:"column:deductible;not null" json:"deductible"`
	CoinsurancePercent float64 `gorm:"column:coinsurance_percent;not null" json:"coinsurance_percent"`
	OutOfPocketMax     float64 `gorm:"column:out_of_pocket_max;not null" json:"out_of_pocket_max"`
}

func (InsurancePlan) TableName() string {
	return "insurance_plan"
}

// Patient model
type Patient struct {
	ID               uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name             string        `gorm:"column:name;not null;index" json:"name"`
	AddressLine      string        `gorm:"column:address_line" json:"address_line"`
	DateOfBirth      time.Time     `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Gender           string        `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other', 'Unknown');not null" json:"gender"`
	Race             string        `gorm:"column:race" json:"race"`
	InsurancePlanID  uint          `gorm:"column:insurance_plan_id;not null;index" json:"insurance_plan_id"`
	Balance          float64       `gorm:"column:balance" json:"balance"`
	TotalPayThisYear float64       `gorm:"column:total_pay_this_year" json:"total_pay_this_year"`
	CreatedAt        time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	InsurancePlan    InsurancePlan `gorm:"foreignKey:InsurancePlanID;references:ID" json:"insurance_plan"`
	Appointments     []Appointment `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Bills            []Bill        `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Physician model
type Physician struct {
	ID              uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string        `gorm:"column:name;not null;index" json:"name"`
	LicenseNumber   int           `gorm:"column:license_number;not null" json:"license_number"`
	GraduationDate  time.Time     `gorm:"column:graduation_date" json:"graduation_date"`
	Specializations string        `gorm:"column:specializations" json:"specializations"`
	CreatedAt       time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments    []Appointment `gorm:"foreignKey:PhysicianID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Physician) TableName() string {
	return "physician"
}

// Treatment model. Shared catalog entry; join rows reference it, no single
// appointment owns it.
type Treatment struct {
	ID    uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name  string  `gorm:"column:name;not null;index" json:"name"`
	Price float64 `gorm:"column:price;not null" json:"price"`
}

func (Treatment) TableName() string {
	return "treatment"
}

// AppointmentTreatment model. Pure join row between an appointment and a
// catalog treatment; it lives only as long as its appointment does.
type AppointmentTreatment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AppointmentID uint      `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	TreatmentID   uint      `gorm:"column:treatment_id;not null;index" json:"treatment_id"`
	Treatment     Treatment `gorm:"foreignKey:TreatmentID;references:ID;constraint:OnDelete:CASCADE" json:"treatment"`
}

func (AppointmentTreatment) TableName() string {
	return "appointment_treatment"
}

// Appointment model. Aggregate root: an appointment carries its treatment
// join rows and at most one bill, and those dependents share its lifetime.
// Start and end times are timezone-naive instants stored as given.
type Appointment struct {
	ID          uint                   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string                 `gorm:"column:title;not null" json:"title"`
	Description string                 `gorm:"column:description" json:"description"`
	StartTime   time.Time              `gorm:"column:start_time;not null;index" json:"start_time"`
	EndTime     time.Time              `gorm:"column:end_time;not null;index" json:"end_time"`
	PatientID   uint                   `gorm:"column:patient_id;not null;index" json:"patient_id"`
	PhysicianID uint                   `gorm:"column:physician_id;not null;index" json:"physician_id"`
	CreatedAt   time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient     Patient                `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
	Physician   Physician              `gorm:"foreignKey:PhysicianID;references:ID" json:"physician"`
	Treatments  []AppointmentTreatment `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"treatments"`
	Bill        *Bill                  `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"bill"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// Bill model. One bill per appointment, enforced by the unique index on
// appointment_id. The payer reference is nullable and independent of the
// appointment's patient; callers must not assume the two are equal.
type Bill struct {
	ID            uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Amount        float64 `gorm:"column:amount;not null" json:"amount"`
	OutOfPocket   float64 `gorm:"column:out_of_pocket;not null" json:"out_of_pocket"`
	AppointmentID uint    `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	PatientID     *uint   `gorm:"column:patient_id;index" json:"patient_id"`
}

func (Bill) TableName() string {
	return "bill"
}
