package utils

import (
	"Mercyvale/models"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrEndBeforeStart = errors.New("end time must not be before start time")

// Genders accepted on patient records; mirrored by the database check
// constraint.
var Genders = []interface{}{"Male", "Female", "Other", "Unknown"}

// ValidateAppointment checks the appointment payload before it reaches the
// store. Referential validity of patient/physician ids is NOT checked here;
// the database constraint is the authority.
func ValidateAppointment(appointment models.Appointment) error {
	return validation.ValidateStruct(&appointment,
		validation.Field(&appointment.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&appointment.Description, validation.Length(0, 2000)),
		validation.Field(&appointment.StartTime, validation.Required),
		validation.Field(&appointment.EndTime, validation.Required, validation.By(endNotBeforeStart(appointment))),
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.PhysicianID, validation.Required),
	)
}

func endNotBeforeStart(appointment models.Appointment) validation.RuleFunc {
	return func(interface{}) error {
		if appointment.EndTime.Before(appointment.StartTime) {
			return ErrEndBeforeStart
		}
		return nil
	}
}

// ValidatePatient checks the patient payload.
func ValidatePatient(patient models.Patient) error {
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&patient.Gender, validation.Required, validation.In(Genders...)),
		validation.Field(&patient.DateOfBirth, validation.Required),
		validation.Field(&patient.InsurancePlanID, validation.Required),
	)
}

// ValidatePhysician checks the physician payload.
func ValidatePhysician(physician models.Physician) error {
	return validation.ValidateStruct(&physician,
		validation.Field(&physician.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&physician.LicenseNumber, validation.Required, validation.Min(1)),
	)
}

// ValidateTreatment checks a catalog treatment payload.
func ValidateTreatment(treatment models.Treatment) error {
	return validation.ValidateStruct(&treatment,
		validation.Field(&treatment.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&treatment.Price, validation.Min(0.0)),
	)
}

// ValidateInsurancePlan checks an insurance plan payload.
func ValidateInsurancePlan(plan models.InsurancePlan) error {
	return validation.ValidateStruct(&plan,
		validation.Field(&plan.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&plan.Copay, validation.Min(0.0)),
		validation.Field(&plan.Deductible, validation.Min(0.0)),
		validation.Field(&plan.CoinsurancePercent, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&plan.OutOfPocketMax, validation.Min(0.0)),
	)
}
