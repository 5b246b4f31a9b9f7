package utils

import (
	"Mercyvale/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateAppointment(t *testing.T) {
	valid := models.Appointment{
		Title:       "Checkup",
		StartTime:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC),
		PatientID:   1,
		PhysicianID: 1,
	}
	assert.NoError(t, ValidateAppointment(valid))

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, ValidateAppointment(missingTitle))

	missingPatient := valid
	missingPatient.PatientID = 0
	assert.Error(t, ValidateAppointment(missingPatient))

	endBeforeStart := valid
	endBeforeStart.EndTime = valid.StartTime.Add(-time.Hour)
	assert.Error(t, ValidateAppointment(endBeforeStart))

	// A zero-length appointment is allowed.
	zeroLength := valid
	zeroLength.EndTime = valid.StartTime
	assert.NoError(t, ValidateAppointment(zeroLength))
}

func TestValidatePatient(t *testing.T) {
	valid := models.Patient{
		Name:            "Ada Moran",
		DateOfBirth:     time.Date(1987, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:          "Female",
		InsurancePlanID: 1,
	}
	assert.NoError(t, ValidatePatient(valid))

	badGender := valid
	badGender.Gender = "N/A"
	assert.Error(t, ValidatePatient(badGender))

	noPlan := valid
	noPlan.InsurancePlanID = 0
	assert.Error(t, ValidatePatient(noPlan))
}

func TestValidateTreatment(t *testing.T) {
	assert.NoError(t, ValidateTreatment(models.Treatment{Name: "X-Ray", Price: 250}))
	assert.Error(t, ValidateTreatment(models.Treatment{Name: "", Price: 10}))
	assert.Error(t, ValidateTreatment(models.Treatment{Name: "X-Ray", Price: -1}))
}

func TestValidateInsurancePlan(t *testing.T) {
	valid := models.InsurancePlan{Name: "Standard PPO", Copay: 25, Deductible: 1500, CoinsurancePercent: 20, OutOfPocketMax: 6000}
	assert.NoError(t, ValidateInsurancePlan(valid))

	badCoinsurance := valid
	badCoinsurance.CoinsurancePercent = 120
	assert.Error(t, ValidateInsurancePlan(badCoinsurance))
}
