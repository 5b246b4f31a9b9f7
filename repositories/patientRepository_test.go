package repositories

import (
	"Mercyvale/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	patients := NewPatientRepository(db, nil)
	appointments := NewAppointmentRepository(db)
	ctx := context.Background()

	first, err := appointments.Create(ctx, &models.Appointment{
		Title:       "Visit one",
		StartTime:   naive(2025, 1, 10, 9, 0),
		EndTime:     naive(2025, 1, 10, 9, 30),
		PatientID:   f.patient.ID,
		PhysicianID: f.physician.ID,
		Treatments: []models.AppointmentTreatment{
			{TreatmentID: f.treatment.ID},
		},
		Bill: &models.Bill{Amount: 100, OutOfPocket: 20},
	})
	require.NoError(t, err)

	second, err := appointments.Create(ctx, &models.Appointment{
		Title:       "Visit two",
		StartTime:   naive(2025, 1, 17, 9, 0),
		EndTime:     naive(2025, 1, 17, 9, 30),
		PatientID:   f.patient.ID,
		PhysicianID: f.physician2.ID,
		Bill:        &models.Bill{Amount: 80, OutOfPocket: 15},
	})
	require.NoError(t, err)

	deleted, err := patients.Delete(ctx, f.patient.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, f.patient.Name, deleted.Name)

	for _, id := range []uint{first.ID, second.ID} {
		gone, err := appointments.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, gone)
	}

	var joinRows, billRows, apptRows int64
	require.NoError(t, db.Model(&models.AppointmentTreatment{}).Count(&joinRows).Error)
	require.NoError(t, db.Model(&models.Bill{}).Count(&billRows).Error)
	require.NoError(t, db.Model(&models.Appointment{}).Where("patient_id = ?", f.patient.ID).Count(&apptRows).Error)
	assert.Zero(t, joinRows)
	assert.Zero(t, billRows)
	assert.Zero(t, apptRows)

	missing, err := patients.GetByID(ctx, f.patient.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPatientDeleteDetachesPayerBills(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	patients := NewPatientRepository(db, nil)
	appointments := NewAppointmentRepository(db)
	ctx := context.Background()

	// An appointment belonging to patient2 but billed to patient1: the bill
	// must survive patient1's deletion with its payer reference nulled.
	payerID := f.patient.ID
	other, err := appointments.Create(ctx, &models.Appointment{
		Title:       "Covered visit",
		StartTime:   naive(2025, 2, 5, 9, 0),
		EndTime:     naive(2025, 2, 5, 9, 30),
		PatientID:   f.patient2.ID,
		PhysicianID: f.physician.ID,
		Bill:        &models.Bill{Amount: 120, OutOfPocket: 30, PatientID: &payerID},
	})
	require.NoError(t, err)
	require.NotNil(t, other.Bill)

	_, err = patients.Delete(ctx, f.patient.ID)
	require.NoError(t, err)

	var bill models.Bill
	require.NoError(t, db.First(&bill, "appointment_id = ?", other.ID).Error)
	assert.Nil(t, bill.PatientID)
	assert.Equal(t, 120.0, bill.Amount)
}

func TestPatientDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	patients := NewPatientRepository(db, nil)

	deleted, err := patients.Delete(context.Background(), 31337)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestPatientCRUDRoundTrip(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	patients := NewPatientRepository(db, nil)
	ctx := context.Background()

	created := models.Patient{
		Name:            "June Okafor",
		DateOfBirth:     naive(1995, 6, 21, 0, 0),
		Gender:          "Female",
		InsurancePlanID: f.plan.ID,
	}
	require.NoError(t, patients.Create(ctx, &created))
	require.NotZero(t, created.ID)

	fetched, err := patients.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "June Okafor", fetched.Name)
	assert.Equal(t, f.plan.ID, fetched.InsurancePlan.ID)

	fetched.AddressLine = "3 Birch Lane"
	require.NoError(t, patients.Update(ctx, fetched))

	again, err := patients.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "3 Birch Lane", again.AddressLine)
}
