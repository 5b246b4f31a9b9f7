package repositories

import (
	"Mercyvale/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicianDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	physicians := NewPhysicianRepository(db, nil)
	appointments := NewAppointmentRepository(db)
	ctx := context.Background()

	appt, err := appointments.Create(ctx, &models.Appointment{
		Title:       "Ortho consult",
		StartTime:   naive(2025, 3, 3, 13, 0),
		EndTime:     naive(2025, 3, 3, 13, 45),
		PatientID:   f.patient.ID,
		PhysicianID: f.physician.ID,
		Treatments: []models.AppointmentTreatment{
			{TreatmentID: f.treatment2.ID},
		},
		Bill: &models.Bill{Amount: 250, OutOfPocket: 50},
	})
	require.NoError(t, err)

	// An appointment with another physician stays untouched.
	kept, err := appointments.Create(ctx, &models.Appointment{
		Title:       "Unrelated visit",
		StartTime:   naive(2025, 3, 4, 13, 0),
		EndTime:     naive(2025, 3, 4, 13, 30),
		PatientID:   f.patient.ID,
		PhysicianID: f.physician2.ID,
	})
	require.NoError(t, err)

	deleted, err := physicians.Delete(ctx, f.physician.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, f.physician.Name, deleted.Name)

	gone, err := appointments.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	still, err := appointments.GetByID(ctx, kept.ID)
	require.NoError(t, err)
	require.NotNil(t, still)

	var billRows int64
	require.NoError(t, db.Model(&models.Bill{}).Where("appointment_id = ?", appt.ID).Count(&billRows).Error)
	assert.Zero(t, billRows)
}

func TestTreatmentDeleteRemovesJoinRows(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	treatments := NewTreatmentRepository(db, nil)
	appointments := NewAppointmentRepository(db)
	ctx := context.Background()

	appt, err := appointments.Create(ctx, &models.Appointment{
		Title:       "Imaging",
		StartTime:   naive(2025, 4, 20, 10, 0),
		EndTime:     naive(2025, 4, 20, 10, 30),
		PatientID:   f.patient.ID,
		PhysicianID: f.physician.ID,
		Treatments: []models.AppointmentTreatment{
			{TreatmentID: f.treatment.ID},
			{TreatmentID: f.treatment2.ID},
		},
	})
	require.NoError(t, err)
	require.Len(t, appt.Treatments, 2)

	deleted, err := treatments.Delete(ctx, f.treatment2.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	// The appointment survives with the remaining treatment only.
	fetched, err := appointments.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Len(t, fetched.Treatments, 1)
	assert.Equal(t, f.treatment.ID, fetched.Treatments[0].TreatmentID)
}
