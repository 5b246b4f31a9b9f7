package repositories

import (
	"Mercyvale/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const appointmentReadTimeout = 5 * time.Second

// AppointmentRepository owns the appointment aggregate: the appointment row,
// its treatment join rows and its bill. Every mutating call runs in its own
// transaction and commits before returning; every read materializes the full
// aggregate graph (patient with insurance plan, physician, treatments with
// their catalog entries, bill) inside one transactional snapshot.
//
// Lookups signal a missing appointment as (nil, nil). Constraint violations
// and storage failures propagate wrapped but untranslated; there is no retry.
// The repository takes no locks of its own — concurrent updates to the same
// id are last-writer-wins at whatever isolation the database defaults to.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// withAggregateGraph attaches every relation an appointment read must carry.
func withAggregateGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Patient.InsurancePlan").
		Preload("Physician").
		Preload("Treatments.Treatment").
		Preload("Bill")
}

// Create inserts the appointment plus any supplied treatment join rows and
// bill, commits, then re-reads and returns the fully populated aggregate.
// Client-supplied ids on new rows are ignored; the store assigns keys.
// A (nil, nil) result means the freshly inserted row could not be re-read,
// which signals a consistency fault upstream.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to insert appointment: %w", err)
		}
		if err := insertDependents(tx, appointment.ID, appointment.Treatments, appointment.Bill); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, appointment.ID)
}

// GetByID returns the fully populated aggregate, or (nil, nil) when no such
// appointment exists.
func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, appointmentReadTimeout)
	defer cancel()

	var appointment models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return withAggregateGraph(tx).First(&appointment, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// GetAll returns every appointment, fully populated. Unpaginated: the
// dataset is a bounded administrative one.
func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := r.find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) GetByPatientID(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	appointments, err := r.find(ctx, "patient_id = ?", patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments by patient: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) GetByPhysicianID(ctx context.Context, physicianID uint) ([]models.Appointment, error) {
	appointments, err := r.find(ctx, "physician_id = ?", physicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments by physician: %w", err)
	}
	return appointments, nil
}

// GetByPatientOrPhysicianID returns the union of the appointments belonging
// to the patient and those belonging to the physician. The filter is an OR:
// an appointment matching only one side still appears, once.
func (r *AppointmentRepository) GetByPatientOrPhysicianID(ctx context.Context, patientID, physicianID uint) ([]models.Appointment, error) {
	appointments, err := r.find(ctx, "patient_id = ? OR physician_id = ?", patientID, physicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments by patient or physician: %w", err)
	}
	return appointments, nil
}

// GetUpcomingByPatientID returns the patient's appointments whose end time is
// at or after now. The boundary is inclusive; now is trusted as supplied.
func (r *AppointmentRepository) GetUpcomingByPatientID(ctx context.Context, patientID uint, now time.Time) ([]models.Appointment, error) {
	appointments, err := r.find(ctx, "patient_id = ? AND end_time >= ?", patientID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming appointments by patient: %w", err)
	}
	return appointments, nil
}

// GetUpcomingByPhysicianID returns the physician's appointments whose end
// time is at or after now (inclusive).
func (r *AppointmentRepository) GetUpcomingByPhysicianID(ctx context.Context, physicianID uint, now time.Time) ([]models.Appointment, error) {
	appointments, err := r.find(ctx, "physician_id = ? AND end_time >= ?", physicianID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming appointments by physician: %w", err)
	}
	return appointments, nil
}

// Update replaces the appointment: the existing bill and treatment set are
// deleted, the scalar and relational fields are overwritten from the
// replacement, and the replacement's treatment set and bill (possibly empty
// and none) are inserted with fresh keys. Editing is discard-and-attach, not
// a diff. Returns (nil, nil) when the id does not exist.
//
// The replacement is returned as the caller supplied it; nested rows carry
// store-assigned keys only after a subsequent read.
func (r *AppointmentRepository) Update(ctx context.Context, id uint, replacement *models.Appointment) (*models.Appointment, error) {
	var found bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Appointment
		if err := withAggregateGraph(tx).First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load appointment: %w", err)
		}
		found = true

		if existing.Bill != nil {
			if err := tx.Delete(&models.Bill{}, "appointment_id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to delete bill: %w", err)
			}
		}
		if err := tx.Delete(&models.AppointmentTreatment{}, "appointment_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete appointment treatments: %w", err)
		}

		// No existence check on the new patient or physician: a bad
		// reference surfaces as a constraint violation on commit.
		updates := map[string]interface{}{
			"title":        replacement.Title,
			"description":  replacement.Description,
			"start_time":   replacement.StartTime,
			"end_time":     replacement.EndTime,
			"patient_id":   replacement.PatientID,
			"physician_id": replacement.PhysicianID,
		}
		if err := tx.Model(&models.Appointment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}

		return insertDependents(tx, id, replacement.Treatments, replacement.Bill)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	replacement.ID = id
	return replacement, nil
}

// Delete removes the appointment and its dependents, leaf rows first so the
// result does not depend on engine-side cascades. Returns the pre-deletion
// snapshot, or (nil, nil) when the id does not exist.
func (r *AppointmentRepository) Delete(ctx context.Context, id uint) (*models.Appointment, error) {
	var snapshot *models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Appointment
		if err := withAggregateGraph(tx).First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load appointment: %w", err)
		}

		if err := tx.Delete(&models.Bill{}, "appointment_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete bill: %w", err)
		}
		if err := tx.Delete(&models.AppointmentTreatment{}, "appointment_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete appointment treatments: %w", err)
		}
		if err := tx.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}

		snapshot = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// find runs a filtered aggregate read inside one transactional snapshot.
// Ordering is store-determined; callers needing a deterministic order sort
// on their side.
func (r *AppointmentRepository) find(ctx context.Context, query interface{}, args ...interface{}) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, appointmentReadTimeout)
	defer cancel()

	var appointments []models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := withAggregateGraph(tx)
		if query != nil {
			scope = scope.Where(query, args...)
		}
		return scope.Find(&appointments).Error
	})
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// insertDependents attaches treatment join rows and a bill to the given
// appointment, discarding any client-supplied keys.
func insertDependents(tx *gorm.DB, appointmentID uint, treatments []models.AppointmentTreatment, bill *models.Bill) error {
	for i := range treatments {
		treatments[i].ID = 0
		treatments[i].AppointmentID = appointmentID
		if err := tx.Omit(clause.Associations).Create(&treatments[i]).Error; err != nil {
			return fmt.Errorf("failed to insert appointment treatment: %w", err)
		}
	}
	if bill != nil {
		bill.ID = 0
		bill.AppointmentID = appointmentID
		if err := tx.Omit(clause.Associations).Create(bill).Error; err != nil {
			return fmt.Errorf("failed to insert bill: %w", err)
		}
	}
	return nil
}
