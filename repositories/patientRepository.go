package repositories

import (
	"Mercyvale/cache"
	"Mercyvale/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const PatientCacheExpiry = 24 * time.Hour

type PatientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) *PatientRepository {
	return &PatientRepository{db: db, cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	patient.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return r.invalidate(ctx, patient.ID)
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := patientCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err := r.db.WithContext(ctx).
		Preload("InsurancePlan").
		First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if patientJSON, err := json.Marshal(patient); err == nil {
		if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
			log.Printf("Failed to set patient in cache: %v", err)
		}
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "patients_cache"
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cached), &patients); err == nil {
			return patients, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Preload("InsurancePlan").
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	if patientsJSON, err := json.Marshal(patients); err == nil {
		if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
			log.Printf("Failed to set patients in cache: %v", err)
		}
	}

	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(patient).Error; err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return r.invalidate(ctx, patient.ID)
}

// Delete removes the patient and fans out to every dependent row inside one
// transaction, leaf rows first: bills and treatment join rows of the
// patient's appointments, the appointments themselves, then the patient.
// Bills where the patient is only the payer outlive the patient with their
// payer reference nulled. Returns the pre-deletion snapshot, or (nil, nil)
// when the id does not exist.
func (r *PatientRepository) Delete(ctx context.Context, id uint) (*models.Patient, error) {
	var snapshot *models.Patient
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Patient
		if err := tx.Preload("InsurancePlan").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load patient: %w", err)
		}

		if err := deleteAppointmentsOf(tx, "patient_id = ?", id); err != nil {
			return err
		}
		if err := tx.Model(&models.Bill{}).Where("patient_id = ?", id).Update("patient_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach payer bills: %w", err)
		}
		if err := tx.Delete(&models.Patient{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
		}

		snapshot = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}
	return snapshot, r.invalidate(ctx, id)
}

func (r *PatientRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, patientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

func patientCacheKey(id uint) string {
	return fmt.Sprintf("patient_cache:%d", id)
}

// deleteAppointmentsOf removes every appointment matching the condition
// together with its dependents, in dependency order.
func deleteAppointmentsOf(tx *gorm.DB, query string, args ...interface{}) error {
	var ids []uint
	if err := tx.Model(&models.Appointment{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("failed to select appointments: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Delete(&models.Bill{}, "appointment_id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete bills: %w", err)
	}
	if err := tx.Delete(&models.AppointmentTreatment{}, "appointment_id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete appointment treatments: %w", err)
	}
	if err := tx.Delete(&models.Appointment{}, "id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete appointments: %w", err)
	}
	return nil
}
