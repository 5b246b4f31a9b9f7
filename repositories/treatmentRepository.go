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
)

const TreatmentCacheExpiry = 7 * 24 * time.Hour

// TreatmentRepository manages the shared procedure catalog. Catalog reads go
// through the cache; the appointment store reads treatments straight from
// the database as part of its aggregate graph.
type TreatmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewTreatmentRepository(db *gorm.DB, cache *cache.Cache) *TreatmentRepository {
	return &TreatmentRepository{db: db, cache: cache}
}

func (r *TreatmentRepository) Create(ctx context.Context, treatment *models.Treatment) error {
	treatment.ID = 0
	if err := r.db.WithContext(ctx).Create(treatment).Error; err != nil {
		return fmt.Errorf("failed to create treatment: %w", err)
	}
	return r.invalidate(ctx, treatment.ID)
}

func (r *TreatmentRepository) GetByID(ctx context.Context, id uint) (*models.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := treatmentCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var treatment models.Treatment
		if err := json.Unmarshal([]byte(cached), &treatment); err == nil {
			return &treatment, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get treatment from cache: %v", err)
	}

	var treatment models.Treatment
	err := r.db.WithContext(ctx).First(&treatment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}

	if treatmentJSON, err := json.Marshal(treatment); err == nil {
		if err := r.cache.Set(ctx, cacheKey, treatmentJSON, TreatmentCacheExpiry); err != nil {
			log.Printf("Failed to set treatment in cache: %v", err)
		}
	}

	return &treatment, nil
}

func (r *TreatmentRepository) GetAll(ctx context.Context) ([]models.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "treatments_cache"
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var treatments []models.Treatment
		if err := json.Unmarshal([]byte(cached), &treatments); err == nil {
			return treatments, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get treatments from cache: %v", err)
	}

	var treatments []models.Treatment
	if err := r.db.WithContext(ctx).Order("name").Find(&treatments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all treatments: %w", err)
	}

	if treatmentsJSON, err := json.Marshal(treatments); err == nil {
		if err := r.cache.Set(ctx, cacheKey, treatmentsJSON, TreatmentCacheExpiry); err != nil {
			log.Printf("Failed to set treatments in cache: %v", err)
		}
	}

	return treatments, nil
}

func (r *TreatmentRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	if err := r.db.WithContext(ctx).Save(treatment).Error; err != nil {
		return fmt.Errorf("failed to update treatment: %w", err)
	}
	return r.invalidate(ctx, treatment.ID)
}

// Delete removes the treatment together with every appointment treatment row
// referencing it. Removing join rows from live appointments is the intended
// behavior here, not catalog protection.
func (r *TreatmentRepository) Delete(ctx context.Context, id uint) (*models.Treatment, error) {
	var snapshot *models.Treatment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Treatment
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load treatment: %w", err)
		}

		if err := tx.Delete(&models.AppointmentTreatment{}, "treatment_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete appointment treatments: %w", err)
		}
		if err := tx.Delete(&models.Treatment{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete treatment: %w", err)
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

func (r *TreatmentRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, treatmentCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete treatment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "treatments_cache")
}

func treatmentCacheKey(id uint) string {
	return fmt.Sprintf("treatment_cache:%d", id)
}
