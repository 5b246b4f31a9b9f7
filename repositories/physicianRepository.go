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

const PhysicianCacheExpiry = 24 * time.Hour

type PhysicianRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPhysicianRepository(db *gorm.DB, cache *cache.Cache) *PhysicianRepository {
	return &PhysicianRepository{db: db, cache: cache}
}

func (r *PhysicianRepository) Create(ctx context.Context, physician *models.Physician) error {
	physician.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(physician).Error; err != nil {
		return fmt.Errorf("failed to create physician: %w", err)
	}
	return r.invalidate(ctx, physician.ID)
}

func (r *PhysicianRepository) GetByID(ctx context.Context, id uint) (*models.Physician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := physicianCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var physician models.Physician
		if err := json.Unmarshal([]byte(cached), &physician); err == nil {
			return &physician, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get physician from cache: %v", err)
	}

	var physician models.Physician
	err := r.db.WithContext(ctx).First(&physician, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get physician: %w", err)
	}

	if physicianJSON, err := json.Marshal(physician); err == nil {
		if err := r.cache.Set(ctx, cacheKey, physicianJSON, PhysicianCacheExpiry); err != nil {
			log.Printf("Failed to set physician in cache: %v", err)
		}
	}

	return &physician, nil
}

func (r *PhysicianRepository) GetAll(ctx context.Context) ([]models.Physician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "physicians_cache"
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var physicians []models.Physician
		if err := json.Unmarshal([]byte(cached), &physicians); err == nil {
			return physicians, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get physicians from cache: %v", err)
	}

	var physicians []models.Physician
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&physicians).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all physicians: %w", err)
	}

	if physiciansJSON, err := json.Marshal(physicians); err == nil {
		if err := r.cache.Set(ctx, cacheKey, physiciansJSON, PhysicianCacheExpiry); err != nil {
			log.Printf("Failed to set physicians in cache: %v", err)
		}
	}

	return physicians, nil
}

func (r *PhysicianRepository) Update(ctx context.Context, physician *models.Physician) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(physician).Error; err != nil {
		return fmt.Errorf("failed to update physician: %w", err)
	}
	return r.invalidate(ctx, physician.ID)
}

// Delete removes the physician and all of their appointments with
// dependents, leaf rows first, in one transaction. Returns the pre-deletion
// snapshot, or (nil, nil) when the id does not exist.
func (r *PhysicianRepository) Delete(ctx context.Context, id uint) (*models.Physician, error) {
	var snapshot *models.Physician
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Physician
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load physician: %w", err)
		}

		if err := deleteAppointmentsOf(tx, "physician_id = ?", id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Physician{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete physician: %w", err)
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

func (r *PhysicianRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, physicianCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete physician cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "physicians_cache")
}

func physicianCacheKey(id uint) string {
	return fmt.Sprintf("physician_cache:%d", id)
}
