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

const InsurancePlanCacheExpiry = 7 * 24 * time.Hour

type InsurancePlanRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewInsurancePlanRepository(db *gorm.DB, cache *cache.Cache) *InsurancePlanRepository {
	return &InsurancePlanRepository{db: db, cache: cache}
}

func (r *InsurancePlanRepository) Create(ctx context.Context, plan *models.InsurancePlan) error {
	plan.ID = 0
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create insurance plan: %w", err)
	}
	return r.invalidate(ctx, plan.ID)
}

func (r *InsurancePlanRepository) GetByID(ctx context.Context, id uint) (*models.InsurancePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := insurancePlanCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var plan models.InsurancePlan
		if err := json.Unmarshal([]byte(cached), &plan); err == nil {
			return &plan, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get insurance plan from cache: %v", err)
	}

	var plan models.InsurancePlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get insurance plan: %w", err)
	}

	if planJSON, err := json.Marshal(plan); err == nil {
		if err := r.cache.Set(ctx, cacheKey, planJSON, InsurancePlanCacheExpiry); err != nil {
			log.Printf("Failed to set insurance plan in cache: %v", err)
		}
	}

	return &plan, nil
}

func (r *InsurancePlanRepository) GetAll(ctx context.Context) ([]models.InsurancePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "insurance_plans_cache"
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var plans []models.InsurancePlan
		if err := json.Unmarshal([]byte(cached), &plans); err == nil {
			return plans, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get insurance plans from cache: %v", err)
	}

	var plans []models.InsurancePlan
	if err := r.db.WithContext(ctx).Order("name").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to get all insurance plans: %w", err)
	}

	if plansJSON, err := json.Marshal(plans); err == nil {
		if err := r.cache.Set(ctx, cacheKey, plansJSON, InsurancePlanCacheExpiry); err != nil {
			log.Printf("Failed to set insurance plans in cache: %v", err)
		}
	}

	return plans, nil
}

func (r *InsurancePlanRepository) Update(ctx context.Context, plan *models.InsurancePlan) error {
	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return fmt.Errorf("failed to update insurance plan: %w", err)
	}
	return r.invalidate(ctx, plan.ID)
}

// Delete removes the plan. A patient still referencing it surfaces as a
// constraint violation from the database, propagated untranslated.
func (r *InsurancePlanRepository) Delete(ctx context.Context, id uint) (*models.InsurancePlan, error) {
	var plan models.InsurancePlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load insurance plan: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&models.InsurancePlan{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete insurance plan: %w", err)
	}
	return &plan, r.invalidate(ctx, id)
}

func (r *InsurancePlanRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, insurancePlanCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete insurance plan cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "insurance_plans_cache")
}

func insurancePlanCacheKey(id uint) string {
	return fmt.Sprintf("insurance_plan_cache:%d", id)
}
