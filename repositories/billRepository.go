package repositories

import (
	"Mercyvale/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BillRepository exposes read-only bill lookups. Bills are created, replaced
// and deleted exclusively through the appointment store, so there are no
// write paths here.
type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) GetByID(ctx context.Context, id uint) (*models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var bill models.Bill
	err := r.db.WithContext(ctx).First(&bill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return &bill, nil
}

func (r *BillRepository) GetAll(ctx context.Context) ([]models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var bills []models.Bill
	if err := r.db.WithContext(ctx).Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to get all bills: %w", err)
	}
	return bills, nil
}

// GetByPatientID returns the bills naming the patient as payer.
func (r *BillRepository) GetByPatientID(ctx context.Context, patientID uint) ([]models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var bills []models.Bill
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to get bills by patient: %w", err)
	}
	return bills, nil
}
