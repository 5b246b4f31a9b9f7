package services

import (
	"Mercyvale/models"
	"Mercyvale/repositories"
	"context"
)

// BillService is read-only; bills are written through the appointment
// aggregate.
type BillService struct {
	repository *repositories.BillRepository
}

func NewBillService(repository *repositories.BillRepository) *BillService {
	return &BillService{repository: repository}
}

func (s *BillService) GetByID(ctx context.Context, id uint) (*models.Bill, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *BillService) GetAll(ctx context.Context) ([]models.Bill, error) {
	return s.repository.GetAll(ctx)
}

func (s *BillService) GetByPatientID(ctx context.Context, patientID uint) ([]models.Bill, error) {
	return s.repository.GetByPatientID(ctx, patientID)
}
