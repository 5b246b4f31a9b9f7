package services

import (
	"Mercyvale/models"
	"Mercyvale/repositories"
	"context"
)

type InsurancePlanService struct {
	repository *repositories.InsurancePlanRepository
}

func NewInsurancePlanService(repository *repositories.InsurancePlanRepository) *InsurancePlanService {
	return &InsurancePlanService{repository: repository}
}

func (s *InsurancePlanService) Create(ctx context.Context, plan *models.InsurancePlan) error {
	return s.repository.Create(ctx, plan)
}

func (s *InsurancePlanService) GetByID(ctx context.Context, id uint) (*models.InsurancePlan, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *InsurancePlanService) GetAll(ctx context.Context) ([]models.InsurancePlan, error) {
	return s.repository.GetAll(ctx)
}

func (s *InsurancePlanService) Update(ctx context.Context, plan *models.InsurancePlan) error {
	return s.repository.Update(ctx, plan)
}

func (s *InsurancePlanService) Delete(ctx context.Context, id uint) (*models.InsurancePlan, error) {
	return s.repository.Delete(ctx, id)
}
