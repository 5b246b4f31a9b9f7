package services

import (
	"Mercyvale/models"
	"Mercyvale/repositories"
	"context"
	"time"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return s.repository.Create(ctx, appointment)
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx)
}

func (s *AppointmentService) GetByPatientID(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return s.repository.GetByPatientID(ctx, patientID)
}

func (s *AppointmentService) GetByPhysicianID(ctx context.Context, physicianID uint) ([]models.Appointment, error) {
	return s.repository.GetByPhysicianID(ctx, physicianID)
}

func (s *AppointmentService) GetByPatientOrPhysicianID(ctx context.Context, patientID, physicianID uint) ([]models.Appointment, error) {
	return s.repository.GetByPatientOrPhysicianID(ctx, patientID, physicianID)
}

func (s *AppointmentService) GetUpcomingByPatientID(ctx context.Context, patientID uint, now time.Time) ([]models.Appointment, error) {
	return s.repository.GetUpcomingByPatientID(ctx, patientID, now)
}

func (s *AppointmentService) GetUpcomingByPhysicianID(ctx context.Context, physicianID uint, now time.Time) ([]models.Appointment, error) {
	return s.repository.GetUpcomingByPhysicianID(ctx, physicianID, now)
}

func (s *AppointmentService) Update(ctx context.Context, id uint, replacement *models.Appointment) (*models.Appointment, error) {
	return s.repository.Update(ctx, id, replacement)
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.repository.Delete(ctx, id)
}
