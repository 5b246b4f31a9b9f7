package models

import (
	"gorm.io/gorm"
)

// SeedInsurancePlans ensures the baseline plans exist so a fresh install can
// register patients immediately.
func SeedInsurancePlans(db *gorm.DB) error {
	plans := []InsurancePlan{
		{Name: "Self-Pay", Copay: 0, Deductible: 0, CoinsurancePercent: 0, OutOfPocketMax: 0},
		{Name: "Standard PPO", Copay: 25, Deductible: 1500, CoinsurancePercent: 20, OutOfPocketMax: 6000},
		{Name: "High Deductible", Copay: 0, Deductible: 4000, CoinsurancePercent: 30, OutOfPocketMax: 8000},
	}
	for _, plan := range plans {
		if err := db.Where("name = ?", plan.Name).FirstOrCreate(&plan).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedTreatments populates the treatment catalog with common procedures.
func SeedTreatments(db *gorm.DB) error {
	treatments := []Treatment{
		{Name: "General Consultation", Price: 100},
		{Name: "Blood Panel", Price: 180},
		{Name: "X-Ray", Price: 250},
		{Name: "Physical Therapy Session", Price: 120},
	}
	for _, treatment := range treatments {
		if err := db.Where("name = ?", treatment.Name).FirstOrCreate(&treatment).Error; err != nil {
			return err
		}
	}
	return nil
}
