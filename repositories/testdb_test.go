package repositories

import (
	"Mercyvale/database"
	"Mercyvale/models"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

type fixtures struct {
	plan       models.InsurancePlan
	patient    models.Patient
	patient2   models.Patient
	physician  models.Physician
	physician2 models.Physician
	treatment  models.Treatment
	treatment2 models.Treatment
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		plan: models.InsurancePlan{Name: "Standard PPO", Copay: 25, Deductible: 1500, CoinsurancePercent: 20, OutOfPocketMax: 6000},
	}
	if err := db.Create(&f.plan).Error; err != nil {
		t.Fatalf("failed to seed insurance plan: %v", err)
	}

	f.patient = models.Patient{
		Name:            "Ada Moran",
		AddressLine:     "12 Larch Street",
		DateOfBirth:     time.Date(1987, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:          "Female",
		Race:            "White",
		InsurancePlanID: f.plan.ID,
	}
	f.patient2 = models.Patient{
		Name:            "Theo Brandt",
		DateOfBirth:     time.Date(1962, 11, 2, 0, 0, 0, 0, time.UTC),
		Gender:          "Male",
		InsurancePlanID: f.plan.ID,
	}
	if err := db.Create(&f.patient).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	if err := db.Create(&f.patient2).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}

	f.physician = models.Physician{Name: "Dr. Imani Cole", LicenseNumber: 48213, Specializations: "Cardiology"}
	f.physician2 = models.Physician{Name: "Dr. Viktor Hale", LicenseNumber: 55102, Specializations: "Orthopedics"}
	if err := db.Create(&f.physician).Error; err != nil {
		t.Fatalf("failed to seed physician: %v", err)
	}
	if err := db.Create(&f.physician2).Error; err != nil {
		t.Fatalf("failed to seed physician: %v", err)
	}

	f.treatment = models.Treatment{Name: "General Consultation", Price: 100}
	f.treatment2 = models.Treatment{Name: "X-Ray", Price: 250}
	if err := db.Create(&f.treatment).Error; err != nil {
		t.Fatalf("failed to seed treatment: %v", err)
	}
	if err := db.Create(&f.treatment2).Error; err != nil {
		t.Fatalf("failed to seed treatment: %v", err)
	}

	return f
}

func naive(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
