package routes

import (
	"Mercyvale/cache"
	"Mercyvale/config"
	"Mercyvale/controllers"
	"Mercyvale/handlers"
	"Mercyvale/middlewares"
	"Mercyvale/repositories"
	"Mercyvale/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://admin.mercyvale.health"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middlewares.RequestIDHeader},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.RequestIDMiddleware())
	router.Use(middlewares.LoggingMiddleware())

	// Repositories. The appointment repository is the aggregate store and
	// deliberately takes no cache; catalog repositories use the cache-aside
	// pattern.
	appointmentRepo := repositories.NewAppointmentRepository(db)
	patientRepo := repositories.NewPatientRepository(db, cache)
	physicianRepo := repositories.NewPhysicianRepository(db, cache)
	treatmentRepo := repositories.NewTreatmentRepository(db, cache)
	insurancePlanRepo := repositories.NewInsurancePlanRepository(db, cache)
	billRepo := repositories.NewBillRepository(db)

	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo))
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	physicianHandler := handlers.NewPhysicianHandler(services.NewPhysicianService(physicianRepo))
	treatmentHandler := handlers.NewTreatmentHandler(services.NewTreatmentService(treatmentRepo))
	insurancePlanHandler := handlers.NewInsurancePlanHandler(services.NewInsurancePlanService(insurancePlanRepo))
	billHandler := handlers.NewBillHandler(services.NewBillService(billRepo))

	controllers.SetupHospitalRoutes(
		router,
		patientHandler,
		physicianHandler,
		insurancePlanHandler,
		treatmentHandler,
		billHandler,
		appointmentHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
