package controllers

import (
	"Mercyvale/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHospitalRoutes registers the scheduling and billing routes.
func SetupHospitalRoutes(
	router *gin.Engine,
	patientHandler *handlers.PatientHandler,
	physicianHandler *handlers.PhysicianHandler,
	insurancePlanHandler *handlers.InsurancePlanHandler,
	treatmentHandler *handlers.TreatmentHandler,
	billHandler *handlers.BillHandler,
	appointmentHandler *handlers.AppointmentHandler,
) {
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients", patientHandler.GetAllPatients)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)

	router.POST("/physicians", physicianHandler.CreatePhysician)
	router.GET("/physicians", physicianHandler.GetAllPhysicians)
	router.GET("/physicians/:physician_id", physicianHandler.GetPhysicianByID)
	router.PUT("/physicians/:physician_id", physicianHandler.UpdatePhysician)
	router.DELETE("/physicians/:physician_id", physicianHandler.DeletePhysician)

	router.POST("/insurance_plans", insurancePlanHandler.CreateInsurancePlan)
	router.GET("/insurance_plans", insurancePlanHandler.GetAllInsurancePlans)
	router.GET("/insurance_plans/:insurance_plan_id", insurancePlanHandler.GetInsurancePlanByID)
	router.PUT("/insurance_plans/:insurance_plan_id", insurancePlanHandler.UpdateInsurancePlan)
	router.DELETE("/insurance_plans/:insurance_plan_id", insurancePlanHandler.DeleteInsurancePlan)

	router.POST("/treatments", treatmentHandler.CreateTreatment)
	router.GET("/treatments", treatmentHandler.GetAllTreatments)
	router.GET("/treatments/:treatment_id", treatmentHandler.GetTreatmentByID)
	router.PUT("/treatments/:treatment_id", treatmentHandler.UpdateTreatment)
	router.DELETE("/treatments/:treatment_id", treatmentHandler.DeleteTreatment)

	// Bills are read-only over HTTP; writes happen through appointments.
	router.GET("/bills", billHandler.GetAllBills)
	router.GET("/bills/:bill_id", billHandler.GetBillByID)
	router.GET("/patients/:patient_id/bills", billHandler.GetBillsByPatient)

	router.POST("/appointments", appointmentHandler.CreateAppointment)
	router.GET("/appointments", appointmentHandler.GetAllAppointments)
	// The search endpoint is a union: appointments matching the patient OR
	// the physician.
	router.GET("/appointments/search", appointmentHandler.SearchAppointments)
	router.GET("/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
	router.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
	router.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)

	router.GET("/patients/:patient_id/appointments", appointmentHandler.GetAppointmentsByPatient)
	router.GET("/patients/:patient_id/appointments/upcoming", appointmentHandler.GetUpcomingByPatient)
	router.GET("/physicians/:physician_id/appointments", appointmentHandler.GetAppointmentsByPhysician)
	router.GET("/physicians/:physician_id/appointments/upcoming", appointmentHandler.GetUpcomingByPhysician)
}
