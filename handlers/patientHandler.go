package handlers

import (
	"Mercyvale/middlewares"
	"Mercyvale/models"
	"Mercyvale/services"
	"Mercyvale/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePatient(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &patient); err != nil {
		middlewares.HttpError(c, "failed to create patient", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	patient, err := h.service.GetByID(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to get patient", http.StatusInternalServerError, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to get patients", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient.ID = id
	if err := utils.ValidatePatient(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Update(c, &patient); err != nil {
		middlewares.HttpError(c, "failed to update patient", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// DeletePatient removes the patient and everything hanging off them:
// appointments, their treatment rows and their bills.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to delete patient", http.StatusInternalServerError, err)
		return
	}
	if deleted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}
