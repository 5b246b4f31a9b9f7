package handlers

import (
	"Mercyvale/middlewares"
	"Mercyvale/models"
	"Mercyvale/services"
	"Mercyvale/utils"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateAppointment(appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c, &appointment)
	if err != nil {
		middlewares.HttpError(c, "failed to create appointment", http.StatusInternalServerError, err)
		return
	}
	if created == nil {
		// The freshly inserted row could not be re-read.
		middlewares.HttpError(c, "appointment not found after create", http.StatusInternalServerError, nil)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}

	appointment, err := h.service.GetByID(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to get appointment", http.StatusInternalServerError, err)
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to get appointments", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointmentsByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	appointments, err := h.service.GetByPatientID(c, patientID)
	if err != nil {
		middlewares.HttpError(c, "failed to get appointments", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointmentsByPhysician(c *gin.Context) {
	physicianID, ok := parseIDParam(c, "physician_id")
	if !ok {
		return
	}

	appointments, err := h.service.GetByPhysicianID(c, physicianID)
	if err != nil {
		middlewares.HttpError(c, "failed to get appointments", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// SearchAppointments returns the union of the appointments matching the
// patient_id query parameter and those matching physician_id. An appointment
// matching only one of the two still appears.
func (h *AppointmentHandler) SearchAppointments(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Query("patient_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient_id"})
		return
	}
	physicianID, err := strconv.ParseUint(c.Query("physician_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid physician_id"})
		return
	}

	appointments, err := h.service.GetByPatientOrPhysicianID(c, uint(patientID), uint(physicianID))
	if err != nil {
		middlewares.HttpError(c, "failed to search appointments", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetUpcomingByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}
	now, err := parseNow(c.Query("now"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointments, err := h.service.GetUpcomingByPatientID(c, patientID, now)
	if err != nil {
		middlewares.HttpError(c, "failed to get upcoming appointments", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetUpcomingByPhysician(c *gin.Context) {
	physicianID, ok := parseIDParam(c, "physician_id")
	if !ok {
		return
	}
	now, err := parseNow(c.Query("now"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointments, err := h.service.GetUpcomingByPhysicianID(c, physicianID, now)
	if err != nil {
		middlewares.HttpError(c, "failed to get upcoming appointments", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}

	var replacement models.Appointment
	if err := c.ShouldBindJSON(&replacement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateAppointment(replacement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c, id, &replacement)
	if err != nil {
		middlewares.HttpError(c, "failed to update appointment", http.StatusInternalServerError, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to delete appointment", http.StatusInternalServerError, err)
		return
	}
	if deleted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// parseIDParam reads a positive integer path parameter, answering 400 itself
// when the value does not parse.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return uint(id), true
}

// parseNow reads the optional "now" query value used by the upcoming
// lookups. Values are timezone-naive instants; an empty value means the
// server clock.
func parseNow(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time value %q", raw)
}
