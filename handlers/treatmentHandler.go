package handlers

import (
	"Mercyvale/middlewares"
	"Mercyvale/models"
	"Mercyvale/services"
	"Mercyvale/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TreatmentHandler struct {
	service *services.TreatmentService
}

func NewTreatmentHandler(service *services.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{service: service}
}

func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var treatment models.Treatment
	if err := c.ShouldBindJSON(&treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateTreatment(treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &treatment); err != nil {
		middlewares.HttpError(c, "failed to create treatment", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, treatment)
}

func (h *TreatmentHandler) GetTreatmentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "treatment_id")
	if !ok {
		return
	}

	treatment, err := h.service.GetByID(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to get treatment", http.StatusInternalServerError, err)
		return
	}
	if treatment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Treatment not found"})
		return
	}
	c.JSON(http.StatusOK, treatment)
}

func (h *TreatmentHandler) GetAllTreatments(c *gin.Context) {
	treatments, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to get treatments", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func (h *TreatmentHandler) UpdateTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "treatment_id")
	if !ok {
		return
	}

	var treatment models.Treatment
	if err := c.ShouldBindJSON(&treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	treatment.ID = id
	if err := utils.ValidateTreatment(treatment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Update(c, &treatment); err != nil {
		middlewares.HttpError(c, "failed to update treatment", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, treatment)
}

// DeleteTreatment removes the catalog entry and any appointment treatment
// rows that reference it.
func (h *TreatmentHandler) DeleteTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "treatment_id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to delete treatment", http.StatusInternalServerError, err)
		return
	}
	if deleted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Treatment not found"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}
