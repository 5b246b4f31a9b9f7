package handlers

import (
	"Mercyvale/middlewares"
	"Mercyvale/models"
	"Mercyvale/services"
	"Mercyvale/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PhysicianHandler struct {
	service *services.PhysicianService
}

func NewPhysicianHandler(service *services.PhysicianService) *PhysicianHandler {
	return &PhysicianHandler{service: service}
}

func (h *PhysicianHandler) CreatePhysician(c *gin.Context) {
	var physician models.Physician
	if err := c.ShouldBindJSON(&physician); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePhysician(physician); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &physician); err != nil {
		middlewares.HttpError(c, "failed to create physician", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, physician)
}

func (h *PhysicianHandler) GetPhysicianByID(c *gin.Context) {
	id, ok := parseIDParam(c, "physician_id")
	if !ok {
		return
	}

	physician, err := h.service.GetByID(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to get physician", http.StatusInternalServerError, err)
		return
	}
	if physician == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Physician not found"})
		return
	}
	c.JSON(http.StatusOK, physician)
}

func (h *PhysicianHandler) GetAllPhysicians(c *gin.Context) {
	physicians, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to get physicians", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, physicians)
}

func (h *PhysicianHandler) UpdatePhysician(c *gin.Context) {
	id, ok := parseIDParam(c, "physician_id")
	if !ok {
		return
	}

	var physician models.Physician
	if err := c.ShouldBindJSON(&physician); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	physician.ID = id
	if err := utils.ValidatePhysician(physician); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Update(c, &physician); err != nil {
		middlewares.HttpError(c, "failed to update physician", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, physician)
}

// DeletePhysician removes the physician and cascades to their appointments.
func (h *PhysicianHandler) DeletePhysician(c *gin.Context) {
	id, ok := parseIDParam(c, "physician_id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to delete physician", http.StatusInternalServerError, err)
		return
	}
	if deleted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Physician not found"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}
