package handlers

import (
	"Mercyvale/middlewares"
	"Mercyvale/models"
	"Mercyvale/services"
	"Mercyvale/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InsurancePlanHandler struct {
	service *services.InsurancePlanService
}

func NewInsurancePlanHandler(service *services.InsurancePlanService) *InsurancePlanHandler {
	return &InsurancePlanHandler{service: service}
}

func (h *InsurancePlanHandler) CreateInsurancePlan(c *gin.Context) {
	var plan models.InsurancePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateInsurancePlan(plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &plan); err != nil {
		middlewares.HttpError(c, "failed to create insurance plan", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *InsurancePlanHandler) GetInsurancePlanByID(c *gin.Context) {
	id, ok := parseIDParam(c, "insurance_plan_id")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to get insurance plan", http.StatusInternalServerError, err)
		return
	}
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Insurance plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *InsurancePlanHandler) GetAllInsurancePlans(c *gin.Context) {
	plans, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to get insurance plans", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *InsurancePlanHandler) UpdateInsurancePlan(c *gin.Context) {
	id, ok := parseIDParam(c, "insurance_plan_id")
	if !ok {
		return
	}

	var plan models.InsurancePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan.ID = id
	if err := utils.ValidateInsurancePlan(plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Update(c, &plan); err != nil {
		middlewares.HttpError(c, "failed to update insurance plan", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *InsurancePlanHandler) DeleteInsurancePlan(c *gin.Context) {
	id, ok := parseIDParam(c, "insurance_plan_id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to delete insurance plan", http.StatusInternalServerError, err)
		return
	}
	if deleted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Insurance plan not found"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}
