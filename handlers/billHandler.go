package handlers

import (
	"Mercyvale/middlewares"
	"Mercyvale/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BillHandler serves read-only bill lookups. Bills are written through the
// appointment endpoints only.
type BillHandler struct {
	service *services.BillService
}

func NewBillHandler(service *services.BillService) *BillHandler {
	return &BillHandler{service: service}
}

func (h *BillHandler) GetBillByID(c *gin.Context) {
	id, ok := parseIDParam(c, "bill_id")
	if !ok {
		return
	}

	bill, err := h.service.GetByID(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to get bill", http.StatusInternalServerError, err)
		return
	}
	if bill == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillHandler) GetAllBills(c *gin.Context) {
	bills, err := h.service.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to get bills", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillHandler) GetBillsByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	bills, err := h.service.GetByPatientID(c, patientID)
	if err != nil {
		middlewares.HttpError(c, "failed to get bills", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}
