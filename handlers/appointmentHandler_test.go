package handlers

import (
	"Mercyvale/database"
	"Mercyvale/models"
	"Mercyvale/repositories"
	"Mercyvale/services"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.RunMigrations(db))

	handler := NewAppointmentHandler(services.NewAppointmentService(repositories.NewAppointmentRepository(db)))

	router := gin.New()
	router.POST("/appointments", handler.CreateAppointment)
	router.GET("/appointments/search", handler.SearchAppointments)
	router.GET("/appointments/:appointment_id", handler.GetAppointmentByID)
	router.PUT("/appointments/:appointment_id", handler.UpdateAppointment)
	router.DELETE("/appointments/:appointment_id", handler.DeleteAppointment)

	return &testEnv{db: db, router: router}
}

func (e *testEnv) seed(t *testing.T) (models.Patient, models.Physician, models.Treatment) {
	t.Helper()
	plan := models.InsurancePlan{Name: "Standard PPO", Copay: 25, Deductible: 1500, CoinsurancePercent: 20, OutOfPocketMax: 6000}
	require.NoError(t, e.db.Create(&plan).Error)
	patient := models.Patient{Name: "Ada Moran", Gender: "Female", InsurancePlanID: plan.ID}
	require.NoError(t, e.db.Create(&patient).Error)
	physician := models.Physician{Name: "Dr. Imani Cole", LicenseNumber: 48213}
	require.NoError(t, e.db.Create(&physician).Error)
	treatment := models.Treatment{Name: "General Consultation", Price: 100}
	require.NoError(t, e.db.Create(&treatment).Error)
	return patient, physician, treatment
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	env := newTestEnv(t)
	patient, physician, treatment := env.seed(t)

	w := env.do(t, http.MethodPost, "/appointments", gin.H{
		"title":        "Annual checkup",
		"start_time":   "2025-01-01T09:00:00Z",
		"end_time":     "2025-01-01T09:30:00Z",
		"patient_id":   patient.ID,
		"physician_id": physician.ID,
		"treatments":   []gin.H{{"treatment_id": treatment.ID}},
		"bill":         gin.H{"amount": 100, "out_of_pocket": 20},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, patient.Name, created.Patient.Name)
	require.Len(t, created.Treatments, 1)
	require.NotNil(t, created.Bill)
	assert.Equal(t, created.ID, created.Bill.AppointmentID)
}

func TestCreateAppointmentEndpointRejectsInvalidPayload(t *testing.T) {
	env := newTestEnv(t)
	patient, physician, _ := env.seed(t)

	// End before start.
	w := env.do(t, http.MethodPost, "/appointments", gin.H{
		"title":        "Backwards",
		"start_time":   "2025-01-01T10:00:00Z",
		"end_time":     "2025-01-01T09:00:00Z",
		"patient_id":   patient.ID,
		"physician_id": physician.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAppointmentEndpointNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	w := env.do(t, http.MethodGet, "/appointments/4242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/appointments/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAppointmentEndpoint(t *testing.T) {
	env := newTestEnv(t)
	patient, physician, _ := env.seed(t)

	w := env.do(t, http.MethodPost, "/appointments", gin.H{
		"title":        "To be cancelled",
		"start_time":   "2025-02-01T09:00:00Z",
		"end_time":     "2025-02-01T09:30:00Z",
		"patient_id":   patient.ID,
		"physician_id": physician.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/appointments/%d", created.ID)
	w = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchAppointmentsEndpointUnion(t *testing.T) {
	env := newTestEnv(t)
	patient, physician, _ := env.seed(t)

	otherPatient := models.Patient{Name: "Theo Brandt", Gender: "Male", InsurancePlanID: patient.InsurancePlanID}
	require.NoError(t, env.db.Create(&otherPatient).Error)
	otherPhysician := models.Physician{Name: "Dr. Viktor Hale", LicenseNumber: 55102}
	require.NoError(t, env.db.Create(&otherPhysician).Error)

	// One appointment matching only the patient, one matching only the
	// physician.
	for _, body := range []gin.H{
		{"title": "P-only", "start_time": "2025-03-01T09:00:00Z", "end_time": "2025-03-01T09:30:00Z", "patient_id": patient.ID, "physician_id": otherPhysician.ID},
		{"title": "D-only", "start_time": "2025-03-02T09:00:00Z", "end_time": "2025-03-02T09:30:00Z", "patient_id": otherPatient.ID, "physician_id": physician.ID},
	} {
		w := env.do(t, http.MethodPost, "/appointments", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodGet, fmt.Sprintf("/appointments/search?patient_id=%d&physician_id=%d", patient.ID, physician.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 2)
}
