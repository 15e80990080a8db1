package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/shm-health-api/internal/service"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
	"github.com/noah-isme/shm-health-api/pkg/response"
)

// VaccinationHandler exposes vaccination record endpoints.
type VaccinationHandler struct {
	vaccinations *service.VaccinationService
}

// NewVaccinationHandler constructs VaccinationHandler.
func NewVaccinationHandler(vaccinations *service.VaccinationService) *VaccinationHandler {
	return &VaccinationHandler{vaccinations: vaccinations}
}

// Create godoc
// @Summary Create vaccination record
// @Tags Vaccinations
// @Accept json
// @Produce json
// @Param payload body service.CreateVaccinationRecordRequest true "Record payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /vaccination-record [post]
func (h *VaccinationHandler) Create(c *gin.Context) {
	var req service.CreateVaccinationRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.vaccinations.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "vaccination record created", record)
}

// Update godoc
// @Summary Partially update a vaccination record
// @Tags Vaccinations
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payload body service.UpdateVaccinationRecordRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /vaccination-record/{id} [patch]
func (h *VaccinationHandler) Update(c *gin.Context) {
	var req service.UpdateVaccinationRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.vaccinations.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "vaccination record updated", record)
}

// Get godoc
// @Summary Get vaccination record
// @Tags Vaccinations
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /vaccination-record/{id} [get]
func (h *VaccinationHandler) Get(c *gin.Context) {
	record, err := h.vaccinations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "vaccination record", record)
}

// ListByStudent godoc
// @Summary List a student's vaccination records
// @Tags Vaccinations
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /vaccination-records/{studentId} [get]
func (h *VaccinationHandler) ListByStudent(c *gin.Context) {
	records, err := h.vaccinations.ListByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "vaccination records", records)
}
