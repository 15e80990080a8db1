package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/shm-health-api/internal/service"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
	"github.com/noah-isme/shm-health-api/pkg/response"
)

// DiseaseHandler exposes disease and disease-record endpoints.
type DiseaseHandler struct {
	diseases *service.DiseaseService
}

// NewDiseaseHandler constructs DiseaseHandler.
func NewDiseaseHandler(diseases *service.DiseaseService) *DiseaseHandler {
	return &DiseaseHandler{diseases: diseases}
}

// Create godoc
// @Summary Create disease
// @Tags Diseases
// @Accept json
// @Produce json
// @Param payload body service.DiseaseRequest true "Disease payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Router /disease [post]
func (h *DiseaseHandler) Create(c *gin.Context) {
	var req service.DiseaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	disease, err := h.diseases.CreateDisease(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "disease created", disease)
}

// List godoc
// @Summary List diseases
// @Tags Diseases
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /diseases [get]
func (h *DiseaseHandler) List(c *gin.Context) {
	diseases, err := h.diseases.ListDiseases(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "diseases", diseases)
}

// Update godoc
// @Summary Update disease
// @Tags Diseases
// @Accept json
// @Produce json
// @Param id path string true "Disease ID"
// @Param payload body service.DiseaseRequest true "Disease payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /disease/{id} [put]
func (h *DiseaseHandler) Update(c *gin.Context) {
	var req service.DiseaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	disease, err := h.diseases.UpdateDisease(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "disease updated", disease)
}

// Delete godoc
// @Summary Delete disease
// @Tags Diseases
// @Produce json
// @Param id path string true "Disease ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /disease/{id} [delete]
func (h *DiseaseHandler) Delete(c *gin.Context) {
	disease, err := h.diseases.DeleteDisease(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "disease deleted", disease)
}

// CreateRecord godoc
// @Summary Create disease record
// @Tags DiseaseRecords
// @Accept json
// @Produce json
// @Param payload body service.DiseaseRecordRequest true "Record payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /disease-record [post]
func (h *DiseaseHandler) CreateRecord(c *gin.Context) {
	var req service.DiseaseRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.diseases.CreateDiseaseRecord(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "disease record created", record)
}

// UpdateRecord godoc
// @Summary Update disease record
// @Tags DiseaseRecords
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payload body service.DiseaseRecordRequest true "Record payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /disease-record/{id} [put]
func (h *DiseaseHandler) UpdateRecord(c *gin.Context) {
	var req service.DiseaseRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.diseases.UpdateDiseaseRecord(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "disease record updated", record)
}

// ListRecords godoc
// @Summary List a student's disease records
// @Tags DiseaseRecords
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /disease-records/{studentId} [get]
func (h *DiseaseHandler) ListRecords(c *gin.Context) {
	records, err := h.diseases.ListDiseaseRecords(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "disease records", records)
}

// ListRecordsByCategory godoc
// @Summary List a student's disease records filtered by disease category
// @Tags DiseaseRecords
// @Produce json
// @Param studentId path string true "Student ID"
// @Param category path string true "Disease category"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Router /disease-records/{studentId}/category/{category} [get]
func (h *DiseaseHandler) ListRecordsByCategory(c *gin.Context) {
	records, err := h.diseases.ListDiseaseRecordsByCategory(c.Request.Context(), c.Param("studentId"), c.Param("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "disease records", records)
}

// DeleteRecord godoc
// @Summary Delete disease record
// @Tags DiseaseRecords
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /disease-record/{id} [delete]
func (h *DiseaseHandler) DeleteRecord(c *gin.Context) {
	record, err := h.diseases.DeleteDiseaseRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "disease record deleted", record)
}
