package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/shm-health-api/internal/service"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
	"github.com/noah-isme/shm-health-api/pkg/response"
)

// VaccineHandler exposes vaccine endpoints.
type VaccineHandler struct {
	vaccines *service.VaccineService
}

// NewVaccineHandler constructs VaccineHandler.
func NewVaccineHandler(vaccines *service.VaccineService) *VaccineHandler {
	return &VaccineHandler{vaccines: vaccines}
}

// Create godoc
// @Summary Create vaccine
// @Tags Vaccines
// @Accept json
// @Produce json
// @Param payload body service.CreateVaccineRequest true "Vaccine payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /vaccine [post]
func (h *VaccineHandler) Create(c *gin.Context) {
	var req service.CreateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	vaccine, err := h.vaccines.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "vaccine created", vaccine)
}
