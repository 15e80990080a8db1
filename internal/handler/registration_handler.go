package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/shm-health-api/internal/service"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
	"github.com/noah-isme/shm-health-api/pkg/response"
)

// RegistrationHandler exposes registration and pre-vaccination endpoints.
type RegistrationHandler struct {
	registrations *service.RegistrationService
}

// NewRegistrationHandler constructs RegistrationHandler.
func NewRegistrationHandler(registrations *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

type createRegistrationsRequest struct {
	CampaignID string `json:"campaignId" binding:"required"`
}

type stagePreVaccinationRequest struct {
	CampaignID string `json:"campaignId"`
}

// Create godoc
// @Summary Fan registrations out to every eligible student
// @Tags Registrations
// @Accept json
// @Produce json
// @Param payload body createRegistrationsRequest true "Campaign reference"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /register-request [post]
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req createRegistrationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "campaignId is required"))
		return
	}
	registrations, err := h.registrations.CreateRegistrations(c.Request.Context(), req.CampaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "registrations created", registrations)
}

// SetConsent godoc
// @Summary Set parental consent on a registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param payload body service.SetConsentRequest true "Consent payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /register-request/{id} [patch]
func (h *RegistrationHandler) SetConsent(c *gin.Context) {
	var req service.SetConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	registration, err := h.registrations.SetConsent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "consent updated", registration)
}

// StagePreVaccination godoc
// @Summary Stage pending pre-vaccination records for confirmed registrations
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /pre-vaccination-record/{id} [post]
func (h *RegistrationHandler) StagePreVaccination(c *gin.Context) {
	campaignID := c.Param("id")
	var req stagePreVaccinationRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.CampaignID != "" {
		campaignID = req.CampaignID
	}
	staged, err := h.registrations.StagePreVaccination(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "pre-vaccination records staged", staged)
}
