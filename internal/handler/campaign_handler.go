package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/shm-health-api/internal/service"
	appErrors "github.com/noah-isme/shm-health-api/pkg/errors"
	"github.com/noah-isme/shm-health-api/pkg/response"
)

// CampaignHandler exposes campaign endpoints.
type CampaignHandler struct {
	campaigns *service.CampaignService
}

// NewCampaignHandler constructs CampaignHandler.
func NewCampaignHandler(campaigns *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// Create godoc
// @Summary Create vaccination campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param payload body service.CreateCampaignRequest true "Campaign payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /campaign [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req service.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	campaign, err := h.campaigns.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "campaign created", campaign)
}

// List godoc
// @Summary List campaigns
// @Tags Campaigns
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaigns.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "campaigns", campaigns)
}

// EligibleStudents godoc
// @Summary List students eligible for a campaign
// @Tags Campaigns
// @Produce json
// @Param campaignId path string true "Campaign ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /student-eligible-for-campaign/{campaignId} [get]
func (h *CampaignHandler) EligibleStudents(c *gin.Context) {
	campaignID := c.Param("campaignId")
	if campaignID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "campaign id is required"))
		return
	}
	eligible, err := h.campaigns.ResolveEligible(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "eligible students", eligible)
}
