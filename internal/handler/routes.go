package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts. Exports may be nil when
// the feature flag is off.
type Handlers struct {
	Vaccines      *VaccineHandler
	Campaigns     *CampaignHandler
	Registrations *RegistrationHandler
	Vaccinations  *VaccinationHandler
	Diseases      *DiseaseHandler
	Exports       *ExportHandler
}

// RegisterRoutes mounts the API surface under the given prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	api := r.Group(prefix)

	api.POST("/vaccine", h.Vaccines.Create)

	api.POST("/campaign", h.Campaigns.Create)
	api.GET("/campaigns", h.Campaigns.List)
	api.GET("/student-eligible-for-campaign/:campaignId", h.Campaigns.EligibleStudents)

	api.POST("/register-request", h.Registrations.Create)
	api.PATCH("/register-request/:id", h.Registrations.SetConsent)
	api.POST("/pre-vaccination-record/:id", h.Registrations.StagePreVaccination)

	api.POST("/vaccination-record", h.Vaccinations.Create)
	api.PATCH("/vaccination-record/:id", h.Vaccinations.Update)
	api.GET("/vaccination-record/:id", h.Vaccinations.Get)
	api.GET("/vaccination-records/:studentId", h.Vaccinations.ListByStudent)

	api.POST("/disease", h.Diseases.Create)
	api.GET("/diseases", h.Diseases.List)
	api.PUT("/disease/:id", h.Diseases.Update)
	api.DELETE("/disease/:id", h.Diseases.Delete)
	api.POST("/disease-record", h.Diseases.CreateRecord)
	api.PUT("/disease-record/:id", h.Diseases.UpdateRecord)
	api.GET("/disease-records/:studentId", h.Diseases.ListRecords)
	api.GET("/disease-records/:studentId/category/:category", h.Diseases.ListRecordsByCategory)
	api.DELETE("/disease-record/:id", h.Diseases.DeleteRecord)

	if h.Exports != nil {
		api.POST("/exports", h.Exports.Create)
		api.GET("/exports/:id", h.Exports.Status)
		api.GET("/exports/download/:token", h.Exports.Download)
	}
}
