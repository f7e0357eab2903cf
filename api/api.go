package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quotelane/quotelane-backend/usecases"
)

type API struct {
	usecases usecases.Usecases
}

func New(usecases usecases.Usecases) *API {
	return &API{
		usecases: usecases,
	}
}

func (api *API) Routes(r gin.IRoutes) {
	r.GET("/liveness", api.handleLivenessProbe)

	r.POST("/leads/:lead_id/evaluation", api.handleEvaluateLead)
	r.GET("/leads/:lead_id/classification", api.handleGetLeadClassification)

	r.GET("/carriers", api.handleListCarriers)
	r.POST("/carriers", api.handleCreateCarrier)
	r.GET("/carriers/:carrier_id", api.handleGetCarrier)
	r.PATCH("/carriers/:carrier_id", api.handleUpdateCarrier)

	r.GET("/appetite-rules", api.handleListAppetiteRules)
	r.POST("/appetite-rules", api.handleCreateAppetiteRule)
	r.GET("/appetite-rules/:rule_id", api.handleGetAppetiteRule)
	r.POST("/appetite-rules/:rule_id/activate", api.handleActivateAppetiteRule)
	r.POST("/appetite-rules/:rule_id/deactivate", api.handleDeactivateAppetiteRule)
}
