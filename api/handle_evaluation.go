package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/dto"
	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

func (api *API) handleEvaluateLead(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}
	leadId, err := leadIdParam(c)
	if err != nil {
		presentError(c, err)
		return
	}

	usecase := api.usecases.NewEvaluationUsecase()
	evaluation, err := usecase.EvaluateLead(ctx, organizationId, leadId)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdaptLeadEvaluationDto(evaluation))
}

func (api *API) handleGetLeadClassification(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}
	leadId, err := leadIdParam(c)
	if err != nil {
		presentError(c, err)
		return
	}

	usecase := api.usecases.NewEvaluationUsecase()
	evaluation, err := usecase.GetLeadClassification(ctx, organizationId, leadId)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdaptLeadEvaluationDto(evaluation))
}

func leadIdParam(c *gin.Context) (uuid.UUID, error) {
	leadId, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(models.BadParameterError, "invalid lead id")
	}
	return leadId, nil
}
