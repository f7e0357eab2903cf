package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/dto"
	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/pure_utils"
	"github.com/quotelane/quotelane-backend/utils"
)

func (api *API) handleListCarriers(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}

	usecase := api.usecases.NewCarrierUsecase()
	carriers, err := usecase.ListCarriers(ctx, organizationId)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"carriers": pure_utils.Map(carriers, dto.AdaptCarrierDto),
	})
}

func (api *API) handleGetCarrier(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}
	carrierId, err := carrierIdParam(c)
	if err != nil {
		presentError(c, err)
		return
	}

	usecase := api.usecases.NewCarrierUsecase()
	carrier, err := usecase.GetCarrier(ctx, organizationId, carrierId)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carrier": dto.AdaptCarrierDto(carrier)})
}

func (api *API) handleCreateCarrier(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}

	var body dto.CreateCarrierBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usecase := api.usecases.NewCarrierUsecase()
	carrier, err := usecase.CreateCarrier(ctx, models.CreateCarrierInput{
		OrganizationId: organizationId,
		Name:           body.Name,
		MarketType:     models.MarketTypeFromString(body.MarketType),
		PriorityRank:   body.PriorityRank,
	})
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"carrier": dto.AdaptCarrierDto(carrier)})
}

func (api *API) handleUpdateCarrier(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}
	carrierId, err := carrierIdParam(c)
	if err != nil {
		presentError(c, err)
		return
	}

	var body dto.UpdateCarrierBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input := models.UpdateCarrierInput{
		Id:           carrierId,
		Name:         body.Name,
		PriorityRank: body.PriorityRank,
		Enabled:      body.Enabled,
	}
	if body.MarketType != nil {
		marketType := models.MarketTypeFromString(*body.MarketType)
		input.MarketType = &marketType
	}

	usecase := api.usecases.NewCarrierUsecase()
	carrier, err := usecase.UpdateCarrier(ctx, organizationId, input)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carrier": dto.AdaptCarrierDto(carrier)})
}

func carrierIdParam(c *gin.Context) (uuid.UUID, error) {
	carrierId, err := uuid.Parse(c.Param("carrier_id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(models.BadParameterError, "invalid carrier id")
	}
	return carrierId, nil
}
