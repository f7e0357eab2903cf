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

func (api *API) handleListAppetiteRules(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}

	filters := models.ListAppetiteRulesFilters{
		LineOfBusiness: c.Query("line_of_business"),
		ActiveOnly:     c.Query("active_only") == "true",
	}
	if rawCarrierId := c.Query("carrier_id"); rawCarrierId != "" {
		carrierId, err := uuid.Parse(rawCarrierId)
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, "invalid carrier id"))
			return
		}
		filters.CarrierId = &carrierId
	}

	usecase := api.usecases.NewAppetiteRuleUsecase()
	rules, err := usecase.ListRules(ctx, organizationId, filters)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appetite_rules": pure_utils.Map(rules, dto.AdaptAppetiteRuleDto),
	})
}

func (api *API) handleGetAppetiteRule(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}
	ruleId, err := ruleIdParam(c)
	if err != nil {
		presentError(c, err)
		return
	}

	usecase := api.usecases.NewAppetiteRuleUsecase()
	rule, err := usecase.GetRule(ctx, organizationId, ruleId)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appetite_rule": dto.AdaptAppetiteRuleDto(rule)})
}

func (api *API) handleCreateAppetiteRule(c *gin.Context) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}

	var body dto.CreateAppetiteRuleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input, err := dto.AdaptCreateAppetiteRuleInput(body, organizationId)
	if err != nil {
		presentError(c, err)
		return
	}

	usecase := api.usecases.NewAppetiteRuleUsecase()
	rule, err := usecase.CreateRule(ctx, input)
	if err != nil {
		presentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appetite_rule": dto.AdaptAppetiteRuleDto(rule)})
}

func (api *API) handleActivateAppetiteRule(c *gin.Context) {
	api.setAppetiteRuleActive(c, true)
}

func (api *API) handleDeactivateAppetiteRule(c *gin.Context) {
	api.setAppetiteRuleActive(c, false)
}

func (api *API) setAppetiteRuleActive(c *gin.Context, active bool) {
	ctx := c.Request.Context()

	organizationId, err := utils.OrganizationIdFromRequest(c.Request)
	if err != nil {
		presentError(c, err)
		return
	}
	ruleId, err := ruleIdParam(c)
	if err != nil {
		presentError(c, err)
		return
	}

	usecase := api.usecases.NewAppetiteRuleUsecase()
	if active {
		err = usecase.ActivateRule(ctx, organizationId, ruleId)
	} else {
		err = usecase.DeactivateRule(ctx, organizationId, ruleId)
	}
	if err != nil {
		presentError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ruleIdParam(c *gin.Context) (uuid.UUID, error) {
	ruleId, err := uuid.Parse(c.Param("rule_id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(models.BadParameterError, "invalid appetite rule id")
	}
	return ruleId, nil
}
