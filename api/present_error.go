package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

type errorDto struct {
	Message string `json:"message"`
}

// presentError maps the model error taxonomy to HTTP status codes. Anything
// outside the taxonomy is an internal error: logged with its full wrap chain,
// presented without detail.
func presentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, errorDto{Message: err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, errorDto{Message: err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, errorDto{Message: err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, errorDto{Message: err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, errorDto{Message: err.Error()})
	default:
		ctx := c.Request.Context()
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error handling request",
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, errorDto{Message: "internal error"})
	}
}
