package dto

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
)

func uuidFromString(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrapf(models.BadParameterError,
			"'%s' is not a valid uuid", s)
	}
	return id, nil
}
