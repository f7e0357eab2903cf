package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

const TABLE_LEADS = "leads"

type DBLead struct {
	Id             uuid.UUID `db:"id"`
	OrganizationId string    `db:"org_id"`
	Name           string    `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
}

var SelectLeadColumn = utils.ColumnList[DBLead]()

func AdaptLead(db DBLead) models.Lead {
	return models.Lead{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Name:           db.Name,
		CreatedAt:      db.CreatedAt,
	}
}
