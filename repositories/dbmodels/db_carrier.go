package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

const TABLE_CARRIERS = "carriers"

type DBCarrier struct {
	Id             uuid.UUID `db:"id"`
	OrganizationId string    `db:"org_id"`
	Name           string    `db:"name"`
	MarketType     string    `db:"market_type"`
	PriorityRank   int       `db:"priority_rank"`
	Enabled        bool      `db:"enabled"`
	CreatedAt      time.Time `db:"created_at"`
}

var SelectCarrierColumn = utils.ColumnList[DBCarrier]()

func AdaptCarrier(db DBCarrier) models.Carrier {
	return models.Carrier{
		Id:             db.Id,
		OrganizationId: db.OrganizationId,
		Name:           db.Name,
		MarketType:     models.MarketTypeFromString(db.MarketType),
		PriorityRank:   db.PriorityRank,
		Enabled:        db.Enabled,
		CreatedAt:      db.CreatedAt,
	}
}
