package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

const TABLE_MARKET_CLASSIFICATIONS = "market_classifications"

type DBMarketClassification struct {
	Id             uuid.UUID `db:"id"`
	LeadId         uuid.UUID `db:"lead_id"`
	Classification string    `db:"classification"`
	Confidence     float64   `db:"confidence"`
	ReasonCodes    []string  `db:"reason_codes"`
	EvaluatedAt    time.Time `db:"evaluated_at"`
}

var SelectMarketClassificationColumn = utils.ColumnList[DBMarketClassification]()

func AdaptMarketClassification(db DBMarketClassification) models.MarketClassification {
	return models.MarketClassification{
		LeadId:         db.LeadId,
		Classification: models.MarketDirectionFromString(db.Classification),
		Confidence:     db.Confidence,
		ReasonCodes:    db.ReasonCodes,
		EvaluatedAt:    db.EvaluatedAt,
	}
}
