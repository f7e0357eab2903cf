package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

const TABLE_CARRIER_FIT_RESULTS = "carrier_fit_results"

type DBCarrierFitResult struct {
	Id          uuid.UUID  `db:"id"`
	LeadId      uuid.UUID  `db:"lead_id"`
	CarrierId   uuid.UUID  `db:"carrier_id"`
	Eligible    bool       `db:"eligible"`
	Tier        string     `db:"tier"`
	Score       int        `db:"score"`
	Reasons     []byte     `db:"reasons"`
	HasRule     bool       `db:"has_rule"`
	RuleId      *uuid.UUID `db:"rule_id"`
	RuleVersion *int       `db:"rule_version"`
	EvaluatedAt time.Time  `db:"evaluated_at"`
}

var SelectCarrierFitResultColumn = utils.ColumnList[DBCarrierFitResult]()

func AdaptCarrierFitResult(db DBCarrierFitResult) (models.CarrierFitResult, error) {
	result := models.CarrierFitResult{
		LeadId:      db.LeadId,
		CarrierId:   db.CarrierId,
		Eligible:    db.Eligible,
		Tier:        models.FitTierFromString(db.Tier),
		Score:       db.Score,
		HasRule:     db.HasRule,
		RuleId:      db.RuleId,
		RuleVersion: db.RuleVersion,
		EvaluatedAt: db.EvaluatedAt,
	}

	if len(db.Reasons) > 0 {
		if err := json.Unmarshal(db.Reasons, &result.Reasons); err != nil {
			return models.CarrierFitResult{}, errors.Wrap(err,
				"unable to unmarshal carrier fit result reasons")
		}
	}
	return result, nil
}

func SerializeReasons(reasons []models.Reason) ([]byte, error) {
	if reasons == nil {
		reasons = []models.Reason{}
	}
	serialized, err := json.Marshal(reasons)
	return serialized, errors.Wrap(err, "unable to marshal carrier fit result reasons")
}
