package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

const TABLE_INTAKE_SUBMISSIONS = "intake_submissions"

type DBIntakeSubmission struct {
	Id             uuid.UUID `db:"id"`
	LeadId         uuid.UUID `db:"lead_id"`
	LineOfBusiness string    `db:"line_of_business"`
	Answers        []byte    `db:"answers"`
	SubmittedAt    time.Time `db:"submitted_at"`
}

var SelectIntakeSubmissionColumn = utils.ColumnList[DBIntakeSubmission]()

func AdaptIntakeSubmission(db DBIntakeSubmission) (models.IntakeSubmission, error) {
	submission := models.IntakeSubmission{
		Id:             db.Id,
		LeadId:         db.LeadId,
		LineOfBusiness: db.LineOfBusiness,
		SubmittedAt:    db.SubmittedAt,
	}

	if len(db.Answers) > 0 {
		if err := json.Unmarshal(db.Answers, &submission.Answers); err != nil {
			return models.IntakeSubmission{}, errors.Wrap(err,
				"unable to unmarshal intake submission answers")
		}
	}
	return submission, nil
}
