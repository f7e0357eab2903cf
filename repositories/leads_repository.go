package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/repositories/dbmodels"
)

func selectLeads() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectLeadColumn...).
		From(dbmodels.TABLE_LEADS)
}

func (repo *QuotelaneDbRepository) GetLeadById(ctx context.Context, exec Executor,
	leadId uuid.UUID,
) (models.Lead, error) {
	return SqlToModel(
		ctx,
		exec,
		selectLeads().Where(squirrel.Eq{"id": leadId}),
		dbmodels.AdaptLead,
	)
}

// GetLatestIntakeSubmission returns the lead's most recent intake, or nil when
// the lead never submitted one.
func (repo *QuotelaneDbRepository) GetLatestIntakeSubmission(ctx context.Context, exec Executor,
	leadId uuid.UUID,
) (*models.IntakeSubmission, error) {
	return SqlToOptionalModelAdapterWithErr(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIntakeSubmissionColumn...).
			From(dbmodels.TABLE_INTAKE_SUBMISSIONS).
			Where(squirrel.Eq{"lead_id": leadId}).
			OrderBy("submitted_at DESC").
			Limit(1),
		dbmodels.AdaptIntakeSubmission,
	)
}

// LockLead takes the lead's row lock for the duration of the transaction. The
// write phase of an evaluation holds it so that concurrent evaluations of the
// same lead serialize instead of interleaving their upserts.
func (repo *QuotelaneDbRepository) LockLead(ctx context.Context, tx Transaction,
	leadId uuid.UUID,
) error {
	result, err := tx.Exec(ctx,
		"SELECT id FROM leads WHERE id = $1 FOR UPDATE", leadId)
	if err != nil {
		return errors.Wrap(err, "error locking lead row")
	}
	if result.RowsAffected() == 0 {
		return errors.Wrap(models.NotFoundError, "lead to lock does not exist")
	}
	return nil
}
