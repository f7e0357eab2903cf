package models

import (
	"github.com/google/uuid"
)

// CarrierFitSummary is one carrier's result as presented to the caller, with
// the reason list already filtered for its bucket.
type CarrierFitSummary struct {
	CarrierId   uuid.UUID
	CarrierName string
	MarketType  MarketType
	Eligible    bool
	Tier        FitTier
	Score       int
	Reasons     []Reason
}

// LeadEvaluation is the full response of one evaluation run: the lead-level
// classification plus carrier results bucketed for display. Within each bucket
// carriers are ranked by tier, then descending score, then carrier priority.
type LeadEvaluation struct {
	LeadId         uuid.UUID
	Classification MarketClassification

	// GOOD_FIT and POSSIBLE_FIT carriers; inclusion and warning reasons only.
	Recommended []CarrierFitSummary
	// NO_FIT carriers that do have a rule; exclusion reasons only.
	Excluded []CarrierFitSummary
	// REVIEW_NEEDED carriers; all reasons.
	NeedsReview []CarrierFitSummary
	// Carriers skipped because no appetite rule exists for them.
	Skipped []CarrierFitSummary
}
