package models

import (
	"time"

	"github.com/google/uuid"
)

type FitTier string

const (
	GoodFit      FitTier = "GOOD_FIT"
	PossibleFit  FitTier = "POSSIBLE_FIT"
	ReviewNeeded FitTier = "REVIEW_NEEDED"
	NoFit        FitTier = "NO_FIT"
)

var ValidFitTiers = []FitTier{GoodFit, PossibleFit, ReviewNeeded, NoFit}

func FitTierFromString(s string) FitTier {
	switch s {
	case "GOOD_FIT":
		return GoodFit
	case "POSSIBLE_FIT":
		return PossibleFit
	case "REVIEW_NEEDED":
		return ReviewNeeded
	default:
		return NoFit
	}
}

// Rank orders tiers for presentation: better fits sort first.
func (t FitTier) Rank() int {
	switch t {
	case GoodFit:
		return 0
	case PossibleFit:
		return 1
	case ReviewNeeded:
		return 2
	default:
		return 3
	}
}

type ReasonKind string

const (
	ReasonInclusion ReasonKind = "inclusion"
	ReasonExclusion ReasonKind = "exclusion"
	ReasonWarning   ReasonKind = "warning"
)

// Reason is one explainability entry attached to a carrier fit result. Code is
// a stable machine-readable tag, Message is display text, Detail optionally
// carries the offending values (regions, industries, amounts).
type Reason struct {
	Code    string     `json:"code"`
	Kind    ReasonKind `json:"kind"`
	Message string     `json:"message"`
	Detail  string     `json:"detail,omitempty"`
}

// CarrierFitResult is the outcome of evaluating one carrier's appetite rule
// against one lead. Persisted keyed by (lead, carrier): re-evaluation replaces
// the previous result instead of appending.
type CarrierFitResult struct {
	LeadId    uuid.UUID
	CarrierId uuid.UUID
	Eligible  bool
	Tier      FitTier
	// Score in [0, 100], baseline 50.
	Score   int
	Reasons []Reason
	// HasRule is false when no appetite rule exists for the carrier at all.
	// Such results are skip outcomes: excluded from market aggregation and
	// reported separately from rule-based exclusions.
	HasRule     bool
	RuleId      *uuid.UUID
	RuleVersion *int
	EvaluatedAt time.Time
}
