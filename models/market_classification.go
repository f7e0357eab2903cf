package models

import (
	"time"

	"github.com/google/uuid"
)

type MarketDirection string

const (
	MarketStandard      MarketDirection = "STANDARD"
	MarketExcessSurplus MarketDirection = "EXCESS_SURPLUS"
	MarketBorderline    MarketDirection = "BORDERLINE"
)

func MarketDirectionFromString(s string) MarketDirection {
	switch s {
	case "STANDARD":
		return MarketStandard
	case "EXCESS_SURPLUS":
		return MarketExcessSurplus
	default:
		return MarketBorderline
	}
}

// Confidence bounds for a market classification. Every confidence value is
// clamped into this interval, whatever the carrier counts are.
const (
	MinClassificationConfidence = 0.40
	MaxClassificationConfidence = 0.95
)

// MarketClassification is the lead-level market direction. One row per lead,
// overwritten on every evaluation; only the market aggregator writes it.
type MarketClassification struct {
	LeadId         uuid.UUID
	Classification MarketDirection
	// Confidence in [MinClassificationConfidence, MaxClassificationConfidence].
	Confidence  float64
	ReasonCodes []string
	EvaluatedAt time.Time
}
