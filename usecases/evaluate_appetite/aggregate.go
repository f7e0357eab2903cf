package evaluate_appetite

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
)

// Lead-level reason codes emitted by the market aggregator.
const (
	ReasonStandardMarketViable    = "standard_market_viable"
	ReasonMultipleStandardOptions = "multiple_standard_options"
	ReasonNoStandardEligible      = "no_standard_eligible"
	ReasonEsViable                = "es_viable"
	ReasonMixedMarketSignals      = "mixed_market_signals"
	ReasonManualReviewRequired    = "manual_review_required"
)

const (
	baseConfidence          = 0.60
	matchConfidenceBonus    = 0.10
	extraCarrierConfidence  = 0.05
	standardScalingCap      = 0.25
	excessSurplusScalingCap = 0.20
)

// AggregateMarket folds all per-carrier fit results into one market direction
// for the lead. Ruleless (skip) results are excluded from the counts entirely.
// The aggregation is recomputed from scratch on every run and is deterministic
// for a given set of inputs.
func AggregateMarket(
	leadId uuid.UUID,
	results []models.CarrierFitResult,
	carriersById map[uuid.UUID]models.Carrier,
) models.MarketClassification {
	var stdGood, stdPossible, stdEligible int
	var esEligible, esQualifying int

	for _, result := range results {
		if !result.HasRule {
			continue
		}
		carrier, ok := carriersById[result.CarrierId]
		if !ok {
			continue
		}

		switch carrier.MarketType {
		case models.MarketTypeStandard:
			if result.Eligible {
				stdEligible++
			}
			switch result.Tier {
			case models.GoodFit:
				stdGood++
			case models.PossibleFit:
				stdPossible++
			}
		case models.MarketTypeExcessSurplus:
			if result.Eligible {
				esEligible++
			}
			if result.Tier == models.GoodFit || result.Tier == models.PossibleFit {
				esQualifying++
			}
		}
	}

	classification := models.MarketClassification{LeadId: leadId}

	switch {
	case stdGood >= 1 || stdPossible >= 2:
		qualifying := stdGood + stdPossible
		classification.Classification = models.MarketStandard
		classification.Confidence = scaledConfidence(qualifying, standardScalingCap)
		classification.ReasonCodes = []string{ReasonStandardMarketViable}
		if qualifying > 1 {
			classification.ReasonCodes = append(classification.ReasonCodes, ReasonMultipleStandardOptions)
		}

	case stdEligible == 0 && esQualifying >= 1:
		classification.Classification = models.MarketExcessSurplus
		classification.Confidence = scaledConfidence(esQualifying, excessSurplusScalingCap)
		classification.ReasonCodes = []string{ReasonNoStandardEligible, ReasonEsViable}

	default:
		classification.Classification = models.MarketBorderline
		classification.Confidence = clampConfidence(baseConfidence - matchConfidenceBonus)
		if stdEligible >= 1 && esEligible >= 1 {
			classification.ReasonCodes = []string{ReasonMixedMarketSignals}
		} else {
			classification.ReasonCodes = []string{ReasonManualReviewRequired}
		}
	}

	return classification
}

// scaledConfidence grows with the number of qualifying carriers beyond the
// first, up to a per-market cap.
func scaledConfidence(qualifying int, limit float64) float64 {
	scaling := extraCarrierConfidence * float64(qualifying-1)
	if scaling > limit {
		scaling = limit
	}
	if scaling < 0 {
		scaling = 0
	}
	return clampConfidence(baseConfidence + matchConfidenceBonus + scaling)
}

func clampConfidence(confidence float64) float64 {
	if confidence < models.MinClassificationConfidence {
		return models.MinClassificationConfidence
	}
	if confidence > models.MaxClassificationConfidence {
		return models.MaxClassificationConfidence
	}
	return confidence
}

// RankResults orders fit results for presentation: best tier first, then
// highest score, then carrier priority rank, then carrier name so the order is
// fully deterministic.
func RankResults(results []models.CarrierFitResult, carriersById map[uuid.UUID]models.Carrier) []models.CarrierFitResult {
	ranked := slices.Clone(results)
	slices.SortStableFunc(ranked, func(a, b models.CarrierFitResult) int {
		if diff := a.Tier.Rank() - b.Tier.Rank(); diff != 0 {
			return diff
		}
		if diff := b.Score - a.Score; diff != 0 {
			return diff
		}
		carrierA, carrierB := carriersById[a.CarrierId], carriersById[b.CarrierId]
		if diff := carrierA.PriorityRank - carrierB.PriorityRank; diff != 0 {
			return diff
		}
		return strings.Compare(carrierA.Name, carrierB.Name)
	})
	return ranked
}
