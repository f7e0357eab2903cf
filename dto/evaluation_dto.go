package dto

import (
	"time"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/pure_utils"
)

type Reason struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func AdaptReasonDto(reason models.Reason) Reason {
	return Reason{
		Code:    reason.Code,
		Kind:    string(reason.Kind),
		Message: reason.Message,
		Detail:  reason.Detail,
	}
}

type CarrierFit struct {
	CarrierId   string   `json:"carrier_id"`
	CarrierName string   `json:"carrier_name"`
	MarketType  string   `json:"market_type"`
	Eligible    bool     `json:"eligible"`
	Tier        string   `json:"tier"`
	Score       int      `json:"score"`
	Reasons     []Reason `json:"reasons"`
}

func AdaptCarrierFitDto(summary models.CarrierFitSummary) CarrierFit {
	reasons := pure_utils.Map(summary.Reasons, AdaptReasonDto)
	if reasons == nil {
		reasons = []Reason{}
	}
	return CarrierFit{
		CarrierId:   summary.CarrierId.String(),
		CarrierName: summary.CarrierName,
		MarketType:  string(summary.MarketType),
		Eligible:    summary.Eligible,
		Tier:        string(summary.Tier),
		Score:       summary.Score,
		Reasons:     reasons,
	}
}

type MarketClassification struct {
	Classification string    `json:"classification"`
	Confidence     float64   `json:"confidence"`
	ReasonCodes    []string  `json:"reason_codes"`
	EvaluatedAt    time.Time `json:"evaluated_at"`
}

func AdaptMarketClassificationDto(classification models.MarketClassification) MarketClassification {
	reasonCodes := classification.ReasonCodes
	if reasonCodes == nil {
		reasonCodes = []string{}
	}
	return MarketClassification{
		Classification: string(classification.Classification),
		Confidence:     classification.Confidence,
		ReasonCodes:    reasonCodes,
		EvaluatedAt:    classification.EvaluatedAt,
	}
}

type LeadEvaluation struct {
	LeadId         string               `json:"lead_id"`
	Classification MarketClassification `json:"classification"`
	Recommended    []CarrierFit         `json:"recommended"`
	Excluded       []CarrierFit         `json:"excluded"`
	NeedsReview    []CarrierFit         `json:"needs_review"`
	Skipped        []CarrierFit         `json:"skipped"`
}

func AdaptLeadEvaluationDto(evaluation models.LeadEvaluation) LeadEvaluation {
	adaptBucket := func(summaries []models.CarrierFitSummary) []CarrierFit {
		bucket := pure_utils.Map(summaries, AdaptCarrierFitDto)
		if bucket == nil {
			return []CarrierFit{}
		}
		return bucket
	}

	return LeadEvaluation{
		LeadId:         evaluation.LeadId.String(),
		Classification: AdaptMarketClassificationDto(evaluation.Classification),
		Recommended:    adaptBucket(evaluation.Recommended),
		Excluded:       adaptBucket(evaluation.Excluded),
		NeedsReview:    adaptBucket(evaluation.NeedsReview),
		Skipped:        adaptBucket(evaluation.Skipped),
	}
}
