package evaluate_appetite

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/quotelane/quotelane-backend/models"
)

// Intake answer keys. These are the stable identifiers produced by the form
// builder; the extractor pulls each one by key and falls back to a zero value
// when the answer is missing or malformed.
const (
	answerKeyOperatingRegions      = "operating-regions"
	answerKeyAnnualRevenue         = "annual-revenue"
	answerKeyEmployeeCount         = "employee-count"
	answerKeyYearsInOperation      = "years-in-operation"
	answerKeyPrimaryIndustry       = "primary-industry"
	answerKeyAnyLossesInWindow     = "any-losses-in-window"
	answerKeyLossCountInWindow     = "loss-count-in-window"
	answerKeyTotalIncurredInWindow = "total-incurred-in-window"
	answerKeySubcontractorsUsed    = "subcontractors-used"
	answerKeyCertificatesCollected = "certificates-collected"
	answerKeyOperationsDescription = "operations-description"
)

// ExtractFacts normalizes a raw intake answer mapping into a FactRecord. The
// mapping may be flat or nested under an "answers" wrapper. Extraction is
// total: malformed or missing answers degrade to zero values and never fail
// the evaluation run.
func ExtractFacts(raw map[string]any) models.FactRecord {
	answers := raw
	if nested, ok := raw["answers"].(map[string]any); ok {
		answers = nested
	}

	regions := set.New[string](0)
	for _, region := range toStringSlice(answers[answerKeyOperatingRegions]) {
		region = strings.ToUpper(strings.TrimSpace(region))
		if region != "" {
			regions.Insert(region)
		}
	}

	usesSubcontractors := toBool(answers[answerKeySubcontractorsUsed])
	collectsCertificates := toBool(answers[answerKeyCertificatesCollected])

	facts := models.FactRecord{
		Regions:          regions,
		AnnualRevenue:    max(toFloat(answers[answerKeyAnnualRevenue]), 0),
		EmployeeCount:    max(toInt(answers[answerKeyEmployeeCount]), 0),
		YearsInOperation: max(toInt(answers[answerKeyYearsInOperation]), 0),
		Industry:         strings.TrimSpace(toString(answers[answerKeyPrimaryIndustry])),

		HasLosses:     toBool(answers[answerKeyAnyLossesInWindow]),
		LossCount:     max(toInt(answers[answerKeyLossCountInWindow]), 0),
		TotalIncurred: max(toFloat(answers[answerKeyTotalIncurredInWindow]), 0),

		UsesSubcontractors:    usesSubcontractors,
		CollectsCertificates:  collectsCertificates,
		OperationsDescription: toString(answers[answerKeyOperationsDescription]),

		MultiRegion:      regions.Size() > 1,
		SubsWithoutCerts: usesSubcontractors && !collectsCertificates,
	}

	// A positive claim count or incurred amount implies losses even when the
	// yes/no answer was skipped.
	if facts.LossCount > 0 || facts.TotalIncurred > 0 {
		facts.HasLosses = true
	}
	return facts
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return int(toFloat(v))
		}
		return parsed
	default:
		return 0
	}
}

func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "y", "1":
			return true
		default:
			return false
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}
