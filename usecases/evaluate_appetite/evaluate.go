package evaluate_appetite

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-set/v2"

	"github.com/quotelane/quotelane-backend/models"
)

// Reason codes attached to carrier fit results. Downstream consumers key off
// these strings; changing one is a breaking change for every agency dashboard
// displaying evaluation results.
const (
	ReasonStateExcluded      = "state_excluded"
	ReasonStateNotInAppetite = "state_not_in_appetite"
	ReasonStateAllowed       = "state_allowed"
	ReasonNoRegionLimits     = "no_region_restriction"

	ReasonIndustryExcluded      = "industry_excluded"
	ReasonIndustryNotInAppetite = "industry_not_in_appetite"
	ReasonIndustryAllowed       = "industry_allowed"
	ReasonNoIndustryLimits      = "no_industry_restriction"

	ReasonRevenueBelowMinimum = "revenue_below_minimum"
	ReasonRevenueAboveMaximum = "revenue_above_maximum"
	ReasonRevenueInRange      = "revenue_in_range"

	ReasonEmployeesBelowMinimum = "employee_count_below_minimum"
	ReasonEmployeesAboveMaximum = "employee_count_above_maximum"

	ReasonYearsBelowMinimum     = "years_in_operation_below_minimum"
	ReasonEstablishedOperations = "established_operations"

	ReasonLossCountExceeded     = "loss_count_exceeded"
	ReasonLossAmountExceeded    = "loss_amount_exceeded"
	ReasonCleanLossHistory      = "clean_loss_history"
	ReasonAcceptableLossHistory = "acceptable_loss_history"

	ReasonSubsWithoutCerts      = "subs_without_certs"
	ReasonMultiRegionOperations = "multi_region_operations"

	ReasonNoRuleConfigured = "no_rule_configured"
)

const (
	// baselineScore is the score every evaluation starts from; bonuses and
	// penalties move it from there before clamping to [0, 100].
	baselineScore = 50

	// smallLossThreshold is the incurred-amount ceiling under which a single
	// small claim still earns the acceptable-loss-history bonus.
	smallLossThreshold = 25_000
)

// EvaluateCarrierFit scores one lead against one carrier's appetite rule. A
// nil rule produces a skip outcome (HasRule=false) that the market aggregator
// ignores. The function is pure: same facts and rule always produce the same
// result, save for the evaluation timestamp.
func EvaluateCarrierFit(
	leadId uuid.UUID,
	facts models.FactRecord,
	carrier models.Carrier,
	rule *models.AppetiteRule,
) models.CarrierFitResult {
	if rule == nil {
		return models.CarrierFitResult{
			LeadId:    leadId,
			CarrierId: carrier.Id,
			Eligible:  false,
			Tier:      models.NoFit,
			Score:     0,
			Reasons: []models.Reason{{
				Code:    ReasonNoRuleConfigured,
				Kind:    models.ReasonWarning,
				Message: fmt.Sprintf("%s has no appetite rule configured for this line of business", carrier.Name),
			}},
			HasRule:     false,
			EvaluatedAt: time.Now(),
		}
	}

	eligible, score, reasons := evaluateRule(facts, carrier, *rule)

	return models.CarrierFitResult{
		LeadId:      leadId,
		CarrierId:   carrier.Id,
		Eligible:    eligible,
		Tier:        TierOf(eligible, score),
		Score:       score,
		Reasons:     reasons,
		HasRule:     true,
		RuleId:      &rule.Id,
		RuleVersion: &rule.Version,
		EvaluatedAt: time.Now(),
	}
}

// evaluateRule runs the appetite checks in their contractual order. Eligibility
// is monotonic: once false it never recovers, but later checks keep running and
// keep appending reasons so the result stays diagnostically complete. Checks
// marked "while eligible" are the exception: they only add signal on top of an
// otherwise eligible risk.
func evaluateRule(facts models.FactRecord, carrier models.Carrier, rule models.AppetiteRule) (bool, int, []models.Reason) {
	eligible := true
	score := baselineScore
	var reasons []models.Reason

	disqualify := func(code, message, detail string) {
		eligible = false
		reasons = append(reasons, models.Reason{
			Code:    code,
			Kind:    models.ReasonExclusion,
			Message: message,
			Detail:  detail,
		})
	}
	include := func(code, message string, bonus int) {
		score += bonus
		reasons = append(reasons, models.Reason{
			Code:    code,
			Kind:    models.ReasonInclusion,
			Message: message,
		})
	}
	warn := func(code, message string, penalty int) {
		score -= penalty
		reasons = append(reasons, models.Reason{
			Code:    code,
			Kind:    models.ReasonWarning,
			Message: message,
		})
	}

	// 1. Region deny-list.
	if denied := regionsIn(facts, rule.DeniedRegions); len(denied) > 0 {
		disqualify(
			ReasonStateExcluded,
			fmt.Sprintf("%s does not write business in %s", carrier.Name, strings.Join(denied, ", ")),
			strings.Join(denied, ", "),
		)
	}

	// 2. Region allow-list, while eligible.
	if eligible {
		switch {
		case len(rule.AllowedRegions) > 0:
			if outside := regionsOutside(facts, rule.AllowedRegions); len(outside) > 0 {
				disqualify(
					ReasonStateNotInAppetite,
					fmt.Sprintf("%s is not appointed in %s", carrier.Name, strings.Join(outside, ", ")),
					strings.Join(outside, ", "),
				)
			} else if facts.Regions.Size() > 0 {
				include(ReasonStateAllowed, "All operating regions are in appetite", 10)
			}
		case facts.Regions.Size() > 0:
			include(ReasonNoRegionLimits, "No region restrictions for this carrier", 5)
		}
	}

	// 3. Industry deny-list.
	if facts.Industry != "" {
		if match := industryMatch(facts.Industry, rule.DeniedIndustries); match != "" {
			disqualify(
				ReasonIndustryExcluded,
				fmt.Sprintf("%s excludes the %s industry", carrier.Name, match),
				match,
			)
		}
	}

	// 4. Industry allow-list, while eligible. An unknown industry is never
	// disqualified here; it just earns no bonus.
	if eligible {
		switch {
		case len(rule.AllowedIndustries) > 0:
			if facts.Industry != "" {
				if match := industryMatch(facts.Industry, rule.AllowedIndustries); match != "" {
					include(ReasonIndustryAllowed, fmt.Sprintf("%s is a target industry", facts.Industry), 15)
				} else {
					disqualify(
						ReasonIndustryNotInAppetite,
						fmt.Sprintf("%s is outside %s's target industries", facts.Industry, carrier.Name),
						facts.Industry,
					)
				}
			}
		case len(rule.DeniedIndustries) == 0 && facts.Industry != "":
			include(ReasonNoIndustryLimits, "No industry restrictions for this carrier", 5)
		}
	}

	// 5. Revenue bounds. The maximum is only checked while eligible; the
	// in-range bonus requires at least one configured bound and real revenue.
	if rule.MinRevenue != nil && facts.AnnualRevenue < *rule.MinRevenue {
		disqualify(
			ReasonRevenueBelowMinimum,
			fmt.Sprintf("Annual revenue is below %s's minimum of %.0f", carrier.Name, *rule.MinRevenue),
			fmt.Sprintf("%.0f", facts.AnnualRevenue),
		)
	} else if eligible {
		if rule.MaxRevenue != nil && facts.AnnualRevenue > *rule.MaxRevenue {
			disqualify(
				ReasonRevenueAboveMaximum,
				fmt.Sprintf("Annual revenue exceeds %s's maximum of %.0f", carrier.Name, *rule.MaxRevenue),
				fmt.Sprintf("%.0f", facts.AnnualRevenue),
			)
		} else if (rule.MinRevenue != nil || rule.MaxRevenue != nil) && facts.AnnualRevenue > 0 {
			include(ReasonRevenueInRange, "Annual revenue is within the carrier's target range", 10)
		}
	}

	// 6. Employee count bounds.
	if rule.MinEmployees != nil && facts.EmployeeCount < *rule.MinEmployees {
		disqualify(
			ReasonEmployeesBelowMinimum,
			fmt.Sprintf("Employee count is below %s's minimum of %d", carrier.Name, *rule.MinEmployees),
			fmt.Sprintf("%d", facts.EmployeeCount),
		)
	} else if eligible && rule.MaxEmployees != nil && facts.EmployeeCount > *rule.MaxEmployees {
		disqualify(
			ReasonEmployeesAboveMaximum,
			fmt.Sprintf("Employee count exceeds %s's maximum of %d", carrier.Name, *rule.MaxEmployees),
			fmt.Sprintf("%d", facts.EmployeeCount),
		)
	}

	// 7. Years in operation. The tenure bonus applies whatever the minimum is.
	if rule.MinYearsInOperation != nil && facts.YearsInOperation < *rule.MinYearsInOperation {
		disqualify(
			ReasonYearsBelowMinimum,
			fmt.Sprintf("%s requires at least %d years in operation", carrier.Name, *rule.MinYearsInOperation),
			fmt.Sprintf("%d", facts.YearsInOperation),
		)
	}
	if facts.YearsInOperation >= 3 {
		include(ReasonEstablishedOperations, "Established business with 3+ years in operation", 5)
	}

	// 8. Loss count.
	if rule.MaxLossCount != nil && facts.LossCount > *rule.MaxLossCount {
		disqualify(
			ReasonLossCountExceeded,
			fmt.Sprintf("Claim count over the past %d years exceeds %s's maximum of %d", rule.LossLookbackYears, carrier.Name, *rule.MaxLossCount),
			fmt.Sprintf("%d", facts.LossCount),
		)
	}

	// 9. Loss amount, while eligible.
	if eligible && rule.MaxTotalIncurred != nil && facts.TotalIncurred > *rule.MaxTotalIncurred {
		disqualify(
			ReasonLossAmountExceeded,
			fmt.Sprintf("Total incurred losses exceed %s's maximum of %.0f", carrier.Name, *rule.MaxTotalIncurred),
			fmt.Sprintf("%.0f", facts.TotalIncurred),
		)
	}

	// 10. Loss quality bonus, while eligible. Loss facts are only meaningful
	// when the rule defines a lookback window.
	if eligible && rule.LossLookbackYears > 0 {
		if !facts.HasLosses {
			include(ReasonCleanLossHistory, fmt.Sprintf("No losses in the past %d years", rule.LossLookbackYears), 15)
		} else if facts.LossCount <= 1 && facts.TotalIncurred < smallLossThreshold {
			include(ReasonAcceptableLossHistory, "Minimal loss history", 5)
		}
	}

	// 11. Warnings never affect eligibility.
	if facts.SubsWithoutCerts {
		warn(ReasonSubsWithoutCerts, "Uses subcontractors without collecting certificates of insurance", 5)
	}
	if facts.MultiRegion {
		warn(ReasonMultiRegionOperations, "Operations span multiple regions", 5)
	}

	return eligible, clampScore(score), reasons
}

// TierOf maps eligibility and a clamped score to a fit tier. Ineligible risks
// are always NO_FIT whatever their score.
func TierOf(eligible bool, score int) models.FitTier {
	if !eligible {
		return models.NoFit
	}
	switch {
	case score >= 80:
		return models.GoodFit
	case score >= 60:
		return models.PossibleFit
	case score >= 40:
		return models.ReviewNeeded
	default:
		return models.NoFit
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// regionsIn returns the subject's regions that appear in the given list, in
// sorted order so messages are deterministic.
func regionsIn(facts models.FactRecord, list []string) []string {
	if facts.Regions == nil || len(list) == 0 {
		return nil
	}
	listed := normalizedRegionSet(list)
	matched := facts.Regions.Intersect(listed)
	out := matched.Slice()
	slices.Sort(out)
	return out
}

// regionsOutside returns the subject's regions missing from the allow-list.
func regionsOutside(facts models.FactRecord, allowed []string) []string {
	if facts.Regions == nil {
		return nil
	}
	listed := normalizedRegionSet(allowed)
	var out []string
	for _, region := range facts.Regions.Slice() {
		if !listed.Contains(region) {
			out = append(out, region)
		}
	}
	slices.Sort(out)
	return out
}

func normalizedRegionSet(list []string) *set.Set[string] {
	normalized := set.New[string](len(list))
	for _, region := range list {
		normalized.Insert(strings.ToUpper(strings.TrimSpace(region)))
	}
	return normalized
}

// industryMatch reports the first list entry that substring-matches the
// subject's industry, case-insensitively and in either direction, so "roofing"
// matches "Commercial Roofing Contractor" and vice versa.
func industryMatch(industry string, list []string) string {
	subject := strings.ToLower(strings.TrimSpace(industry))
	if subject == "" {
		return ""
	}
	for _, entry := range list {
		candidate := strings.ToLower(strings.TrimSpace(entry))
		if candidate == "" {
			continue
		}
		if strings.Contains(subject, candidate) || strings.Contains(candidate, subject) {
			return entry
		}
	}
	return ""
}
