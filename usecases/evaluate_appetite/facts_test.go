package evaluate_appetite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFacts_flatAnswers(t *testing.T) {
	facts := ExtractFacts(map[string]any{
		"operating-regions":        []any{"tx", " ny "},
		"annual-revenue":           1_500_000.0,
		"employee-count":           12,
		"years-in-operation":       "7",
		"primary-industry":         " Plumbing ",
		"any-losses-in-window":     true,
		"loss-count-in-window":     2,
		"total-incurred-in-window": "45000",
		"subcontractors-used":      true,
		"certificates-collected":   false,
		"operations-description":   "residential plumbing",
	})

	assert.True(t, facts.Regions.Contains("TX"))
	assert.True(t, facts.Regions.Contains("NY"))
	assert.Equal(t, 1_500_000.0, facts.AnnualRevenue)
	assert.Equal(t, 12, facts.EmployeeCount)
	assert.Equal(t, 7, facts.YearsInOperation)
	assert.Equal(t, "Plumbing", facts.Industry)
	assert.True(t, facts.HasLosses)
	assert.Equal(t, 2, facts.LossCount)
	assert.Equal(t, 45_000.0, facts.TotalIncurred)
	assert.True(t, facts.MultiRegion)
	assert.True(t, facts.SubsWithoutCerts)
}

func TestExtractFacts_nestedAnswers(t *testing.T) {
	facts := ExtractFacts(map[string]any{
		"answers": map[string]any{
			"operating-regions": "TX, OK",
			"annual-revenue":    "250000",
		},
	})

	assert.Equal(t, 2, facts.Regions.Size())
	assert.Equal(t, 250_000.0, facts.AnnualRevenue)
}

func TestExtractFacts_malformedAnswersDegradeToZeroValues(t *testing.T) {
	facts := ExtractFacts(map[string]any{
		"annual-revenue":         "not a number",
		"employee-count":         []any{"wat"},
		"years-in-operation":     nil,
		"primary-industry":       42,
		"subcontractors-used":    "maybe",
		"certificates-collected": nil,
	})

	assert.Equal(t, 0.0, facts.AnnualRevenue)
	assert.Equal(t, 0, facts.EmployeeCount)
	assert.Equal(t, 0, facts.YearsInOperation)
	assert.Equal(t, "", facts.Industry)
	assert.False(t, facts.UsesSubcontractors)
	assert.False(t, facts.SubsWithoutCerts)
	assert.Equal(t, 0, facts.Regions.Size())
	assert.False(t, facts.MultiRegion)
}

func TestExtractFacts_negativeNumbersClampToZero(t *testing.T) {
	facts := ExtractFacts(map[string]any{
		"annual-revenue":           -100.0,
		"employee-count":           -3,
		"loss-count-in-window":     -1,
		"total-incurred-in-window": -5000.0,
	})

	assert.Equal(t, 0.0, facts.AnnualRevenue)
	assert.Equal(t, 0, facts.EmployeeCount)
	assert.Equal(t, 0, facts.LossCount)
	assert.Equal(t, 0.0, facts.TotalIncurred)
	assert.False(t, facts.HasLosses)
}

func TestExtractFacts_lossCountImpliesLosses(t *testing.T) {
	facts := ExtractFacts(map[string]any{
		"any-losses-in-window": false,
		"loss-count-in-window": 1,
	})

	assert.True(t, facts.HasLosses)
}

func TestExtractFacts_boolCoercions(t *testing.T) {
	facts := ExtractFacts(map[string]any{
		"subcontractors-used":    "Yes",
		"certificates-collected": "1",
	})

	assert.True(t, facts.UsesSubcontractors)
	assert.True(t, facts.CollectsCertificates)
	assert.False(t, facts.SubsWithoutCerts)
}
