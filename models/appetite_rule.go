package models

import (
	"time"

	"github.com/google/uuid"
)

///////////////////////////////
// AppetiteRule
///////////////////////////////

// AppetiteRule is one version of a carrier's appetite for a line of business.
// Versions form an append-only chain: editing a rule always creates version
// N+1, prior versions are never mutated and never hard-deleted (they are
// invalidated through the active flag). Evaluation selects the highest active
// version per (carrier, line of business).
type AppetiteRule struct {
	Id             uuid.UUID
	OrganizationId string
	CarrierId      uuid.UUID
	LineOfBusiness string
	Version        int
	Active         bool

	AllowedIndustries []string
	DeniedIndustries  []string
	AllowedRegions    []string
	DeniedRegions     []string

	MinRevenue          *float64
	MaxRevenue          *float64
	MinEmployees        *int
	MaxEmployees        *int
	MinYearsInOperation *int

	// LossLookbackYears is the window the loss facts are measured over. Zero
	// means the carrier does not assess loss history for this line.
	LossLookbackYears int
	MaxLossCount      *int
	MaxTotalIncurred  *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateAppetiteRuleInput struct {
	OrganizationId string
	CarrierId      uuid.UUID
	LineOfBusiness string

	AllowedIndustries []string
	DeniedIndustries  []string
	AllowedRegions    []string
	DeniedRegions     []string

	MinRevenue          *float64
	MaxRevenue          *float64
	MinEmployees        *int
	MaxEmployees        *int
	MinYearsInOperation *int

	LossLookbackYears int
	MaxLossCount      *int
	MaxTotalIncurred  *float64
}

type ListAppetiteRulesFilters struct {
	CarrierId      *uuid.UUID
	LineOfBusiness string
	ActiveOnly     bool
}
