package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/quotelane/quotelane-backend/models"
	"github.com/quotelane/quotelane-backend/utils"
)

const TABLE_APPETITE_RULES = "appetite_rules"

type DBAppetiteRule struct {
	Id             uuid.UUID `db:"id"`
	OrganizationId string    `db:"org_id"`
	CarrierId      uuid.UUID `db:"carrier_id"`
	LineOfBusiness string    `db:"line_of_business"`
	Version        int       `db:"version"`
	Active         bool      `db:"active"`

	AllowedIndustries []string `db:"allowed_industries"`
	DeniedIndustries  []string `db:"denied_industries"`
	AllowedRegions    []string `db:"allowed_regions"`
	DeniedRegions     []string `db:"denied_regions"`

	MinRevenue          *float64 `db:"min_revenue"`
	MaxRevenue          *float64 `db:"max_revenue"`
	MinEmployees        *int     `db:"min_employees"`
	MaxEmployees        *int     `db:"max_employees"`
	MinYearsInOperation *int     `db:"min_years_in_operation"`

	LossLookbackYears int      `db:"loss_lookback_years"`
	MaxLossCount      *int     `db:"max_loss_count"`
	MaxTotalIncurred  *float64 `db:"max_total_incurred"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var SelectAppetiteRuleColumn = utils.ColumnList[DBAppetiteRule]()

func AdaptAppetiteRule(db DBAppetiteRule) models.AppetiteRule {
	return models.AppetiteRule{
		Id:                  db.Id,
		OrganizationId:      db.OrganizationId,
		CarrierId:           db.CarrierId,
		LineOfBusiness:      db.LineOfBusiness,
		Version:             db.Version,
		Active:              db.Active,
		AllowedIndustries:   db.AllowedIndustries,
		DeniedIndustries:    db.DeniedIndustries,
		AllowedRegions:      db.AllowedRegions,
		DeniedRegions:       db.DeniedRegions,
		MinRevenue:          db.MinRevenue,
		MaxRevenue:          db.MaxRevenue,
		MinEmployees:        db.MinEmployees,
		MaxEmployees:        db.MaxEmployees,
		MinYearsInOperation: db.MinYearsInOperation,
		LossLookbackYears:   db.LossLookbackYears,
		MaxLossCount:        db.MaxLossCount,
		MaxTotalIncurred:    db.MaxTotalIncurred,
		CreatedAt:           db.CreatedAt,
		UpdatedAt:           db.UpdatedAt,
	}
}
