package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/quotelane/quotelane-backend/models"
)

type AppetiteRule struct {
	Id             string `json:"id"`
	CarrierId      string `json:"carrier_id"`
	LineOfBusiness string `json:"line_of_business"`
	Version        int    `json:"version"`
	Active         bool   `json:"active"`

	AllowedIndustries []string `json:"allowed_industries"`
	DeniedIndustries  []string `json:"denied_industries"`
	AllowedRegions    []string `json:"allowed_regions"`
	DeniedRegions     []string `json:"denied_regions"`

	MinRevenue          null.Float `json:"min_revenue"`
	MaxRevenue          null.Float `json:"max_revenue"`
	MinEmployees        null.Int   `json:"min_employees"`
	MaxEmployees        null.Int   `json:"max_employees"`
	MinYearsInOperation null.Int   `json:"min_years_in_operation"`

	LossLookbackYears int        `json:"loss_lookback_years"`
	MaxLossCount      null.Int   `json:"max_loss_count"`
	MaxTotalIncurred  null.Float `json:"max_total_incurred"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AdaptAppetiteRuleDto(rule models.AppetiteRule) AppetiteRule {
	return AppetiteRule{
		Id:             rule.Id.String(),
		CarrierId:      rule.CarrierId.String(),
		LineOfBusiness: rule.LineOfBusiness,
		Version:        rule.Version,
		Active:         rule.Active,

		AllowedIndustries: orEmpty(rule.AllowedIndustries),
		DeniedIndustries:  orEmpty(rule.DeniedIndustries),
		AllowedRegions:    orEmpty(rule.AllowedRegions),
		DeniedRegions:     orEmpty(rule.DeniedRegions),

		MinRevenue:          null.FloatFromPtr(rule.MinRevenue),
		MaxRevenue:          null.FloatFromPtr(rule.MaxRevenue),
		MinEmployees:        nullIntFromIntPtr(rule.MinEmployees),
		MaxEmployees:        nullIntFromIntPtr(rule.MaxEmployees),
		MinYearsInOperation: nullIntFromIntPtr(rule.MinYearsInOperation),

		LossLookbackYears: rule.LossLookbackYears,
		MaxLossCount:      nullIntFromIntPtr(rule.MaxLossCount),
		MaxTotalIncurred:  null.FloatFromPtr(rule.MaxTotalIncurred),

		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

type CreateAppetiteRuleBody struct {
	CarrierId      string `json:"carrier_id" binding:"required,uuid"`
	LineOfBusiness string `json:"line_of_business" binding:"required"`

	AllowedIndustries []string `json:"allowed_industries"`
	DeniedIndustries  []string `json:"denied_industries"`
	AllowedRegions    []string `json:"allowed_regions"`
	DeniedRegions     []string `json:"denied_regions"`

	MinRevenue          null.Float `json:"min_revenue"`
	MaxRevenue          null.Float `json:"max_revenue"`
	MinEmployees        null.Int   `json:"min_employees"`
	MaxEmployees        null.Int   `json:"max_employees"`
	MinYearsInOperation null.Int   `json:"min_years_in_operation"`

	LossLookbackYears int        `json:"loss_lookback_years"`
	MaxLossCount      null.Int   `json:"max_loss_count"`
	MaxTotalIncurred  null.Float `json:"max_total_incurred"`
}

func AdaptCreateAppetiteRuleInput(body CreateAppetiteRuleBody,
	organizationId string,
) (models.CreateAppetiteRuleInput, error) {
	carrierId, err := uuidFromString(body.CarrierId)
	if err != nil {
		return models.CreateAppetiteRuleInput{}, err
	}

	return models.CreateAppetiteRuleInput{
		OrganizationId: organizationId,
		CarrierId:      carrierId,
		LineOfBusiness: body.LineOfBusiness,

		AllowedIndustries: orEmpty(body.AllowedIndustries),
		DeniedIndustries:  orEmpty(body.DeniedIndustries),
		AllowedRegions:    orEmpty(body.AllowedRegions),
		DeniedRegions:     orEmpty(body.DeniedRegions),

		MinRevenue:          body.MinRevenue.Ptr(),
		MaxRevenue:          body.MaxRevenue.Ptr(),
		MinEmployees:        intPtrFromNullInt(body.MinEmployees),
		MaxEmployees:        intPtrFromNullInt(body.MaxEmployees),
		MinYearsInOperation: intPtrFromNullInt(body.MinYearsInOperation),

		LossLookbackYears: body.LossLookbackYears,
		MaxLossCount:      intPtrFromNullInt(body.MaxLossCount),
		MaxTotalIncurred:  body.MaxTotalIncurred.Ptr(),
	}, nil
}

func nullIntFromIntPtr(value *int) null.Int {
	if value == nil {
		return null.Int{}
	}
	return null.IntFrom(int64(*value))
}

func intPtrFromNullInt(value null.Int) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
