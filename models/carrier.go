package models

import (
	"time"

	"github.com/google/uuid"
)

type MarketType string

const (
	MarketTypeStandard      MarketType = "STANDARD"
	MarketTypeExcessSurplus MarketType = "EXCESS_SURPLUS"
)

var ValidMarketTypes = []MarketType{MarketTypeStandard, MarketTypeExcessSurplus}

func MarketTypeFromString(s string) MarketType {
	switch s {
	case "EXCESS_SURPLUS":
		return MarketTypeExcessSurplus
	default:
		return MarketTypeStandard
	}
}

type Carrier struct {
	Id             uuid.UUID
	OrganizationId string
	Name           string
	MarketType     MarketType
	// PriorityRank breaks ties when presenting carriers with the same tier and
	// score; lower ranks first.
	PriorityRank int
	Enabled      bool
	CreatedAt    time.Time
}

type CreateCarrierInput struct {
	OrganizationId string
	Name           string
	MarketType     MarketType
	PriorityRank   int
}

type UpdateCarrierInput struct {
	Id           uuid.UUID
	Name         *string
	MarketType   *MarketType
	PriorityRank *int
	Enabled      *bool
}
