package dto

import (
	"time"

	"github.com/quotelane/quotelane-backend/models"
)

type Carrier struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	MarketType   string    `json:"market_type"`
	PriorityRank int       `json:"priority_rank"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

func AdaptCarrierDto(carrier models.Carrier) Carrier {
	return Carrier{
		Id:           carrier.Id.String(),
		Name:         carrier.Name,
		MarketType:   string(carrier.MarketType),
		PriorityRank: carrier.PriorityRank,
		Enabled:      carrier.Enabled,
		CreatedAt:    carrier.CreatedAt,
	}
}

type CreateCarrierBody struct {
	Name         string `json:"name" binding:"required"`
	MarketType   string `json:"market_type"`
	PriorityRank int    `json:"priority_rank"`
}

type UpdateCarrierBody struct {
	Name         *string `json:"name"`
	MarketType   *string `json:"market_type"`
	PriorityRank *int    `json:"priority_rank"`
	Enabled      *bool   `json:"enabled"`
}
