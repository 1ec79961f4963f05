package dto

import "github.com/guttosm/stockscore/internal/domain/models"

// ScoreResponse represents the JSON structure returned by GET /api/v1/score.
type ScoreResponse struct {
	ItemCode             string  `json:"item_code" example:"A1"`
	ItemName             string  `json:"item_name" example:"Kopi Bubuk"`
	TransactionFrequency int     `json:"transaction_frequency" example:"2"` // X1
	TotalRevenue         float64 `json:"total_revenue" example:"150"`       // X2
	UnitsPurchased       float64 `json:"units_purchased" example:"10"`      // X3
	Score                float64 `json:"score" example:"17.15"`             // Y, full precision
	ScoreRounded         float64 `json:"score_rounded" example:"17.15"`
	Message              string  `json:"message"`
}

// NewScoreResponse maps a ScoreResult and its rendered text into the API shape.
func NewScoreResponse(r models.ScoreResult, message string) ScoreResponse {
	return ScoreResponse{
		ItemCode:             r.ItemCode,
		ItemName:             r.ItemName,
		TransactionFrequency: r.Inputs.TransactionFrequency,
		TotalRevenue:         r.Inputs.TotalRevenue,
		UnitsPurchased:       r.Inputs.UnitsPurchased,
		Score:                r.Y,
		ScoreRounded:         r.Rounded(),
		Message:              message,
	}
}
