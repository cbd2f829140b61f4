package services

import (
	"yatra/internal/models/response_models"
	"yatra/internal/planner"
)

var interestOptions = []string{
	"History & Culture",
	"Nature & Outdoors",
	"Food & Dining",
	"Shopping",
	"Relaxation",
	"Adventure",
	"Nightlife",
	"Family-friendly",
}

var budgetLabels = []struct {
	tier  string
	label string
}{
	{planner.TierBudget, "Budget-friendly"},
	{planner.TierMedium, "Medium"},
	{planner.TierLuxury, "Luxury"},
}

type TripOptionsServiceInterface interface {
	GetTripOptions() response_models.TripOptionsResponse
}

type TripOptionsService struct{}

func NewTripOptionsService() TripOptionsServiceInterface {
	return &TripOptionsService{}
}

func (t *TripOptionsService) GetTripOptions() response_models.TripOptionsResponse {
	budgets := make([]response_models.BudgetOption, 0, len(budgetLabels))
	for _, b := range budgetLabels {
		budgets = append(budgets, response_models.BudgetOption{
			Value:        b.tier,
			Label:        b.label,
			TripEstimate: planner.TripCostRange(b.tier),
			NightlyRate:  planner.NightlyRateRange(b.tier),
		})
	}

	return response_models.TripOptionsResponse{
		Interests:       append([]string(nil), interestOptions...),
		DefaultInterest: defaultInterest,
		Budgets:         budgets,
	}
}
