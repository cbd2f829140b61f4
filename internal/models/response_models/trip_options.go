package response_models

type BudgetOption struct {
	Value        string `json:"value"`
	Label        string `json:"label"`
	TripEstimate string `json:"tripEstimate"`
	NightlyRate  string `json:"nightlyRate"`
}

// TripOptionsResponse feeds the choice lists of the trip preference form.
type TripOptionsResponse struct {
	Interests       []string       `json:"interests"`
	DefaultInterest string         `json:"defaultInterest"`
	Budgets         []BudgetOption `json:"budgets"`
}
