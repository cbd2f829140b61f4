package request_models

// TripRequest is the trip preference form submitted by the planner UI.
type TripRequest struct {
	StartDestination string   `json:"startDestination"`
	Destination      string   `json:"destination" binding:"required"`
	DepartureDate    string   `json:"departureDate" binding:"required"`
	ReturnDate       string   `json:"returnDate" binding:"required"`
	Travelers        int      `json:"travelers"`
	Budget           string   `json:"budget"`
	Interests        []string `json:"interests"`
}
