package response_models

type ReviewResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback"`
	CreatedAt int64  `json:"created_at"`
}
