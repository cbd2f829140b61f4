package request_models

type AddReviewRequest struct {
	Name     string `json:"name" binding:"required,max=80"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback" binding:"required"`
}
