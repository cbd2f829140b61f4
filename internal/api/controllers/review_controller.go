package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// AddReview godoc
// @Summary Add a review
// @Description Add a name, rating and comment about the planner
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.AddReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [post]
func (r *ReviewController) AddReview(c *gin.Context) {
	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.AddReview(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review added successfully")
}

// ListReviews godoc
// @Summary List reviews
// @Description Get a paginated list of reviews, newest first
// @Tags Reviews
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	reviews, err := r.reviewService.GetReviews(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Reviews
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (r *ReviewController) DeleteReview(c *gin.Context) {
	if err := r.reviewService.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review deleted successfully")
}
