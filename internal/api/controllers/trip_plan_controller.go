package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

const FallbackHeader = "X-Trip-Plan-Fallback"

type TripPlanController struct {
	plannerService  services.TripPlannerServiceInterface
	documentService services.ItineraryDocumentServiceInterface
	timeout         time.Duration
}

func NewTripPlanController(
	plannerService services.TripPlannerServiceInterface,
	documentService services.ItineraryDocumentServiceInterface,
	timeout time.Duration,
) *TripPlanController {
	return &TripPlanController{
		plannerService:  plannerService,
		documentService: documentService,
		timeout:         timeout,
	}
}

// GeneratePlan godoc
// @Summary Generate a trip plan
// @Description Builds an itinerary for the trip preferences. A simplified plan is returned when the generator fails.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /trips/plan [post]
func (t *TripPlanController) GeneratePlan(c *gin.Context) {
	result, ok := t.generate(c)
	if !ok {
		return
	}

	message := "Trip plan generated successfully"
	if result.Fallback {
		message = result.Notice
	}
	c.Header(FallbackHeader, strconv.FormatBool(result.Fallback))
	utils.RespondSuccess(c, result, message)
}

// DownloadPlanPDF godoc
// @Summary Generate a trip plan as PDF
// @Tags Trips
// @Accept json
// @Produce application/pdf
// @Param request body request_models.TripRequest true "Trip preferences"
// @Router /trips/plan/pdf [post]
func (t *TripPlanController) DownloadPlanPDF(c *gin.Context) {
	result, ok := t.generate(c)
	if !ok {
		return
	}

	doc, filename, err := t.documentService.RenderPDF(result.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header(FallbackHeader, strconv.FormatBool(result.Fallback))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// PreviewPrompt godoc
// @Summary Show the generator prompt for a request
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Router /trips/prompt [post]
func (t *TripPlanController) PreviewPrompt(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prompt, err := t.plannerService.PreviewPrompt(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"prompt": prompt}, "Prompt built successfully")
}

func (t *TripPlanController) generate(c *gin.Context) (*response_models.TripPlanResult, bool) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), t.timeout)
	defer cancel()

	result, err := t.plannerService.GenerateTripPlan(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return result, true
}
