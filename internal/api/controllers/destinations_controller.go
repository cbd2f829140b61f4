package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

// GetAllDestinations godoc
// @Summary Get featured destinations
// @Description Fetch a paginated list of destinations
// @Tags Destinations
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 5, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationsController) GetAllDestinations(c *gin.Context) {

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "5")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	destinations, err := d.destinationService.GetDestinations(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// SuggestDestinations godoc
// @Summary Suggest destinations for interests
// @Tags Destinations
// @Produce json
// @Param interests query string false "Comma separated interests"
// @Param limit query int false "Maximum suggestions (default: 3, max: 20)"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/suggest [get]
func (d *DestinationsController) SuggestDestinations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	interests := strings.Split(c.Query("interests"), ",")

	destinations, err := d.destinationService.SuggestDestinations(c.Request.Context(), interests, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations suggested successfully")
}
