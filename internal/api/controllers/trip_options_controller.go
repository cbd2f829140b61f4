package controllers

import (
	"github.com/gin-gonic/gin"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

type TripOptionsController struct {
	optionsService services.TripOptionsServiceInterface
}

func NewTripOptionsController(optionsService services.TripOptionsServiceInterface) *TripOptionsController {
	return &TripOptionsController{
		optionsService: optionsService,
	}
}

// GetTripOptions godoc
// @Summary List trip form options
// @Description Interests and budget tiers with their rupee ranges
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips/options [get]
func (tc *TripOptionsController) GetTripOptions(c *gin.Context) {
	utils.RespondSuccess(c, tc.optionsService.GetTripOptions(), "Fetched trip options successfully")
}
