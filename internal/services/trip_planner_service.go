package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/planner"
	"yatra/pkg/utils"
)

const (
	NoticeGenerationFailed = "We couldn't generate your trip plan. Please try again later."
	NoticeSimplifiedPlan   = "We encountered an issue generating your complete AI trip plan. Here's a simplified version instead."

	defaultInterest = "Travel"
	rawPreviewRunes = 500
)

type TripPlannerServiceInterface interface {
	GenerateTripPlan(ctx context.Context, request request_models.TripRequest) (*response_models.TripPlanResult, error)
	PreviewPrompt(request request_models.TripRequest) (string, error)
}

type TripPlannerService struct {
	generator utils.TextGeneratorInterface
	logger    *zap.Logger
}

func NewTripPlannerService(generator utils.TextGeneratorInterface, logger *zap.Logger) TripPlannerServiceInterface {
	return &TripPlannerService{
		generator: generator,
		logger:    logger.Named("trip_planner"),
	}
}

// GenerateTripPlan asks the generator for an itinerary and always produces a
// displayable plan for a valid request. The only error is ErrInvalidTripRequest.
func (s *TripPlannerService) GenerateTripPlan(ctx context.Context, request request_models.TripRequest) (*response_models.TripPlanResult, error) {
	req, err := prepareTripRequest(request)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With(
		zap.String("destination", req.Destination),
		zap.String("budget", req.Budget),
		zap.String("model", s.generator.Model()))

	startTime := time.Now()
	raw, err := s.generator.GenerateText(ctx, planner.BuildPrompt(req))
	if err != nil {
		logger.Warn("text generation failed, using fallback plan",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(startTime)))
		return fallbackResult(req, NoticeGenerationFailed), nil
	}

	logger.Debug("generator response received",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("length", len(raw)),
		zap.String("preview", preview(raw)))

	recovery, err := planner.Recover(raw)
	if err != nil {
		logger.Warn("generator response unrecoverable, using fallback plan",
			zap.Error(err),
			zap.String("preview", preview(raw)))
		return fallbackResult(req, NoticeSimplifiedPlan), nil
	}

	logger.Info("trip plan generated",
		zap.String("strategy", string(recovery.Strategy)),
		zap.Int("days", len(recovery.Plan.Itinerary)),
		zap.Duration("elapsed", time.Since(startTime)))

	return &response_models.TripPlanResult{
		Plan:     planner.Normalize(recovery.Plan, req.Budget),
		Fallback: false,
		Strategy: string(recovery.Strategy),
	}, nil
}

func (s *TripPlannerService) PreviewPrompt(request request_models.TripRequest) (string, error) {
	req, err := prepareTripRequest(request)
	if err != nil {
		return "", err
	}
	return planner.BuildPrompt(req), nil
}

// prepareTripRequest validates the request and fills the default interest.
func prepareTripRequest(req request_models.TripRequest) (request_models.TripRequest, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	req.StartDestination = strings.TrimSpace(req.StartDestination)
	req.Budget = strings.ToLower(strings.TrimSpace(req.Budget))

	if req.Destination == "" {
		return req, fmt.Errorf("%w: destination is required", utils.ErrInvalidTripRequest)
	}
	departure, err := utils.ParseTripDate(req.DepartureDate)
	if err != nil {
		return req, fmt.Errorf("%w: departure date: %v", utils.ErrInvalidTripRequest, err)
	}
	ret, err := utils.ParseTripDate(req.ReturnDate)
	if err != nil {
		return req, fmt.Errorf("%w: return date: %v", utils.ErrInvalidTripRequest, err)
	}
	if ret.Before(departure) {
		return req, fmt.Errorf("%w: return date precedes departure date", utils.ErrInvalidTripRequest)
	}
	if req.Travelers < 1 {
		return req, fmt.Errorf("%w: at least one traveler is required", utils.ErrInvalidTripRequest)
	}

	interests := make([]string, 0, len(req.Interests))
	for _, interest := range req.Interests {
		if v := strings.TrimSpace(interest); v != "" {
			interests = append(interests, v)
		}
	}
	if len(interests) == 0 {
		interests = []string{defaultInterest}
	}
	req.Interests = interests

	return req, nil
}

func fallbackResult(req request_models.TripRequest, notice string) *response_models.TripPlanResult {
	return &response_models.TripPlanResult{
		Plan:     planner.FallbackPlan(req),
		Fallback: true,
		Notice:   notice,
	}
}

func preview(raw string) string {
	runes := []rune(raw)
	if len(runes) <= rawPreviewRunes {
		return raw
	}
	return string(runes[:rawPreviewRunes]) + "..."
}
