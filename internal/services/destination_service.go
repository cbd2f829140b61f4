package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const (
	defaultSuggestionLimit = 3
	maxSuggestionLimit     = 20
)

type DestinationServiceInterface interface {
	GetDestinations(ctx context.Context, page int, pageSize int) ([]response_models.DestinationResponse, error)
	SuggestDestinations(ctx context.Context, interests []string, limit int) ([]response_models.DestinationResponse, error)
	SeedCatalog(ctx context.Context) error
}

type DestinationService struct {
	destinationRepository repositories.DestinationRepository
	logger                *zap.Logger
}

func NewDestinationService(destinationRepository repositories.DestinationRepository, logger *zap.Logger) DestinationServiceInterface {
	return &DestinationService{
		destinationRepository: destinationRepository,
		logger:                logger.Named("destinations"),
	}
}

func (d *DestinationService) GetDestinations(ctx context.Context, page int, pageSize int) ([]response_models.DestinationResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	destinations, err := d.destinationRepository.GetListOfDestinations(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toDestinationResponses(destinations), nil
}

// SuggestDestinations ranks the catalog against the interests. Interests with
// no usable words yield the catalog in its listing order.
func (d *DestinationService) SuggestDestinations(ctx context.Context, interests []string, limit int) ([]response_models.DestinationResponse, error) {
	if limit < 1 {
		limit = defaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	vector := utils.TextToVector(strings.Join(interests, " "), db_models.EmbeddingDimensions)

	var (
		destinations []db_models.Destination
		err          error
	)
	if isZeroVector(vector.Slice()) {
		destinations, err = d.destinationRepository.GetListOfDestinations(ctx, 1, limit)
	} else {
		destinations, err = d.destinationRepository.GetListByVector(ctx, vector, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toDestinationResponses(destinations), nil
}

// SeedCatalog writes the featured destinations, refreshing rows that already exist.
func (d *DestinationService) SeedCatalog(ctx context.Context) error {
	for _, entry := range featuredDestinations {
		destination := &db_models.Destination{
			Name:        entry.Name,
			Image:       entry.Image,
			Description: entry.Description,
			Tags:        entry.Tags,
			Embedding:   utils.TextToVector(catalogText(entry), db_models.EmbeddingDimensions),
		}
		if err := d.destinationRepository.UpsertByName(ctx, destination); err != nil {
			return fmt.Errorf("seed destination %s: %w", entry.Name, err)
		}
	}

	d.logger.Info("destination catalog seeded", zap.Int("count", len(featuredDestinations)))
	return nil
}

func catalogText(entry catalogEntry) string {
	return entry.Name + " " + strings.Join(entry.Tags, " ") + " " + entry.Description
}

func isZeroVector(values []float32) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

func toDestinationResponses(destinations []db_models.Destination) []response_models.DestinationResponse {
	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, destination := range destinations {
		tags := []string(destination.Tags)
		if tags == nil {
			tags = []string{}
		}
		out = append(out, response_models.DestinationResponse{
			ID:          destination.ID.String(),
			Name:        destination.Name,
			Image:       destination.Image,
			Description: destination.Description,
			Tags:        tags,
		})
	}
	return out
}
