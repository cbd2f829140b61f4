package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatra/internal/models/db_models"
)

type DestinationRepository interface {
	GetListOfDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error)
	GetListByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
	UpsertByName(ctx context.Context, destination *db_models.Destination) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (d *destinationRepository) GetListOfDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := d.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("name ASC").
		Find(&destinations).Error
	return destinations, err
}

// GetListByVector orders the catalog by cosine distance to vector, closest first.
func (d *destinationRepository) GetListByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	var results []db_models.Destination

	query := `
        SELECT *
        FROM destinations
        WHERE deleted_at IS NULL
        ORDER BY embedding <=> ?
        LIMIT ?
    `

	err := d.db.WithContext(ctx).Raw(query, vector, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertByName inserts the destination or refreshes the row with the same name.
func (d *destinationRepository) UpsertByName(ctx context.Context, destination *db_models.Destination) error {
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"image", "description", "tags", "embedding", "updated_at"}),
		}).
		Create(destination).Error
}
