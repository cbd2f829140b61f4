package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is the width of the hashed bag-of-words vectors stored
// alongside each destination.
const EmbeddingDimensions = 256

type Destination struct {
	BaseModel
	Name        string          `gorm:"uniqueIndex;not null"`
	Image       string          `gorm:"type:text"`
	Description string          `gorm:"type:text"`
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(256)"`
}
