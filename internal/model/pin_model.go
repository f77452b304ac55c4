package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Pin struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PinId              string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_board_pin"`
	BoardId            string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_board_pin;index"`
	Position           int            `gorm:"not null;default:0"` // order within the import
	Title              string         `gorm:"type:text"`
	Description        string         `gorm:"type:text"`
	AltText            string         `gorm:"type:text"`
	Link               string         `gorm:"type:text"`
	ImageUrl           string         `gorm:"type:text"`
	EmbeddingText      string         `gorm:"type:text"`
	UsableForEmbedding bool           `gorm:"default:false;index"`
	TextQuality        string         `gorm:"type:varchar(20);not null"`
	Metadata           datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
}

func (Pin) TableName() string {
	return "pins"
}
