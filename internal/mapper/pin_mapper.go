package mapper

import (
	"encoding/json"

	"style-match-be/internal/entity"
	"style-match-be/internal/model"

	"gorm.io/datatypes"
)

type PinMapper struct{}

func NewPinMapper() *PinMapper {
	return &PinMapper{}
}

func (m *PinMapper) ToEntity(p *model.Pin) *entity.Pin {
	if p == nil {
		return nil
	}

	var metadata entity.PinMetadata
	if len(p.Metadata) > 0 {
		// Metadata is informational; a malformed column must not hide the pin.
		_ = json.Unmarshal(p.Metadata, &metadata)
	}

	return &entity.Pin{
		PinId:              p.PinId,
		BoardId:            p.BoardId,
		Title:              p.Title,
		Description:        p.Description,
		AltText:            p.AltText,
		Link:               p.Link,
		ImageUrl:           p.ImageUrl,
		EmbeddingText:      p.EmbeddingText,
		UsableForEmbedding: p.UsableForEmbedding,
		TextQuality:        p.TextQuality,
		Metadata:           metadata,
	}
}

func (m *PinMapper) ToModel(p *entity.Pin, position int) *model.Pin {
	if p == nil {
		return nil
	}

	metadata, _ := json.Marshal(p.Metadata)

	return &model.Pin{
		PinId:              p.PinId,
		BoardId:            p.BoardId,
		Position:           position,
		Title:              p.Title,
		Description:        p.Description,
		AltText:            p.AltText,
		Link:               p.Link,
		ImageUrl:           p.ImageUrl,
		EmbeddingText:      p.EmbeddingText,
		UsableForEmbedding: p.UsableForEmbedding,
		TextQuality:        p.TextQuality,
		Metadata:           datatypes.JSON(metadata),
	}
}

func (m *PinMapper) ToEntities(pins []*model.Pin) []*entity.Pin {
	entities := make([]*entity.Pin, len(pins))
	for i, p := range pins {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PinMapper) ToModels(pins []*entity.Pin) []*model.Pin {
	models := make([]*model.Pin, len(pins))
	for i, p := range pins {
		models[i] = m.ToModel(p, i)
	}
	return models
}
