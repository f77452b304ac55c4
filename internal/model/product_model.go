package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	Id         string                      `gorm:"type:varchar(64);primaryKey"`
	Position   int                         `gorm:"not null;default:0"` // catalog order
	Name       string                      `gorm:"type:text;not null"`
	Brand      string                      `gorm:"type:varchar(200)"`
	Category   string                      `gorm:"type:varchar(200);index"`
	Tags       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Price      float64                     `gorm:"type:numeric(12,2)"`
	ProductUrl string                      `gorm:"type:text"`
	ImageUrl   string                      `gorm:"type:text"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt  time.Time                   `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
