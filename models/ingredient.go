package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is shared reference data. The (name, measurement_unit)
// pair is unique, and rows are protected from deletion while any
// recipe references them.
type Ingredient struct {
	ID              uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name            string    `json:"name" db:"name" gorm:"type:varchar(200);not null;index:idx_ingredient_name;uniqueIndex:idx_ingredient_name_unit"`
	MeasurementUnit string    `json:"measurement_unit" db:"measurement_unit" gorm:"type:varchar(200);not null;uniqueIndex:idx_ingredient_name_unit"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
