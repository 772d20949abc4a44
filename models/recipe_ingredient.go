package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeIngredient joins a recipe to an ingredient with a quantity.
// Rows cascade with their recipe; the referenced ingredient is
// protected from deletion while the row exists.
type RecipeIngredient struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	RecipeID     uuid.UUID `json:"recipe_id" db:"recipe_id" gorm:"type:uuid;not null;index:idx_recipe_ingredient_recipe;uniqueIndex:idx_recipe_ingredient_unique"`
	IngredientID uuid.UUID `json:"ingredient_id" db:"ingredient_id" gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredient_unique"`
	Amount       int       `json:"amount" db:"amount" gorm:"type:integer;not null"`

	Ingredient Ingredient `json:"-" gorm:"foreignKey:IngredientID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
