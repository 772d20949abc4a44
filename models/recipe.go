package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is an authored item. It exclusively owns its ingredient and
// tag join rows (cascade), while Tag and Ingredient rows themselves
// are shared reference data.
type Recipe struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	AuthorID    uuid.UUID `json:"author_id" db:"author_id" gorm:"type:uuid;not null;index:idx_recipe_author;uniqueIndex:idx_recipe_author_name"`
	Name        string    `json:"name" db:"name" gorm:"type:varchar(200);not null;uniqueIndex:idx_recipe_author_name"`
	ImageURL    string    `json:"image" db:"image_url" gorm:"type:text;not null"`
	Text        string    `json:"text" db:"text" gorm:"type:text;not null"`
	CookingTime int       `json:"cooking_time" db:"cooking_time" gorm:"type:integer;not null"`
	PubDate     time.Time `json:"pub_date" db:"pub_date" gorm:"type:timestamp;not null;autoCreateTime;index:idx_recipe_pub_date,sort:desc"`

	Author      User               `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Tags        []Tag              `json:"-" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"-" gorm:"foreignKey:RecipeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
