package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is an admin-managed recipe label. Color holds a normalized
// `#RRGGBB` value (see NormalizeHexColor).
type Tag struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name  string    `json:"name" db:"name" gorm:"type:varchar(200);not null;uniqueIndex:idx_tag_name"`
	Color string    `json:"color" db:"color" gorm:"type:varchar(7);not null"`
	Slug  string    `json:"slug" db:"slug" gorm:"type:varchar(200);not null;uniqueIndex:idx_tag_slug"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	normalized, err := NormalizeHexColor(t.Color)
	if err != nil {
		return err
	}
	t.Color = normalized
	return nil
}
