package models

import "gorm.io/gorm"

// Migrate creates or updates the schema for every model. Order matters
// for foreign keys: referenced tables first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Tag{},
		&Ingredient{},
		&Recipe{},
		&RecipeIngredient{},
		&Subscription{},
		&Favorite{},
		&ShoppingCartItem{},
	)
}
