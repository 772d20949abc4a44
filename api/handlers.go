package api

import (
	"github.com/plateful-app/backend/config"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, images storage.ImageStore, limits config.Limits) *routeHandlers {
	return &routeHandlers{
		userHandler:       newUserHandler(db, limits),
		tagHandler:        newTagHandler(db.TagRepo()),
		ingredientHandler: newIngredientHandler(db.IngredientRepo()),
		recipeHandler:     newRecipeHandler(db, images, limits),
	}
}
