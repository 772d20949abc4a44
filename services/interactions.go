package services

import (
	"github.com/google/uuid"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InteractionService handles the favorite and shopping-cart membership
// toggles. Both follow the same shape: add conflicts when the pair
// exists, remove 404s when it does not.
type InteractionService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewInteractionService(db database.Database) InteractionService {
	return InteractionService{
		db:     db,
		logger: log.With().Str("serviceName", "interactionService").Logger(),
	}
}

func (s InteractionService) findRecipe(recipeID uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.db.RecipeRepo().FindByID(recipeID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "recipe", err)
	}
	if recipe == nil {
		return nil, errs.NewNotFound("recipe")
	}
	return recipe, nil
}

func compact(recipe *models.Recipe) CompactRecipeView {
	return CompactRecipeView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}

// AddFavorite bookmarks a recipe for the user.
func (s InteractionService) AddFavorite(user *models.User, recipeID uuid.UUID) (CompactRecipeView, error) {
	recipe, err := s.findRecipe(recipeID)
	if err != nil {
		return CompactRecipeView{}, err
	}

	exists, err := s.db.FavoriteRepo().Exists(user.ID, recipeID)
	if err != nil {
		return CompactRecipeView{}, errs.NewDatabaseError("check", "favorite", err)
	}
	if exists {
		return CompactRecipeView{}, errs.NewAlreadyExists("favorite")
	}

	favorite := &models.Favorite{UserID: user.ID, RecipeID: recipeID}
	if err := s.db.FavoriteRepo().Add(favorite); err != nil {
		return CompactRecipeView{}, errs.NewDatabaseError("create", "favorite", err)
	}
	s.logger.Info().Str("user", user.Username).Str("recipeID", recipeID.String()).Msg("Recipe favorited")
	return compact(recipe), nil
}

// RemoveFavorite drops the bookmark; missing rows are a not-found error.
func (s InteractionService) RemoveFavorite(user *models.User, recipeID uuid.UUID) error {
	rows, err := s.db.FavoriteRepo().Delete(user.ID, recipeID)
	if err != nil {
		return errs.NewDatabaseError("delete", "favorite", err)
	}
	if rows == 0 {
		return errs.NewNotFound("favorite")
	}
	return nil
}

// AddToCart puts a recipe in the user's shopping cart.
func (s InteractionService) AddToCart(user *models.User, recipeID uuid.UUID) (CompactRecipeView, error) {
	recipe, err := s.findRecipe(recipeID)
	if err != nil {
		return CompactRecipeView{}, err
	}

	exists, err := s.db.ShoppingCartRepo().Exists(user.ID, recipeID)
	if err != nil {
		return CompactRecipeView{}, errs.NewDatabaseError("check", "shopping cart item", err)
	}
	if exists {
		return CompactRecipeView{}, errs.NewAlreadyExists("shopping cart item")
	}

	item := &models.ShoppingCartItem{UserID: user.ID, RecipeID: recipeID}
	if err := s.db.ShoppingCartRepo().Add(item); err != nil {
		return CompactRecipeView{}, errs.NewDatabaseError("create", "shopping cart item", err)
	}
	s.logger.Info().Str("user", user.Username).Str("recipeID", recipeID.String()).Msg("Recipe added to cart")
	return compact(recipe), nil
}

// RemoveFromCart drops the cart row; missing rows are a not-found error.
func (s InteractionService) RemoveFromCart(user *models.User, recipeID uuid.UUID) error {
	rows, err := s.db.ShoppingCartRepo().Delete(user.ID, recipeID)
	if err != nil {
		return errs.NewDatabaseError("delete", "shopping cart item", err)
	}
	if rows == 0 {
		return errs.NewNotFound("shopping cart item")
	}
	return nil
}
