package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/config"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/models"
	"github.com/plateful-app/backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// IngredientAmount is one {ingredient, quantity} entry of a recipe
// write payload.
type IngredientAmount struct {
	ID     uuid.UUID `json:"id"`
	Amount int       `json:"amount"`
}

// RecipeInput is the write-side recipe payload. Image is a base64 data
// URI; it is required on create and optional on update.
type RecipeInput struct {
	Name        string             `json:"name"`
	Text        string             `json:"text"`
	CookingTime int                `json:"cooking_time"`
	Image       string             `json:"image"`
	TagIDs      []uuid.UUID        `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// RecipeService owns the recipe authoring workflow: validate
// everything up front, then persist the recipe row, its tag links and
// its ingredient rows atomically.
type RecipeService struct {
	db     database.Database
	images storage.ImageStore
	limits config.Limits
	logger zerolog.Logger
}

func NewRecipeService(db database.Database, images storage.ImageStore, limits config.Limits) RecipeService {
	return RecipeService{
		db:     db,
		images: images,
		limits: limits,
		logger: log.With().Str("serviceName", "recipeService").Logger(),
	}
}

// validate checks every rule before any write happens and resolves the
// referenced tag and ingredient rows.
func (s RecipeService) validate(input RecipeInput) ([]models.Tag, []models.RecipeIngredient, error) {
	if input.Name == "" {
		return nil, nil, errs.NewMissingRequiredFieldError("name")
	}
	if input.Text == "" {
		return nil, nil, errs.NewMissingRequiredFieldError("text")
	}
	if input.CookingTime < s.limits.CookingTimeMin || input.CookingTime > s.limits.CookingTimeMax {
		return nil, nil, errs.NewCookingTimeRangeError(s.limits.CookingTimeMin, s.limits.CookingTimeMax)
	}
	if len(input.TagIDs) == 0 {
		return nil, nil, errs.NewNoTagsError()
	}
	if len(input.Ingredients) == 0 {
		return nil, nil, errs.NewNoIngredientsError()
	}

	tags, err := s.db.TagRepo().FindByIDs(input.TagIDs)
	if err != nil {
		return nil, nil, errs.NewDatabaseError("find", "tags", err)
	}
	if len(tags) != len(uniqueIDs(input.TagIDs)) {
		return nil, nil, errs.NewNotFound("tag")
	}

	ingredientIDs := make([]uuid.UUID, 0, len(input.Ingredients))
	for _, entry := range input.Ingredients {
		ingredientIDs = append(ingredientIDs, entry.ID)
	}
	ingredients, err := s.db.IngredientRepo().FindByIDs(ingredientIDs)
	if err != nil {
		return nil, nil, errs.NewDatabaseError("find", "ingredients", err)
	}
	byID := make(map[uuid.UUID]models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	seen := make(map[uuid.UUID]bool, len(input.Ingredients))
	items := make([]models.RecipeIngredient, 0, len(input.Ingredients))
	for _, entry := range input.Ingredients {
		ing, ok := byID[entry.ID]
		if !ok {
			return nil, nil, errs.NewNotFound("ingredient")
		}
		if seen[entry.ID] {
			return nil, nil, errs.NewDuplicateIngredientError(ing.Name)
		}
		seen[entry.ID] = true
		if entry.Amount < s.limits.AmountMin || entry.Amount > s.limits.AmountMax {
			return nil, nil, errs.NewAmountRangeError(s.limits.AmountMin, s.limits.AmountMax)
		}
		items = append(items, models.RecipeIngredient{
			IngredientID: entry.ID,
			Amount:       entry.Amount,
		})
	}
	return tags, items, nil
}

func (s RecipeService) storeImage(ctx context.Context, dataURI string) (string, error) {
	data, contentType, err := storage.DecodeDataURI(dataURI)
	if err != nil {
		return "", errs.NewInvalidFieldError("image", err.Error())
	}
	key := fmt.Sprintf("recipes/%s.%s", uuid.New(), storage.ExtensionFor(contentType))
	url, err := s.images.Put(ctx, key, contentType, data)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("storing recipe image failed", err)
	}
	return url, nil
}

// Create validates the payload, stores the image and persists the
// recipe with all its join rows in one transaction.
func (s RecipeService) Create(ctx context.Context, author *models.User, input RecipeInput) (*models.Recipe, error) {
	tags, items, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	if input.Image == "" {
		return nil, errs.NewMissingRequiredFieldError("image")
	}

	imageURL, err := s.storeImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        input.Name,
		ImageURL:    imageURL,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}
	if err := s.db.RecipeRepo().CreateWithRelations(recipe, tags, items); err != nil {
		return nil, errs.NewDatabaseError("create", "recipe", err)
	}
	s.logger.Info().Str("recipeID", recipe.ID.String()).Str("author", author.Username).Msg("Recipe created")

	created, err := s.db.RecipeRepo().FindByID(recipe.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find created", "recipe", err)
	}
	return created, nil
}

// Update validates the payload, checks authorship, fully replaces the
// ingredient set and re-assigns tags wholesale, atomically. Scalar
// fields left empty in the payload keep their current values.
func (s RecipeService) Update(ctx context.Context, actor *models.User, recipeID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	existing, err := s.db.RecipeRepo().FindByID(recipeID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "recipe", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("recipe")
	}
	if actor.ID != existing.AuthorID && !actor.IsStaff {
		return nil, errs.NewForbiddenError("only the author may edit this recipe")
	}

	if input.Name == "" {
		input.Name = existing.Name
	}
	if input.Text == "" {
		input.Text = existing.Text
	}
	if input.CookingTime == 0 {
		input.CookingTime = existing.CookingTime
	}

	tags, items, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	imageURL := existing.ImageURL
	if input.Image != "" {
		if imageURL, err = s.storeImage(ctx, input.Image); err != nil {
			return nil, err
		}
	}

	updated := &models.Recipe{
		ID:          existing.ID,
		AuthorID:    existing.AuthorID,
		Name:        input.Name,
		ImageURL:    imageURL,
		Text:        input.Text,
		CookingTime: input.CookingTime,
		PubDate:     existing.PubDate,
	}
	if err := s.db.RecipeRepo().UpdateWithRelations(updated, tags, items); err != nil {
		return nil, errs.NewDatabaseError("update", "recipe", err)
	}
	s.logger.Info().Str("recipeID", recipeID.String()).Str("actor", actor.Username).Msg("Recipe updated")

	reloaded, err := s.db.RecipeRepo().FindByID(recipeID)
	if err != nil {
		return nil, errs.NewDatabaseError("find updated", "recipe", err)
	}
	return reloaded, nil
}

// Delete removes a recipe after checking authorship.
func (s RecipeService) Delete(actor *models.User, recipeID uuid.UUID) error {
	existing, err := s.db.RecipeRepo().FindByID(recipeID)
	if err != nil {
		return errs.NewDatabaseError("find", "recipe", err)
	}
	if existing == nil {
		return errs.NewNotFound("recipe")
	}
	if actor.ID != existing.AuthorID && !actor.IsStaff {
		return errs.NewForbiddenError("only the author may delete this recipe")
	}

	rows, err := s.db.RecipeRepo().Delete(recipeID)
	if err != nil {
		return errs.NewDatabaseError("delete", "recipe", err)
	}
	if rows == 0 {
		return errs.NewNotFound("recipe")
	}
	s.logger.Info().Str("recipeID", recipeID.String()).Str("actor", actor.Username).Msg("Recipe deleted")
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
