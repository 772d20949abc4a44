package services

import (
	"github.com/google/uuid"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/models"
)

// UserView is the wire shape of a user profile, including the
// viewer-relative subscription flag.
type UserView struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// IngredientView is an ingredient inside a recipe response, carrying
// the per-recipe amount next to the reference data.
type IngredientView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// RecipeView is the read-side recipe shape. Create and update responses
// go through it too; there is no separate write-side response shape.
type RecipeView struct {
	ID               uuid.UUID        `json:"id"`
	Tags             []models.Tag     `json:"tags"`
	Author           UserView         `json:"author"`
	Ingredients      []IngredientView `json:"ingredients"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	Text             string           `json:"text"`
	CookingTime      int              `json:"cooking_time"`
}

// CompactRecipeView is the short recipe shape returned by favorite and
// cart toggles and embedded in subscription responses.
type CompactRecipeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// AuthorView is a user profile extended with their recipes, as returned
// by the subscription endpoints.
type AuthorView struct {
	UserView
	Recipes      []CompactRecipeView `json:"recipes"`
	RecipesCount int64               `json:"recipes_count"`
}

// Projector builds viewer-relative response shapes. All per-viewer
// flags are resolved with one batched query per relation, never one
// query per row.
type Projector struct {
	db database.Database
}

func NewProjector(db database.Database) Projector {
	return Projector{db}
}

// RecipeViews projects a page of recipes for the given viewer. A nil
// viewer is anonymous and sees every flag as false.
func (p Projector) RecipeViews(viewer *models.User, recipes []*models.Recipe) ([]RecipeView, error) {
	recipeIDs := make([]uuid.UUID, 0, len(recipes))
	authorIDs := make([]uuid.UUID, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
		authorIDs = append(authorIDs, recipe.AuthorID)
	}

	var (
		favorited  map[uuid.UUID]bool
		inCart     map[uuid.UUID]bool
		subscribed map[uuid.UUID]bool
		err        error
	)
	if viewer != nil {
		if favorited, err = p.db.FavoriteRepo().RecipeIDSet(viewer.ID, recipeIDs); err != nil {
			return nil, err
		}
		if inCart, err = p.db.ShoppingCartRepo().RecipeIDSet(viewer.ID, recipeIDs); err != nil {
			return nil, err
		}
		if subscribed, err = p.db.SubscriptionRepo().FollowedSet(viewer.ID, authorIDs); err != nil {
			return nil, err
		}
	}

	views := make([]RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		ingredients := make([]IngredientView, 0, len(recipe.Ingredients))
		for _, row := range recipe.Ingredients {
			ingredients = append(ingredients, IngredientView{
				ID:              row.IngredientID,
				Name:            row.Ingredient.Name,
				MeasurementUnit: row.Ingredient.MeasurementUnit,
				Amount:          row.Amount,
			})
		}
		tags := recipe.Tags
		if tags == nil {
			tags = []models.Tag{}
		}
		views = append(views, RecipeView{
			ID:   recipe.ID,
			Tags: tags,
			Author: UserView{
				ID:           recipe.Author.ID,
				Username:     recipe.Author.Username,
				Email:        recipe.Author.Email,
				FirstName:    recipe.Author.FirstName,
				LastName:     recipe.Author.LastName,
				IsSubscribed: subscribed[recipe.AuthorID],
			},
			Ingredients:      ingredients,
			IsFavorited:      favorited[recipe.ID],
			IsInShoppingCart: inCart[recipe.ID],
			Name:             recipe.Name,
			Image:            recipe.ImageURL,
			Text:             recipe.Text,
			CookingTime:      recipe.CookingTime,
		})
	}
	return views, nil
}

// RecipeView projects a single recipe for the given viewer.
func (p Projector) RecipeView(viewer *models.User, recipe *models.Recipe) (RecipeView, error) {
	views, err := p.RecipeViews(viewer, []*models.Recipe{recipe})
	if err != nil {
		return RecipeView{}, err
	}
	return views[0], nil
}

// UserViews projects user profiles for the given viewer.
func (p Projector) UserViews(viewer *models.User, users []*models.User) ([]UserView, error) {
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	var subscribed map[uuid.UUID]bool
	if viewer != nil {
		var err error
		if subscribed, err = p.db.SubscriptionRepo().FollowedSet(viewer.ID, ids); err != nil {
			return nil, err
		}
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			IsSubscribed: subscribed[u.ID],
		})
	}
	return views, nil
}

// UserView projects a single profile for the given viewer.
func (p Projector) UserView(viewer, user *models.User) (UserView, error) {
	views, err := p.UserViews(viewer, []*models.User{user})
	if err != nil {
		return UserView{}, err
	}
	return views[0], nil
}

// AuthorView extends a profile with the author's recipes, truncated to
// recipesLimit when positive, plus the full recipe count.
func (p Projector) AuthorView(viewer, author *models.User, recipesLimit int) (AuthorView, error) {
	profile, err := p.UserView(viewer, author)
	if err != nil {
		return AuthorView{}, err
	}

	recipes, err := p.db.RecipeRepo().FindByAuthor(author.ID, recipesLimit)
	if err != nil {
		return AuthorView{}, err
	}
	count, err := p.db.RecipeRepo().CountByAuthor(author.ID)
	if err != nil {
		return AuthorView{}, err
	}

	compact := make([]CompactRecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		compact = append(compact, CompactRecipeView{
			ID:          recipe.ID,
			Name:        recipe.Name,
			Image:       recipe.ImageURL,
			CookingTime: recipe.CookingTime,
		})
	}

	return AuthorView{
		UserView:     profile,
		Recipes:      compact,
		RecipesCount: count,
	}, nil
}
