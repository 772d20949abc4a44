package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/config"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/services"
	"github.com/plateful-app/backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type recipeHandler struct {
	responder    Responder
	logger       zerolog.Logger
	recipeRepo   *database.RecipeRepo
	limits       config.Limits
	recipes      services.RecipeService
	interactions services.InteractionService
	shoppingList services.ShoppingListService
	projector    services.Projector
}

func newRecipeHandler(db database.Database, images storage.ImageStore, limits config.Limits) recipeHandler {
	logger := log.With().Str("handlerName", "recipeHandler").Logger()

	return recipeHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		recipeRepo:   db.RecipeRepo(),
		limits:       limits,
		recipes:      services.NewRecipeService(db, images, limits),
		interactions: services.NewInteractionService(db),
		shoppingList: services.NewShoppingListService(db),
		projector:    services.NewProjector(db),
	}
}

// recipeFilter builds the repository filter from query parameters. The
// favorited/in-cart filters only apply for signed-in viewers.
func (h recipeHandler) recipeFilter(r *http.Request) database.RecipeFilter {
	limit, offset := pageParams(r, h.limits)
	filter := database.RecipeFilter{
		TagSlugs: r.URL.Query()["tags"],
		Limit:    limit,
		Offset:   offset,
	}

	if raw := r.URL.Query().Get("author"); raw != "" {
		if authorID, err := uuid.Parse(raw); err == nil {
			filter.AuthorID = &authorID
		}
	}
	if viewer := currentUser(r.Context()); viewer != nil {
		if r.URL.Query().Get("is_favorited") == "1" {
			filter.FavoritedBy = &viewer.ID
		}
		if r.URL.Query().Get("is_in_shopping_cart") == "1" {
			filter.InCartOf = &viewer.ID
		}
	}
	return filter
}

// getAllRecipes retrieves a filtered page of recipes
// @Summary Get all recipes
// @Tags Recipes
// @Produce json
// @Param author query string false "Author ID" format(uuid)
// @Param tags query []string false "Tag slugs"
// @Param is_favorited query int false "Only the viewer's favorites"
// @Param is_in_shopping_cart query int false "Only the viewer's cart"
// @Success 200 {object} PageResponse "Page of recipes"
// @Router /api/recipes [get]
func (h recipeHandler) getAllRecipes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, total, err := h.recipeRepo.FindPage(h.recipeFilter(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "recipes", err))
			return
		}

		views, err := h.projector.RecipeViews(currentUser(r.Context()), recipes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, PageResponse{Count: total, Results: views})
	}
}

// getRecipe retrieves a specific recipe by ID
// @Summary Get recipe
// @Tags Recipes
// @Produce json
// @Param recipeID path string true "Recipe ID" format(uuid)
// @Success 200 {object} services.RecipeView "Recipe details"
// @Failure 404 {object} ErrorResponse "Not Found - Recipe not found"
// @Router /api/recipes/{recipeID} [get]
func (h recipeHandler) getRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseUUIDParam(r, "recipeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		recipe, err := h.recipeRepo.FindByID(recipeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "recipe", err))
			return
		}
		if recipe == nil {
			h.responder.WriteError(w, errs.NewNotFound("recipe"))
			return
		}

		view, err := h.projector.RecipeView(currentUser(r.Context()), recipe)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, view)
	}
}

// createRecipe validates and persists a new recipe atomically
// @Summary Create recipe
// @Tags Recipes
// @Accept json
// @Produce json
// @Param recipe body services.RecipeInput true "Recipe data"
// @Success 201 {object} services.RecipeView "Created recipe in read-side shape"
// @Failure 400 {object} ErrorResponse "Bad Request - Validation failure"
// @Failure 409 {object} ErrorResponse "Conflict - Duplicate recipe name for author"
// @Router /api/recipes [post]
func (h recipeHandler) createRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.RecipeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.Malformed("recipe"))
			return
		}

		author := currentUser(r.Context())
		recipe, err := h.recipes.Create(r.Context(), author, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.projector.RecipeView(author, recipe)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, view)
	}
}

// updateRecipe replaces a recipe's fields, tags and ingredient set
// @Summary Update recipe
// @Tags Recipes
// @Accept json
// @Produce json
// @Param recipeID path string true "Recipe ID" format(uuid)
// @Param recipe body services.RecipeInput true "Updated recipe data"
// @Success 200 {object} services.RecipeView "Updated recipe in read-side shape"
// @Failure 403 {object} ErrorResponse "Forbidden - Not the author"
// @Failure 404 {object} ErrorResponse "Not Found - Recipe not found"
// @Router /api/recipes/{recipeID} [patch]
func (h recipeHandler) updateRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseUUIDParam(r, "recipeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input services.RecipeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.Malformed("recipe"))
			return
		}

		actor := currentUser(r.Context())
		recipe, err := h.recipes.Update(r.Context(), actor, recipeID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.projector.RecipeView(actor, recipe)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, view)
	}
}

// deleteRecipe deletes a recipe by ID
// @Summary Delete recipe
// @Tags Recipes
// @Param recipeID path string true "Recipe ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Forbidden - Not the author"
// @Failure 404 {object} ErrorResponse "Not Found - Recipe not found"
// @Router /api/recipes/{recipeID} [delete]
func (h recipeHandler) deleteRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseUUIDParam(r, "recipeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.recipes.Delete(currentUser(r.Context()), recipeID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// favorite bookmarks a recipe
// @Summary Favorite recipe
// @Tags Recipes
// @Produce json
// @Param recipeID path string true "Recipe ID" format(uuid)
// @Success 201 {object} services.CompactRecipeView "Compact recipe"
// @Failure 409 {object} ErrorResponse "Conflict - Already favorited"
// @Router /api/recipes/{recipeID}/favorite [post]
func (h recipeHandler) favorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseUUIDParam(r, "recipeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.interactions.AddFavorite(currentUser(r.Context()), recipeID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, view)
	}
}

// unfavorite removes a bookmark
// @Summary Unfavorite recipe
// @Tags Recipes
// @Param recipeID path string true "Recipe ID" format(uuid)
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Not Found - Not favorited"
// @Router /api/recipes/{recipeID}/favorite [delete]
func (h recipeHandler) unfavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseUUIDParam(r, "recipeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.interactions.RemoveFavorite(currentUser(r.Context()), recipeID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// addToCart puts a recipe in the viewer's shopping cart
// @Summary Add recipe to cart
// @Tags Recipes
// @Produce json
// @Param recipeID path string true "Recipe ID" format(uuid)
// @Success 201 {object} services.CompactRecipeView "Compact recipe"
// @Failure 409 {object} ErrorResponse "Conflict - Already in cart"
// @Router /api/recipes/{recipeID}/shopping_cart [post]
func (h recipeHandler) addToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseUUIDParam(r, "recipeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.interactions.AddToCart(currentUser(r.Context()), recipeID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, view)
	}
}

// removeFromCart drops a recipe from the viewer's shopping cart
// @Summary Remove recipe from cart
// @Tags Recipes
// @Param recipeID path string true "Recipe ID" format(uuid)
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Not Found - Not in cart"
// @Router /api/recipes/{recipeID}/shopping_cart [delete]
func (h recipeHandler) removeFromCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := parseUUIDParam(r, "recipeID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.interactions.RemoveFromCart(currentUser(r.Context()), recipeID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// downloadShoppingCart streams the aggregated shopping list
// @Summary Download shopping list
// @Tags Recipes
// @Produce plain
// @Success 200 {string} string "Plain-text shopping list attachment"
// @Failure 400 {object} ErrorResponse "Bad Request - Cart is empty"
// @Router /api/recipes/download_shopping_cart [get]
func (h recipeHandler) downloadShoppingCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, content, err := h.shoppingList.Build(currentUser(r.Context()), time.Now())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteAttachment(w, filename, "text/plain; charset=utf-8", content)
	}
}
