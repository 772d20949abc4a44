package api

import (
	"encoding/json"
	"net/http"

	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ingredientHandler struct {
	responder      Responder
	logger         zerolog.Logger
	ingredientRepo *database.IngredientRepo
}

func newIngredientHandler(ingredientRepo *database.IngredientRepo) ingredientHandler {
	logger := log.With().Str("handlerName", "ingredientHandler").Logger()

	return ingredientHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		ingredientRepo: ingredientRepo,
	}
}

// getAllIngredients retrieves ingredients, optionally filtered by a
// case-insensitive name prefix
// @Summary Get ingredients
// @Tags Ingredients
// @Produce json
// @Param search query string false "Name prefix"
// @Success 200 {array} models.Ingredient "List of ingredients"
// @Router /api/ingredients [get]
func (h ingredientHandler) getAllIngredients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := h.ingredientRepo.FindAll(r.URL.Query().Get("search"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "ingredients", err))
			return
		}
		h.responder.WriteJSON(w, ingredients)
	}
}

// getIngredient retrieves a specific ingredient by ID
// @Summary Get ingredient
// @Tags Ingredients
// @Produce json
// @Param ingredientID path string true "Ingredient ID" format(uuid)
// @Success 200 {object} models.Ingredient "Ingredient details"
// @Failure 404 {object} ErrorResponse "Not Found - Ingredient not found"
// @Router /api/ingredients/{ingredientID} [get]
func (h ingredientHandler) getIngredient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredientID, err := parseUUIDParam(r, "ingredientID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ingredient, err := h.ingredientRepo.FindByID(ingredientID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "ingredient", err))
			return
		}
		if ingredient == nil {
			h.responder.WriteError(w, errs.NewNotFound("ingredient"))
			return
		}

		h.responder.WriteJSON(w, ingredient)
	}
}

// createIngredient adds a new ingredient to the reference catalog
// @Summary Create ingredient
// @Tags Ingredients
// @Accept json
// @Produce json
// @Param ingredient body models.Ingredient true "Ingredient data"
// @Success 201 {object} models.Ingredient "Created ingredient"
// @Failure 403 {object} ErrorResponse "Forbidden - Staff only"
// @Failure 409 {object} ErrorResponse "Conflict - Duplicate (name, unit) pair"
// @Router /api/ingredients [post]
func (h ingredientHandler) createIngredient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r.Context())
		if user == nil || !user.IsStaff {
			h.responder.WriteError(w, errs.NewForbiddenError("only staff may manage ingredients"))
			return
		}

		var ingredient models.Ingredient
		if err := json.NewDecoder(r.Body).Decode(&ingredient); err != nil {
			h.responder.WriteError(w, errs.Malformed("ingredient"))
			return
		}
		if ingredient.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if ingredient.MeasurementUnit == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("measurement_unit"))
			return
		}

		if err := h.ingredientRepo.Add(&ingredient); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "ingredient", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, ingredient)
	}
}
