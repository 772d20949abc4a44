package api

import (
	"net/http"
	"testing"

	"github.com/plateful-app/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllIngredientsSearch(t *testing.T) {
	db, router, _ := newTestRouter(t)
	seedIngredient(t, db, "salt", "g")
	seedIngredient(t, db, "Saffron", "g")
	seedIngredient(t, db, "pepper", "g")

	var ingredients []models.Ingredient

	rec := do(t, router, http.MethodGet, "/api/ingredients", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &ingredients)
	assert.Len(t, ingredients, 3)

	// prefix search is case-insensitive
	rec = do(t, router, http.MethodGet, "/api/ingredients?search=sa", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &ingredients)
	require.Len(t, ingredients, 2)
	for _, ingredient := range ingredients {
		assert.NotEqual(t, "pepper", ingredient.Name)
	}
}

func TestCreateIngredientStaffOnly(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	regular := seedUser(t, db, "bob", false)
	staff := seedUser(t, db, "admin", true)

	body := map[string]any{"name": "salt", "measurement_unit": "g"}

	rec := do(t, router, http.MethodPost, "/api/ingredients", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/ingredients", bearer(t, tokens, regular), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/ingredients", bearer(t, tokens, staff), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var ingredient models.Ingredient
	decode(t, rec, &ingredient)
	assert.Equal(t, "salt", ingredient.Name)
	assert.Equal(t, "g", ingredient.MeasurementUnit)

	// duplicate (name, unit) pair hits the unique index
	rec = do(t, router, http.MethodPost, "/api/ingredients", bearer(t, tokens, staff), body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetTags(t *testing.T) {
	db, router, _ := newTestRouter(t)
	breakfast := seedTag(t, db, "breakfast")
	seedTag(t, db, "dinner")

	var tags []models.Tag
	rec := do(t, router, http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &tags)
	require.Len(t, tags, 2)
	// ordered by name
	assert.Equal(t, "breakfast", tags[0].Name)

	rec = do(t, router, http.MethodGet, "/api/tags/"+breakfast.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tag models.Tag
	decode(t, rec, &tag)
	assert.Equal(t, "breakfast", tag.Name)
	assert.Equal(t, "#FF0000", tag.Color)
}
