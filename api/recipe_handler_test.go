package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRecipesViewerFlags(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	author := seedUser(t, db, "alice", false)
	viewer := seedUser(t, db, "bob", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")
	recipe := seedRecipe(t, db, author, "Soup", tag, services.IngredientAmount{ID: salt.ID, Amount: 10})

	interactions := services.NewInteractionService(db)
	_, err := interactions.AddFavorite(viewer, recipe.ID)
	require.NoError(t, err)

	var page struct {
		Count   int64                 `json:"count"`
		Results []services.RecipeView `json:"results"`
	}

	// anonymous viewers see every flag false
	rec := do(t, router, http.MethodGet, "/api/recipes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &page)
	require.EqualValues(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.False(t, page.Results[0].IsFavorited)
	assert.False(t, page.Results[0].IsInShoppingCart)
	assert.Equal(t, "alice", page.Results[0].Author.Username)

	// the signed-in viewer sees their own favorite
	rec = do(t, router, http.MethodGet, "/api/recipes", bearer(t, tokens, viewer), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &page)
	assert.True(t, page.Results[0].IsFavorited)
	assert.False(t, page.Results[0].IsInShoppingCart)
}

func TestGetRecipeNotFound(t *testing.T) {
	_, router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/recipes/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/recipes/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecipeEndpoint(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	author := seedUser(t, db, "alice", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")

	body := map[string]any{
		"name":         "Soup",
		"text":         "Boil water, add salt.",
		"cooking_time": 20,
		"image":        testImage,
		"tags":         []string{tag.ID.String()},
		"ingredients":  []map[string]any{{"id": salt.ID.String(), "amount": 10}},
	}

	// unauthenticated writes are rejected
	rec := do(t, router, http.MethodPost, "/api/recipes", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/recipes", bearer(t, tokens, author), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view services.RecipeView
	decode(t, rec, &view)
	assert.Equal(t, "Soup", view.Name)
	assert.Equal(t, 20, view.CookingTime)
	assert.Equal(t, "alice", view.Author.Username)
	require.Len(t, view.Ingredients, 1)
	assert.Equal(t, "salt", view.Ingredients[0].Name)
	assert.Equal(t, 10, view.Ingredients[0].Amount)
	assert.NotEmpty(t, view.Image)
}

func TestUpdateRecipeEndpointForbidden(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	author := seedUser(t, db, "alice", false)
	stranger := seedUser(t, db, "bob", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")
	recipe := seedRecipe(t, db, author, "Soup", tag, services.IngredientAmount{ID: salt.ID, Amount: 10})

	body := map[string]any{
		"name":        "Hijacked",
		"tags":        []string{tag.ID.String()},
		"ingredients": []map[string]any{{"id": salt.ID.String(), "amount": 10}},
	}
	rec := do(t, router, http.MethodPatch, "/api/recipes/"+recipe.ID.String(), bearer(t, tokens, stranger), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPatch, "/api/recipes/"+recipe.ID.String(), bearer(t, tokens, author), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var view services.RecipeView
	decode(t, rec, &view)
	assert.Equal(t, "Hijacked", view.Name)
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	author := seedUser(t, db, "alice", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")
	recipe := seedRecipe(t, db, author, "Soup", tag, services.IngredientAmount{ID: salt.ID, Amount: 10})

	rec := do(t, router, http.MethodDelete, "/api/recipes/"+recipe.ID.String(), bearer(t, tokens, author), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/recipes/"+recipe.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoriteEndpoint(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	author := seedUser(t, db, "alice", false)
	viewer := seedUser(t, db, "bob", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")
	recipe := seedRecipe(t, db, author, "Soup", tag, services.IngredientAmount{ID: salt.ID, Amount: 10})

	path := "/api/recipes/" + recipe.ID.String() + "/favorite"
	auth := bearer(t, tokens, viewer)

	rec := do(t, router, http.MethodPost, path, auth, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view services.CompactRecipeView
	decode(t, rec, &view)
	assert.Equal(t, recipe.ID, view.ID)
	assert.Equal(t, "Soup", view.Name)

	rec = do(t, router, http.MethodPost, path, auth, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodDelete, path, auth, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodDelete, path, auth, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecipeFilterIsInShoppingCart(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	author := seedUser(t, db, "alice", false)
	viewer := seedUser(t, db, "bob", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")
	soup := seedRecipe(t, db, author, "Soup", tag, services.IngredientAmount{ID: salt.ID, Amount: 10})
	seedRecipe(t, db, author, "Salad", tag, services.IngredientAmount{ID: salt.ID, Amount: 2})

	auth := bearer(t, tokens, viewer)
	rec := do(t, router, http.MethodPost, "/api/recipes/"+soup.ID.String()+"/shopping_cart", auth, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var page struct {
		Count   int64                 `json:"count"`
		Results []services.RecipeView `json:"results"`
	}
	rec = do(t, router, http.MethodGet, "/api/recipes?is_in_shopping_cart=1", auth, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &page)
	require.EqualValues(t, 1, page.Count)
	assert.Equal(t, soup.ID, page.Results[0].ID)

	// the filter is a no-op for anonymous viewers
	rec = do(t, router, http.MethodGet, "/api/recipes?is_in_shopping_cart=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &page)
	assert.EqualValues(t, 2, page.Count)
}

func TestDownloadShoppingCart(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	author := seedUser(t, db, "alice", false)
	shopper := seedUser(t, db, "bob", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")
	recipe := seedRecipe(t, db, author, "Soup", tag, services.IngredientAmount{ID: salt.ID, Amount: 10})

	auth := bearer(t, tokens, shopper)

	// empty cart is a 400, not an empty file
	rec := do(t, router, http.MethodGet, "/api/recipes/download_shopping_cart", auth, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, err := services.NewInteractionService(db).AddToCart(shopper, recipe.ID)
	require.NoError(t, err)

	rec = do(t, router, http.MethodGet, "/api/recipes/download_shopping_cart", auth, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=bob_shopping_list.txt", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "- salt: 10 g")

	rec = do(t, router, http.MethodGet, "/api/recipes/download_shopping_cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
