package api

import (
	"net/http"
	"testing"

	"github.com/plateful-app/backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	_, router, _ := newTestRouter(t)

	body := map[string]any{
		"username":   "alice",
		"email":      "Alice@Example.COM",
		"first_name": "Alice",
		"last_name":  "Smith",
		"password":   "s3cret-pass",
	}
	rec := do(t, router, http.MethodPost, "/api/users", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view services.UserView
	decode(t, rec, &view)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.False(t, view.IsSubscribed)

	// taken username
	rec = do(t, router, http.MethodPost, "/api/users", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMe(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	user := seedUser(t, db, "alice", false)

	rec := do(t, router, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/users/me", bearer(t, tokens, user), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view services.UserView
	decode(t, rec, &view)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, user.ID, view.ID)
}

func TestSubscribeEndpoint(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	follower := seedUser(t, db, "bob", false)
	author := seedUser(t, db, "alice", false)
	tag := seedTag(t, db, "dinner")
	salt := seedIngredient(t, db, "salt", "g")
	seedRecipe(t, db, author, "Soup", tag, services.IngredientAmount{ID: salt.ID, Amount: 10})
	seedRecipe(t, db, author, "Salad", tag, services.IngredientAmount{ID: salt.ID, Amount: 2})

	auth := bearer(t, tokens, follower)
	path := "/api/users/" + author.ID.String() + "/subscribe"

	rec := do(t, router, http.MethodPost, path+"?recipes_limit=1", auth, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view services.AuthorView
	decode(t, rec, &view)
	assert.Equal(t, "alice", view.Username)
	assert.True(t, view.IsSubscribed)
	assert.EqualValues(t, 2, view.RecipesCount)
	assert.Len(t, view.Recipes, 1)

	rec = do(t, router, http.MethodPost, path, auth, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// self-subscription
	rec = do(t, router, http.MethodPost, "/api/users/"+follower.ID.String()+"/subscribe", auth, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodDelete, path, auth, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodDelete, path, auth, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSubscriptions(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	follower := seedUser(t, db, "bob", false)
	alice := seedUser(t, db, "alice", false)
	carol := seedUser(t, db, "carol", false)

	auth := bearer(t, tokens, follower)
	for _, author := range []string{alice.ID.String(), carol.ID.String()} {
		rec := do(t, router, http.MethodPost, "/api/users/"+author+"/subscribe", auth, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, router, http.MethodGet, "/api/users/subscriptions", auth, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Count   int64                 `json:"count"`
		Results []services.AuthorView `json:"results"`
	}
	decode(t, rec, &page)
	assert.EqualValues(t, 2, page.Count)
	require.Len(t, page.Results, 2)
	for _, view := range page.Results {
		assert.True(t, view.IsSubscribed)
	}
}

func TestGetUser(t *testing.T) {
	db, router, tokens := newTestRouter(t)
	viewer := seedUser(t, db, "bob", false)
	author := seedUser(t, db, "alice", false)

	rec := do(t, router, http.MethodGet, "/api/users/"+author.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view services.UserView
	decode(t, rec, &view)
	assert.Equal(t, "alice", view.Username)
	assert.False(t, view.IsSubscribed)

	auth := bearer(t, tokens, viewer)
	rec = do(t, router, http.MethodPost, "/api/users/"+author.ID.String()+"/subscribe", auth, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/users/"+author.ID.String(), auth, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &view)
	assert.True(t, view.IsSubscribed)
}
