package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/config"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/models"
	"github.com/plateful-app/backend/services"
	"github.com/plateful-app/backend/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret = "test-secret"
	testImage  = "data:image/png;base64,ZmFrZXBuZw=="
)

func newTestDB(t *testing.T) database.Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return database.New(db)
}

func newTestRouter(t *testing.T) (database.Database, http.Handler, TokenManager) {
	t.Helper()
	db := newTestDB(t)
	images := storage.NewLocalStore(t.TempDir(), "http://localhost:8080/media")
	cfg := map[string]string{"TOKEN_SECRET": testSecret}
	router := newRouter(db, images, withConfig(cfg), withStartupTime(time.Now()))
	return db, router, NewTokenManager(testSecret)
}

func seedUser(t *testing.T, db database.Database, username string, staff bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "irrelevant",
		IsStaff:      staff,
	}
	require.NoError(t, db.UserRepo().Add(user))
	return user
}

func seedTag(t *testing.T, db database.Database, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Color: "#FF0000", Slug: name}
	require.NoError(t, db.TagRepo().Add(tag))
	return tag
}

func seedIngredient(t *testing.T, db database.Database, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.IngredientRepo().Add(ingredient))
	return ingredient
}

func seedRecipe(t *testing.T, db database.Database, author *models.User, name string, tag *models.Tag, items ...services.IngredientAmount) *models.Recipe {
	t.Helper()
	service := services.NewRecipeService(db, storage.NewLocalStore(t.TempDir(), "http://localhost:8080/media"), testLimits())
	recipe, err := service.Create(context.Background(), author, services.RecipeInput{
		Name:        name,
		Text:        "some text",
		CookingTime: 15,
		Image:       testImage,
		TagIDs:      []uuid.UUID{tag.ID},
		Ingredients: items,
	})
	require.NoError(t, err)
	return recipe
}

func testLimits() config.Limits {
	return config.Limits{
		CookingTimeMin: 1,
		CookingTimeMax: 600,
		AmountMin:      1,
		AmountMax:      10000,
		PageSize:       6,
		MaxPageSize:    100,
	}
}

func bearer(t *testing.T, tokens TokenManager, user *models.User) string {
	t.Helper()
	token, err := tokens.Issue(user.ID, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

// do fires a request at the router and returns the recorded response.
func do(t *testing.T, router http.Handler, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}
