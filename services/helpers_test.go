package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/config"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/models"
	"github.com/plateful-app/backend/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testImage = "data:image/png;base64,ZmFrZXBuZw=="

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

func testImageStore(t *testing.T) storage.ImageStore {
	t.Helper()
	return storage.NewLocalStore(t.TempDir(), "http://localhost:8080/media")
}

func seedUser(t *testing.T, db database.Database, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "irrelevant",
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
