package database

import (
	"github.com/google/uuid"
	"github.com/plateful-app/backend/models"
	"gorm.io/gorm"
)

type FavoriteRepo struct {
	db *gorm.DB
}

func NewFavoriteRepo(db *gorm.DB) *FavoriteRepo {
	return &FavoriteRepo{db}
}

// Exists reports whether the (user, recipe) pair is already favorited
func (r *FavoriteRepo) Exists(userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new favorite row
func (r *FavoriteRepo) Add(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// Delete removes the (user, recipe) favorite and reports how many rows went away
func (r *FavoriteRepo) Delete(userID, recipeID uuid.UUID) (int64, error) {
	res := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	return res.RowsAffected, res.Error
}

// RecipeIDSet returns, for one user and a batch of recipe ids, the
// subset the user has favorited. One query per batch so list responses
// never run per-row existence checks.
func (r *FavoriteRepo) RecipeIDSet(userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	favorited := make(map[uuid.UUID]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return favorited, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		favorited[id] = true
	}
	return favorited, nil
}
