package database

import (
	"github.com/google/uuid"
	"github.com/plateful-app/backend/models"
	"gorm.io/gorm"
)

type ShoppingCartRepo struct {
	db *gorm.DB
}

func NewShoppingCartRepo(db *gorm.DB) *ShoppingCartRepo {
	return &ShoppingCartRepo{db}
}

// ShoppingListRow is one aggregated line of a user's shopping list.
type ShoppingListRow struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

// Exists reports whether the recipe is already in the user's cart
func (r *ShoppingCartRepo) Exists(userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShoppingCartItem{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new cart row
func (r *ShoppingCartRepo) Add(item *models.ShoppingCartItem) error {
	return r.db.Create(item).Error
}

// Delete removes the (user, recipe) cart row and reports how many rows went away
func (r *ShoppingCartRepo) Delete(userID, recipeID uuid.UUID) (int64, error) {
	res := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCartItem{})
	return res.RowsAffected, res.Error
}

// RecipeIDSet returns, for one user and a batch of recipe ids, the
// subset sitting in the user's cart. One query per batch.
func (r *ShoppingCartRepo) RecipeIDSet(userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	inCart := make(map[uuid.UUID]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return inCart, nil
	}
	var ids []uuid.UUID
	err := r.db.Model(&models.ShoppingCartItem{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		inCart[id] = true
	}
	return inCart, nil
}

// AggregateIngredients sums ingredient amounts across every recipe in
// the user's cart. Grouping is by (name, measurement_unit), not by
// ingredient id: the unique constraint on ingredients makes the two
// equivalent today, but the grouping key is part of the contract.
func (r *ShoppingCartRepo) AggregateIngredients(userID uuid.UUID) ([]ShoppingListRow, error) {
	var rows []ShoppingListRow
	err := r.db.Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_items.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&rows).Error
	return rows, err
}
