package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/models"
	"gorm.io/gorm"
)

type IngredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) *IngredientRepo {
	return &IngredientRepo{db}
}

// FindAll returns ingredients ordered by name, optionally restricted to
// a case-insensitive name prefix
func (r *IngredientRepo) FindAll(prefix string) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	q := r.db.Order("name")
	if prefix != "" {
		q = q.Where("LOWER(name) LIKE ?", strings.ToLower(prefix)+"%")
	}
	err := q.Find(&ingredients).Error
	return ingredients, err
}

// FindByID returns an ingredient by id, or nil when no row exists
func (r *IngredientRepo) FindByID(id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.First(&ingredient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindByIDs returns the ingredients matching the given ids
func (r *IngredientRepo) FindByIDs(ids []uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// Add inserts a new ingredient into the database
func (r *IngredientRepo) Add(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}
