package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/models"
	"gorm.io/gorm"
)

type RecipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) *RecipeRepo {
	return &RecipeRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *RecipeRepo) GetDB() *gorm.DB {
	return r.db
}

// RecipeFilter narrows a recipe page. Nil pointer fields are ignored.
type RecipeFilter struct {
	AuthorID    *uuid.UUID
	TagSlugs    []string
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
	Limit       int
	Offset      int
}

func (r *RecipeRepo) filtered(f RecipeFilter) *gorm.DB {
	q := r.db.Model(&models.Recipe{})
	if f.AuthorID != nil {
		q = q.Where("recipes.author_id = ?", *f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", f.TagSlugs)
	}
	if f.FavoritedBy != nil {
		q = q.Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", *f.FavoritedBy)
	}
	if f.InCartOf != nil {
		q = q.Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipes.id").
			Where("shopping_cart_items.user_id = ?", *f.InCartOf)
	}
	return q
}

// FindPage returns one page of recipes matching the filter, newest
// first, along with the total match count.
func (r *RecipeRepo) FindPage(f RecipeFilter) ([]*models.Recipe, int64, error) {
	var total int64
	if err := r.filtered(f).Distinct("recipes.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*models.Recipe
	q := r.filtered(f).
		Distinct("recipes.*").
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.pub_date DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	err := q.Find(&recipes).Error
	return recipes, total, err
}

// FindByID returns a recipe with author, tags and ingredient rows
// preloaded, or nil when no row exists
func (r *RecipeRepo) FindByID(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindByAuthor returns the author's recipes, newest first, truncated to
// limit when limit > 0
func (r *RecipeRepo) FindByAuthor(authorID uuid.UUID, limit int) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	q := r.db.Where("author_id = ?", authorID).Order("pub_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&recipes).Error
	return recipes, err
}

// CountByAuthor returns how many recipes the author has published
func (r *RecipeRepo) CountByAuthor(authorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// CreateWithRelations persists the recipe row, its tag links and its
// ingredient rows in one transaction. Either everything lands or
// nothing does.
func (r *RecipeRepo) CreateWithRelations(recipe *models.Recipe, tags []models.Tag, items []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Append(tags); err != nil {
			return err
		}
		for i := range items {
			items[i].RecipeID = recipe.ID
		}
		return tx.Create(&items).Error
	})
}

// UpdateWithRelations saves the recipe's scalar fields, re-assigns the
// tag set wholesale and fully replaces the ingredient rows, all in one
// transaction.
func (r *RecipeRepo) UpdateWithRelations(recipe *models.Recipe, tags []models.Tag, items []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients", "Author").Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Replace(tags); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RecipeID = recipe.ID
		}
		return tx.Create(&items).Error
	})
}

// Delete removes a recipe and, through its cascades, the join rows it
// owns. Returns how many recipe rows went away.
func (r *RecipeRepo) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Select("Tags", "Ingredients").Delete(&models.Recipe{ID: id})
	return res.RowsAffected, res.Error
}
