package models

import (
	"context"

	"gorm.io/gorm"
)

// CategoryRepository executes all queries for categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

// GetAllCategories returns all categories ordered by name.
func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	categories := make([]Category, 0)

	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		failed(err, "GetAllCategories").Send()
		return nil, err
	}

	return categories, nil
}

// GetCategoryByID returns the category with the ID. If there is none, the
// error matches ErrNotFound.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id uint) (Category, error) {
	var category Category

	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		failed(err, "GetCategoryByID").Uint("id", id).Send()
		return Category{}, err
	}

	return category, nil
}

// AddCategory creates a category and returns it with its generated ID.
func (r *CategoryRepository) AddCategory(ctx context.Context, input CategoryInput) (Category, error) {
	category := Category{
		Name:        input.Name,
		Description: input.Description,
	}

	err := r.db.WithContext(ctx).Create(&category).Error
	if err != nil {
		failed(err, "AddCategory").Str("name", input.Name).Send()
		return Category{}, err
	}

	return category, nil
}

// UpdateCategory overwrites name and description of the category with the ID.
func (r *CategoryRepository) UpdateCategory(ctx context.Context, id uint, input CategoryInput) (Category, error) {
	var category Category

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Category{}).Where("id = ?", id).Updates(map[string]any{
			"name":        input.Name,
			"description": input.Description,
		})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return notFound("category")
		}

		return tx.First(&category, id).Error
	})
	if err != nil {
		failed(err, "UpdateCategory").Uint("id", id).Str("name", input.Name).Send()
		return Category{}, general(err)
	}

	return category, nil
}

// DeleteCategory deletes the category with the ID and reports if it existed.
//
// As long as items belong to the category, it cannot be deleted and the
// error matches ErrReferentialIntegrityViolation.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Category{}, id)
	if result.Error != nil {
		failed(result.Error, "DeleteCategory").Uint("id", id).Send()
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
