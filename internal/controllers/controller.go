package controllers

import (
	"context"
	"crypto/subtle"

	"github.com/stockroom-app/inventory/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository is the storage used for categories.
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (models.Category, error)
	AddCategory(ctx context.Context, input models.CategoryInput) (models.Category, error)
	UpdateCategory(ctx context.Context, id uint, input models.CategoryInput) (models.Category, error)
	DeleteCategory(ctx context.Context, id uint) (bool, error)
}

// ItemRepository is the storage used for items.
type ItemRepository interface {
	GetItemsByCategoryID(ctx context.Context, categoryID uint) ([]models.Item, error)
	GetItemByID(ctx context.Context, id uint) (models.ItemDetail, error)
	AddItem(ctx context.Context, input models.ItemInput) (models.Item, error)
	UpdateItem(ctx context.Context, id uint, input models.ItemInput) (models.Item, error)
	DeleteItem(ctx context.Context, id uint) (bool, error)
}

type Controller struct {
	DB            *gorm.DB
	Categories    CategoryRepository
	Items         ItemRepository
	AdminPassword string
	Version       string
}

// New returns a Controller using the repositories for the database.
func New(db *gorm.DB, adminPassword, version string) Controller {
	return Controller{
		DB:            db,
		Categories:    models.NewCategoryRepository(db),
		Items:         models.NewItemRepository(db),
		AdminPassword: adminPassword,
		Version:       version,
	}
}

// authorized reports if the password matches the admin password. Without
// an admin password, nothing is authorized.
func (co Controller) authorized(password string) bool {
	if co.AdminPassword == "" || password == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(co.AdminPassword)) == 1
}
