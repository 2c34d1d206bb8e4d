package models

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository executes all queries for items.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{
		db: db,
	}
}

// GetItemsByCategoryID returns the items of a category ordered by name.
func (r *ItemRepository) GetItemsByCategoryID(ctx context.Context, categoryID uint) ([]Item, error) {
	items := make([]Item, 0)

	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		failed(err, "GetItemsByCategoryID").Uint("categoryID", categoryID).Send()
		return nil, err
	}

	return items, nil
}

// GetItemByID returns the item with the ID and the name of its category.
func (r *ItemRepository) GetItemByID(ctx context.Context, id uint) (ItemDetail, error) {
	var item Item

	err := r.db.WithContext(ctx).
		InnerJoins("Category").
		Where("items.id = ?", id).
		First(&item).Error
	if err != nil {
		failed(err, "GetItemByID").Uint("id", id).Send()
		return ItemDetail{}, err
	}

	return ItemDetail{
		Item:         item,
		CategoryName: item.Category.Name,
	}, nil
}

// AddItem creates an item and returns it with its generated ID.
func (r *ItemRepository) AddItem(ctx context.Context, input ItemInput) (Item, error) {
	item := input.model()

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&item).Error
	if err != nil {
		failed(err, "AddItem").Str("name", input.Name).Uint("categoryID", input.CategoryID).Send()
		return Item{}, err
	}

	return item, nil
}

// UpdateItem overwrites all user configurable fields of the item with the ID.
func (r *ItemRepository) UpdateItem(ctx context.Context, id uint, input ItemInput) (Item, error) {
	var item Item
	update := input.model()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Item{}).Where("id = ?", id).Updates(map[string]any{
			"name":            update.Name,
			"description":     update.Description,
			"price":           update.Price,
			"number_in_stock": update.NumberInStock,
			"category_id":     update.CategoryID,
		})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return notFound("item")
		}

		return tx.First(&item, id).Error
	})
	if err != nil {
		failed(err, "UpdateItem").Uint("id", id).Str("name", input.Name).Send()
		return Item{}, general(err)
	}

	return item, nil
}

// DeleteItem deletes the item with the ID and reports if it existed.
func (r *ItemRepository) DeleteItem(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Item{}, id)
	if result.Error != nil {
		failed(result.Error, "DeleteItem").Uint("id", id).Send()
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
