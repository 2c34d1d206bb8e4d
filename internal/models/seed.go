package models

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reset drops all tables and recreates the schema.
func Reset(db *gorm.DB) error {
	// Items reference categories and need to be dropped first
	err := db.Migrator().DropTable(&Item{}, &Category{})
	if err != nil {
		return fmt.Errorf("error dropping tables: %w", err)
	}

	return Migrate(db)
}

type seedItem struct {
	name          string
	description   string
	price         string
	numberInStock int
	category      string
}

var seedCategories = []struct {
	key         string
	name        string
	description string
}{
	{"dairy", "Dairy & Cheese", "Milk, yogurt, cheese, and more."},
	{"produce", "Produce", "Fresh fruits and vegetables."},
	{"bakery", "Baked Goods", "Freshly baked bread, pastries, and cakes."},
	{"beverages", "Beverages", "Drinks like juice, soda, water."},
}

var seedItems = []seedItem{
	{"Organic Whole Milk", "Creamy organic whole milk.", "4.50", 50, "dairy"},
	{"Cheddar Cheese Block", "Sharp aged cheddar cheese.", "7.99", 30, "dairy"},
	{"Gala Apples", "Sweet and crisp apples.", "1.99", 100, "produce"},
	{"Artisan Sourdough Bread", "Freshly baked sourdough loaf.", "5.25", 20, "bakery"},
	{"Orange Juice (No Pulp)", "100% pure squeezed orange juice.", "3.75", 40, "beverages"},
}

// Seed inserts the sample categories and items in one transaction.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := NewCategoryRepository(tx)
		items := NewItemRepository(tx)

		ids := make(map[string]uint, len(seedCategories))
		for _, c := range seedCategories {
			description := c.description
			category, err := categories.AddCategory(ctx, CategoryInput{Name: c.name, Description: &description})
			if err != nil {
				return fmt.Errorf("error seeding category %q: %w", c.name, err)
			}
			ids[c.key] = category.ID
		}

		for _, i := range seedItems {
			description := i.description
			_, err := items.AddItem(ctx, ItemInput{
				Name:          i.name,
				Description:   &description,
				Price:         decimal.RequireFromString(i.price),
				NumberInStock: i.numberInStock,
				CategoryID:    ids[i.category],
			})
			if err != nil {
				return fmt.Errorf("error seeding item %q: %w", i.name, err)
			}
		}

		log.Info().Int("categories", len(seedCategories)).Int("items", len(seedItems)).Msg("Sample data inserted")
		return nil
	})
}
