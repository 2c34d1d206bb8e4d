package controllers

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stockroom-app/inventory/internal/models"
)

// CategoryForm is the body of the category create and edit forms.
type CategoryForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

// parse validates the form. Either the input or the list of messages
// for the user is returned.
func (f CategoryForm) parse() (models.CategoryInput, []string) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return models.CategoryInput{}, []string{msgCategoryNameRequired}
	}

	return models.CategoryInput{
		Name:        name,
		Description: description(f.Description),
	}, nil
}

// ItemForm is the body of the item create and edit forms.
type ItemForm struct {
	Name          string `form:"name"`
	Description   string `form:"description"`
	Price         string `form:"price"`
	NumberInStock string `form:"number_in_stock"`
	CategoryID    string `form:"category_id"`
}

// parse validates the form. All problems are reported at once.
func (f ItemForm) parse() (models.ItemInput, []string) {
	var errs []string

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, msgItemNameRequired)
	}

	// The schema stores two decimal places, a price that rounds to zero
	// is not positive
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || !price.Round(2).IsPositive() {
		errs = append(errs, msgPriceInvalid)
	}

	stock, err := strconv.Atoi(strings.TrimSpace(f.NumberInStock))
	if err != nil || stock < 0 {
		errs = append(errs, msgStockInvalid)
	}

	categoryID, err := strconv.ParseUint(strings.TrimSpace(f.CategoryID), 10, strconv.IntSize)
	if err != nil {
		errs = append(errs, msgCategoryRequired)
	}

	if len(errs) > 0 {
		return models.ItemInput{}, errs
	}

	return models.ItemInput{
		Name:          name,
		Description:   description(f.Description),
		Price:         price.Round(2),
		NumberInStock: stock,
		CategoryID:    uint(categoryID),
	}, nil
}

// DeleteCategoryForm is the body of the category delete form.
type DeleteCategoryForm struct {
	AdminPassword string `form:"adminPassword"`
}

// description trims the description. An empty description is stored as NULL.
func description(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}
