package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stockroom-app/inventory/internal/httputil"
	"github.com/stockroom-app/inventory/internal/models"
)

// Page contains the data every view renders in its layout.
type Page struct {
	Title   string
	Flashes []string
	Errors  []string
}

// page returns the layout data and consumes pending flash messages.
func page(c *gin.Context, title string, errs []string) Page {
	return Page{
		Title:   title,
		Flashes: httputil.Flashes(c),
		Errors:  errs,
	}
}

type CategoryView struct {
	ID          uint
	Name        string
	Description string
}

func newCategoryView(category models.Category) CategoryView {
	return CategoryView{
		ID:          category.ID,
		Name:        category.Name,
		Description: deref(category.Description),
	}
}

type ItemRow struct {
	ID            uint
	Name          string
	Price         float64
	NumberInStock int
}

type ItemView struct {
	ID            uint
	Name          string
	Description   string
	Price         float64
	NumberInStock int
	CategoryID    uint
	CategoryName  string
}

type IndexView struct {
	Page
	Categories []CategoryView
}

type CategoryFormView struct {
	Page
	Action   string
	Category CategoryView
}

type CategoryDetailView struct {
	Page
	Category CategoryView
	Items    []ItemRow
}

// ItemFormValues are the values of the item form. They are strings so
// that invalid input can be shown to the user again.
type ItemFormValues struct {
	ID            uint
	Name          string
	Description   string
	Price         string
	NumberInStock string
	CategoryID    string
}

type CategoryOption struct {
	ID       uint
	Name     string
	Selected bool
}

type ItemFormView struct {
	Page
	Action     string
	Item       ItemFormValues
	Categories []CategoryOption
}

type ItemDetailView struct {
	Page
	Item ItemView
}

func categoryOptions(categories []models.Category, selected string) []CategoryOption {
	options := make([]CategoryOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, CategoryOption{
			ID:       category.ID,
			Name:     category.Name,
			Selected: strconv.FormatUint(uint64(category.ID), 10) == selected,
		})
	}

	return options
}

func itemFormValues(item models.Item) ItemFormValues {
	return ItemFormValues{
		ID:            item.ID,
		Name:          item.Name,
		Description:   deref(item.Description),
		Price:         item.Price.StringFixed(2),
		NumberInStock: strconv.Itoa(item.NumberInStock),
		CategoryID:    strconv.FormatUint(uint64(item.CategoryID), 10),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
