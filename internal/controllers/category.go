package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockroom-app/inventory/internal/httperrors"
	"github.com/stockroom-app/inventory/internal/httputil"
	"github.com/stockroom-app/inventory/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.GET("/new", co.NewCategory)
	r.POST("/new", co.CreateCategory)

	// Category with ID
	{
		r.GET("/:id", co.GetCategory)
		r.GET("/:id/edit", co.EditCategory)
		r.POST("/:id/edit", co.UpdateCategory)
		r.POST("/:id/delete", co.DeleteCategory)
	}
}

// GetIndex lists all categories.
func (co Controller) GetIndex(c *gin.Context) {
	categories, err := co.Categories.GetAllCategories(c.Request.Context())
	if err != nil {
		httperrors.Internal(c, err, "Error loading the homepage.")
		return
	}

	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}

	c.HTML(http.StatusOK, "index.html", IndexView{
		Page:       page(c, "Inventory Application - Home", nil),
		Categories: views,
	})
}

// NewCategory shows the form to create a category.
func (co Controller) NewCategory(c *gin.Context) {
	co.renderCategoryForm(c, "Add New Category", "/categories/new", CategoryView{}, nil)
}

// CreateCategory creates a category from the form.
func (co Controller) CreateCategory(c *gin.Context) {
	var form CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		httperrors.New(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	submitted := CategoryView{Name: form.Name, Description: form.Description}

	input, errs := form.parse()
	if len(errs) > 0 {
		co.renderCategoryForm(c, "Add New Category", "/categories/new", submitted, errs)
		return
	}

	_, err := co.Categories.AddCategory(c.Request.Context(), input)
	if errors.Is(err, models.ErrUniqueViolation) {
		co.renderCategoryForm(c, "Add New Category", "/categories/new", submitted, []string{msgCategoryNameTaken})
		return
	} else if err != nil {
		httperrors.Internal(c, err, "Error adding new category.")
		return
	}

	httputil.Flash(c, "Category created.")
	c.Redirect(http.StatusSeeOther, "/")
}

// GetCategory shows a category with its items.
func (co Controller) GetCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidCategoryID)
	if err != nil {
		return
	}

	category, err := co.Categories.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		httperrors.Handler(c, err, msgCategoryNotFound, "Error loading category details.")
		return
	}

	co.renderCategoryDetail(c, category, nil, "Error loading category details.")
}

// EditCategory shows the form to edit a category.
func (co Controller) EditCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidCategoryID)
	if err != nil {
		return
	}

	category, err := co.Categories.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		httperrors.Handler(c, err, msgCategoryNotFound, "Error loading category edit form.")
		return
	}

	co.renderCategoryForm(c, "Edit Category: "+category.Name, editCategoryPath(id), newCategoryView(category), nil)
}

// UpdateCategory updates a category from the form.
func (co Controller) UpdateCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidCategoryID)
	if err != nil {
		return
	}

	var form CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		httperrors.New(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	submitted := CategoryView{ID: id, Name: form.Name, Description: form.Description}

	input, errs := form.parse()
	if len(errs) > 0 {
		// The title shows the stored name, not the submitted one
		category, err := co.Categories.GetCategoryByID(c.Request.Context(), id)
		if err != nil {
			httperrors.Handler(c, err, "Category not found for update.", "Error processing category update form.")
			return
		}

		co.renderCategoryForm(c, "Edit Category: "+category.Name, editCategoryPath(id), submitted, errs)
		return
	}

	_, err = co.Categories.UpdateCategory(c.Request.Context(), id, input)
	if errors.Is(err, models.ErrUniqueViolation) {
		category, err := co.Categories.GetCategoryByID(c.Request.Context(), id)
		if err != nil {
			httperrors.Handler(c, err, "Category not found for update.", "Error updating category.")
			return
		}

		co.renderCategoryForm(c, "Edit Category: "+category.Name, editCategoryPath(id), submitted, []string{msgCategoryNameTaken})
		return
	} else if err != nil {
		httperrors.Handler(c, err, "Category not found for update (after validation).", "Error updating category.")
		return
	}

	httputil.Flash(c, "Category updated.")
	c.Redirect(http.StatusSeeOther, categoryPath(id))
}

// DeleteCategory deletes a category. The admin password is required and
// the category must not have any items.
func (co Controller) DeleteCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidCategoryID)
	if err != nil {
		return
	}

	var form DeleteCategoryForm
	if err := c.ShouldBind(&form); err != nil {
		httperrors.New(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if !co.authorized(form.AdminPassword) {
		co.renderCategoryDetailByID(c, id, []string{msgAdminPassword})
		return
	}

	deleted, err := co.Categories.DeleteCategory(c.Request.Context(), id)
	if errors.Is(err, models.ErrReferentialIntegrityViolation) {
		co.renderCategoryDetailByID(c, id, []string{msgCategoryHasItems})
		return
	} else if err != nil {
		httperrors.Internal(c, err, "Error deleting category.")
		return
	}

	if !deleted {
		httperrors.New(c, http.StatusNotFound, "Category not found or already deleted.")
		return
	}

	httputil.Flash(c, "Category deleted.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (co Controller) renderCategoryForm(c *gin.Context, title, action string, category CategoryView, errs []string) {
	c.HTML(http.StatusOK, "categoryForm.html", CategoryFormView{
		Page:     page(c, title, errs),
		Action:   action,
		Category: category,
	})
}

// renderCategoryDetailByID renders the detail view of a category with the
// messages after a failed deletion.
func (co Controller) renderCategoryDetailByID(c *gin.Context, id uint, errs []string) {
	category, err := co.Categories.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		httperrors.Handler(c, err, msgCategoryNotFound, "Error processing category deletion.")
		return
	}

	co.renderCategoryDetail(c, category, errs, "Error processing category deletion.")
}

func (co Controller) renderCategoryDetail(c *gin.Context, category models.Category, errs []string, failure string) {
	items, err := co.Items.GetItemsByCategoryID(c.Request.Context(), category.ID)
	if err != nil {
		httperrors.Internal(c, err, failure)
		return
	}

	rows := make([]ItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ItemRow{
			ID:            item.ID,
			Name:          item.Name,
			Price:         item.PriceFloat(),
			NumberInStock: item.NumberInStock,
		})
	}

	c.HTML(http.StatusOK, "categoryDetail.html", CategoryDetailView{
		Page:     page(c, category.Name, errs),
		Category: newCategoryView(category),
		Items:    rows,
	})
}

func categoryPath(id uint) string {
	return fmt.Sprintf("/categories/%d", id)
}

func editCategoryPath(id uint) string {
	return categoryPath(id) + "/edit"
}
