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

const msgFormErrors = "Error loading form with validation errors."

// RegisterItemRoutes registers the routes for items with
// the RouterGroup that is passed.
func (co Controller) RegisterItemRoutes(r *gin.RouterGroup) {
	r.GET("/new", co.NewItem)
	r.POST("/new", co.CreateItem)

	// Item with ID
	{
		r.GET("/:id", co.GetItem)
		r.GET("/:id/edit", co.EditItem)
		r.POST("/:id/edit", co.UpdateItem)
		r.POST("/:id/delete", co.DeleteItem)
	}
}

// NewItem shows the form to create an item. The category_id query
// parameter preselects a category.
func (co Controller) NewItem(c *gin.Context) {
	values := ItemFormValues{CategoryID: c.Query("category_id")}
	co.renderItemForm(c, "Add New Item", "/items/new", values, nil, "Error loading item creation form.")
}

// CreateItem creates an item from the form.
func (co Controller) CreateItem(c *gin.Context) {
	var form ItemForm
	if err := c.ShouldBind(&form); err != nil {
		httperrors.New(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	submitted := submittedItem(0, form)

	input, errs := form.parse()
	if len(errs) > 0 {
		co.renderItemForm(c, "Add New Item", "/items/new", submitted, errs, msgFormErrors)
		return
	}

	item, err := co.Items.AddItem(c.Request.Context(), input)
	if msg, ok := itemConflict(err); ok {
		co.renderItemForm(c, "Add New Item", "/items/new", submitted, []string{msg}, msgFormErrors)
		return
	} else if err != nil {
		httperrors.Internal(c, err, "Error adding new item.")
		return
	}

	httputil.Flash(c, "Item created.")
	c.Redirect(http.StatusSeeOther, categoryPath(item.CategoryID))
}

// GetItem shows an item.
func (co Controller) GetItem(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidItemID)
	if err != nil {
		return
	}

	item, err := co.Items.GetItemByID(c.Request.Context(), id)
	if err != nil {
		httperrors.Handler(c, err, msgItemNotFound, "Error loading item details.")
		return
	}

	c.HTML(http.StatusOK, "itemDetail.html", ItemDetailView{
		Page: page(c, item.Name, nil),
		Item: ItemView{
			ID:            item.ID,
			Name:          item.Name,
			Description:   deref(item.Description),
			Price:         item.PriceFloat(),
			NumberInStock: item.NumberInStock,
			CategoryID:    item.CategoryID,
			CategoryName:  item.CategoryName,
		},
	})
}

// EditItem shows the form to edit an item.
func (co Controller) EditItem(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidItemID)
	if err != nil {
		return
	}

	item, err := co.Items.GetItemByID(c.Request.Context(), id)
	if err != nil {
		httperrors.Handler(c, err, msgItemNotFound, "Error loading item edit form.")
		return
	}

	co.renderItemForm(c, "Edit Item: "+item.Name, editItemPath(id), itemFormValues(item.Item), nil, "Error loading item edit form.")
}

// UpdateItem updates an item from the form.
func (co Controller) UpdateItem(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidItemID)
	if err != nil {
		return
	}

	var form ItemForm
	if err := c.ShouldBind(&form); err != nil {
		httperrors.New(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	submitted := submittedItem(id, form)
	title := "Edit Item: " + form.Name
	if form.Name == "" {
		title = "Edit Item: N/A"
	}

	input, errs := form.parse()
	if len(errs) > 0 {
		co.renderItemForm(c, title, editItemPath(id), submitted, errs, msgFormErrors)
		return
	}

	_, err = co.Items.UpdateItem(c.Request.Context(), id, input)
	if msg, ok := itemConflict(err); ok {
		co.renderItemForm(c, title, editItemPath(id), submitted, []string{msg}, msgFormErrors)
		return
	} else if err != nil {
		httperrors.Handler(c, err, "Item not found for update (after validation).", "Error updating item.")
		return
	}

	httputil.Flash(c, "Item updated.")
	c.Redirect(http.StatusSeeOther, itemPath(id))
}

// DeleteItem deletes an item and redirects to its category.
func (co Controller) DeleteItem(c *gin.Context) {
	id, err := httputil.ParseID(c, "id", msgInvalidItemID)
	if err != nil {
		return
	}

	// The category is only needed for the redirect
	redirect := "/"
	item, err := co.Items.GetItemByID(c.Request.Context(), id)
	if err == nil {
		redirect = categoryPath(item.CategoryID)
	} else if !errors.Is(err, models.ErrNotFound) {
		httperrors.Internal(c, err, "Error deleting item.")
		return
	}

	deleted, err := co.Items.DeleteItem(c.Request.Context(), id)
	if err != nil {
		httperrors.Internal(c, err, "Error deleting item.")
		return
	}

	if !deleted {
		httperrors.New(c, http.StatusNotFound, "Item not found or already deleted.")
		return
	}

	httputil.Flash(c, "Item deleted.")
	c.Redirect(http.StatusSeeOther, redirect)
}

// renderItemForm renders the item form. Loading the categories for the
// selection can fail, in which case a 500 with the failure message is sent.
func (co Controller) renderItemForm(c *gin.Context, title, action string, values ItemFormValues, errs []string, failure string) {
	categories, err := co.Categories.GetAllCategories(c.Request.Context())
	if err != nil {
		httperrors.Internal(c, err, failure)
		return
	}

	c.HTML(http.StatusOK, "itemForm.html", ItemFormView{
		Page:       page(c, title, errs),
		Action:     action,
		Item:       values,
		Categories: categoryOptions(categories, values.CategoryID),
	})
}

// itemConflict returns the message for errors the user can fix by
// changing the form.
func itemConflict(err error) (string, bool) {
	switch {
	case errors.Is(err, models.ErrUniqueViolation):
		return msgItemNameTaken, true
	case errors.Is(err, models.ErrForeignKeyViolation):
		return msgCategoryMissing, true
	}

	return "", false
}

func submittedItem(id uint, form ItemForm) ItemFormValues {
	return ItemFormValues{
		ID:            id,
		Name:          form.Name,
		Description:   form.Description,
		Price:         form.Price,
		NumberInStock: form.NumberInStock,
		CategoryID:    form.CategoryID,
	}
}

func itemPath(id uint) string {
	return fmt.Sprintf("/items/%d", id)
}

func editItemPath(id uint) string {
	return itemPath(id) + "/edit"
}
