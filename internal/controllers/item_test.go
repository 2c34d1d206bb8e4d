package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stockroom-app/inventory/internal/models"
	"github.com/stockroom-app/inventory/internal/test"
	"github.com/stretchr/testify/assert"
)

func itemForm(name, price, stock string, categoryID uint) url.Values {
	return url.Values{
		"name":            {name},
		"description":     {"Creamy organic whole milk."},
		"price":           {price},
		"number_in_stock": {stock},
		"category_id":     {fmt.Sprint(categoryID)},
	}
}

func (suite *TestSuiteStandard) TestNewItem() {
	dairy := suite.createTestCategory("Dairy")
	suite.createTestCategory("Produce")

	r := suite.get(fmt.Sprintf("/items/new?category_id=%d", dairy.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "Add New Item")
	suite.Assert().Contains(r.Body.String(), "Produce")
	suite.Assert().Contains(r.Body.String(), fmt.Sprintf(`<option value="%d" selected>Dairy</option>`, dairy.ID))
}

func (suite *TestSuiteStandard) TestCreateItem() {
	dairy := suite.createTestCategory("Dairy")

	r := suite.post("/items/new", itemForm(" Organic Whole Milk ", "4.5", "10", dairy.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusSeeOther)
	suite.Assert().Equal(fmt.Sprintf("/categories/%d", dairy.ID), r.Header().Get("Location"))

	items, err := suite.co.Items.GetItemsByCategoryID(context.Background(), dairy.ID)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)

	item, err := suite.co.Items.GetItemByID(context.Background(), items[0].ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("Organic Whole Milk", item.Name)
	suite.Assert().Equal(4.5, item.PriceFloat())
	suite.Assert().Equal(10, item.NumberInStock)
	suite.Assert().Equal("Dairy", item.CategoryName)

	r = suite.get(r.Header().Get("Location"), map[string]string{"Cookie": test.Cookies(r)})
	suite.Assert().Contains(r.Body.String(), "Item created.")
	suite.Assert().Contains(r.Body.String(), "$4.50")
}

func (suite *TestSuiteStandard) TestCreateItemZeroStock() {
	dairy := suite.createTestCategory("Dairy")

	r := suite.post("/items/new", itemForm("Milk", "0.01", "0", dairy.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusSeeOther)
	suite.Assert().Equal(int64(1), suite.countItems())
}

func (suite *TestSuiteStandard) TestCreateItemValidation() {
	dairy := suite.createTestCategory("Dairy")

	tests := []struct {
		name     string
		form     url.Values
		messages []string
	}{
		{"Name missing", itemForm(" ", "4.5", "10", dairy.ID), []string{"Item name is required."}},
		{"Price zero", itemForm("Milk", "0", "10", dairy.ID), []string{"Price must be a positive number."}},
		{"Price negative", itemForm("Milk", "-1", "10", dairy.ID), []string{"Price must be a positive number."}},
		{"Price rounds to zero", itemForm("Milk", "0.001", "10", dairy.ID), []string{"Price must be a positive number."}},
		{"Price not a number", itemForm("Milk", "cheap", "10", dairy.ID), []string{"Price must be a positive number."}},
		{"Stock not a number", itemForm("Milk", "4.5", "abc", dairy.ID), []string{"Number in stock must be a non-negative integer."}},
		{"Stock negative", itemForm("Milk", "4.5", "-3", dairy.ID), []string{"Number in stock must be a non-negative integer."}},
		{"Stock fraction", itemForm("Milk", "4.5", "1.5", dairy.ID), []string{"Number in stock must be a non-negative integer."}},
		{"Category missing", url.Values{"name": {"Milk"}, "price": {"4.5"}, "number_in_stock": {"10"}}, []string{"A category must be selected."}},
		{"Everything missing", url.Values{}, []string{
			"Item name is required.",
			"Price must be a positive number.",
			"Number in stock must be a non-negative integer.",
			"A category must be selected.",
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.post("/items/new", tt.form)
			test.AssertHTTPStatus(t, r, http.StatusOK)
			assert.Contains(t, r.Body.String(), "Add New Item")
			for _, msg := range tt.messages {
				assert.Contains(t, r.Body.String(), msg)
			}
		})
	}

	suite.Assert().Equal(int64(0), suite.countItems())
}

func (suite *TestSuiteStandard) TestCreateItemEchoesInput() {
	dairy := suite.createTestCategory("Dairy")

	r := suite.post("/items/new", itemForm("Milk", "4.5", "abc", dairy.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), `value="Milk"`)
	suite.Assert().Contains(r.Body.String(), `value="4.5"`)
	suite.Assert().Contains(r.Body.String(), `value="abc"`)
	suite.Assert().Contains(r.Body.String(), fmt.Sprintf(`<option value="%d" selected>Dairy</option>`, dairy.ID))
}

func (suite *TestSuiteStandard) TestCreateItemConflicts() {
	dairy := suite.createTestCategory("Dairy")
	suite.createTestItem("Milk", "4.5", dairy.ID)

	r := suite.post("/items/new", itemForm("Milk", "1", "1", dairy.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "An item with this name already exists. Please choose a different name.")

	r = suite.post("/items/new", itemForm("Cheese", "1", "1", 4711))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "The selected category does not exist.")

	suite.Assert().Equal(int64(1), suite.countItems())
}

func (suite *TestSuiteStandard) TestGetItem() {
	dairy := suite.createTestCategory("Dairy & Cheese")
	item := suite.createTestItem("Cheddar", "7.99", dairy.ID)

	r := suite.get(fmt.Sprintf("/items/%d", item.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "<title>Cheddar</title>")
	suite.Assert().Contains(r.Body.String(), "$7.99")
	suite.Assert().Contains(r.Body.String(), "Dairy &amp; Cheese")
	suite.Assert().Contains(r.Body.String(), fmt.Sprintf(`href="/categories/%d"`, dairy.ID))
}

func (suite *TestSuiteStandard) TestItemInvalidID() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/items/abc"},
		{http.MethodGet, "/items/1e3"},
		{http.MethodGet, "/items/abc/edit"},
		{http.MethodPost, "/items/abc/edit"},
		{http.MethodPost, "/items/abc/delete"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := test.Request(t, suite.engine, tt.method, tt.path, url.Values{})
			test.AssertHTTPStatus(t, r, http.StatusBadRequest)
			assert.Equal(t, "Invalid item ID.", r.Body.String())
		})
	}
}

func (suite *TestSuiteStandard) TestItemInvalidIDBeforeDatabase() {
	// The ID is checked before the database is used
	suite.CloseDB()

	r := suite.get("/items/abc")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestItemNotFound() {
	dairy := suite.createTestCategory("Dairy")

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/items/4711", "Item not found."},
		{http.MethodGet, "/items/4711/edit", "Item not found."},
		{http.MethodPost, "/items/4711/edit", "Item not found for update (after validation)."},
		{http.MethodPost, "/items/4711/delete", "Item not found or already deleted."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := test.Request(t, suite.engine, tt.method, tt.path, itemForm("Milk", "1", "1", dairy.ID))
			test.AssertHTTPStatus(t, r, http.StatusNotFound)
			assert.Equal(t, tt.body, r.Body.String())
		})
	}
}

func (suite *TestSuiteStandard) TestEditItem() {
	dairy := suite.createTestCategory("Dairy")
	item := suite.createTestItem("Milk", "4.5", dairy.ID)

	r := suite.get(fmt.Sprintf("/items/%d/edit", item.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "Edit Item: Milk")
	suite.Assert().Contains(r.Body.String(), `value="4.50"`)
	suite.Assert().Contains(r.Body.String(), `value="5"`)
	suite.Assert().Contains(r.Body.String(), fmt.Sprintf(`<option value="%d" selected>Dairy</option>`, dairy.ID))
}

func (suite *TestSuiteStandard) TestUpdateItem() {
	dairy := suite.createTestCategory("Dairy")
	produce := suite.createTestCategory("Produce")
	item := suite.createTestItem("Milk", "4.5", dairy.ID)

	r := suite.post(fmt.Sprintf("/items/%d/edit", item.ID), itemForm("Gala Apples", "1.99", "100", produce.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusSeeOther)
	suite.Assert().Equal(fmt.Sprintf("/items/%d", item.ID), r.Header().Get("Location"))

	updated, err := suite.co.Items.GetItemByID(context.Background(), item.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("Gala Apples", updated.Name)
	suite.Assert().Equal(1.99, updated.PriceFloat())
	suite.Assert().Equal(100, updated.NumberInStock)
	suite.Assert().Equal("Produce", updated.CategoryName)

	r = suite.get(r.Header().Get("Location"), map[string]string{"Cookie": test.Cookies(r)})
	suite.Assert().Contains(r.Body.String(), "Item updated.")
}

func (suite *TestSuiteStandard) TestUpdateItemValidation() {
	dairy := suite.createTestCategory("Dairy")
	item := suite.createTestItem("Milk", "4.5", dairy.ID)

	r := suite.post(fmt.Sprintf("/items/%d/edit", item.ID), itemForm("", "-1", "10", dairy.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "Edit Item: N/A")
	suite.Assert().Contains(r.Body.String(), "Item name is required.")
	suite.Assert().Contains(r.Body.String(), "Price must be a positive number.")

	unchanged, err := suite.co.Items.GetItemByID(context.Background(), item.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("Milk", unchanged.Name)
	suite.Assert().Equal(4.5, unchanged.PriceFloat())
}

func (suite *TestSuiteStandard) TestUpdateItemConflicts() {
	dairy := suite.createTestCategory("Dairy")
	milk := suite.createTestItem("Milk", "4.5", dairy.ID)
	suite.createTestItem("Cheese", "7.99", dairy.ID)

	r := suite.post(fmt.Sprintf("/items/%d/edit", milk.ID), itemForm("Cheese", "1", "1", dairy.ID))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "Edit Item: Cheese")
	suite.Assert().Contains(r.Body.String(), "An item with this name already exists. Please choose a different name.")

	r = suite.post(fmt.Sprintf("/items/%d/edit", milk.ID), itemForm("Milk", "1", "1", 4711))
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "The selected category does not exist.")
}

func (suite *TestSuiteStandard) TestDeleteItem() {
	dairy := suite.createTestCategory("Dairy")
	item := suite.createTestItem("Milk", "4.5", dairy.ID)

	r := suite.post(fmt.Sprintf("/items/%d/delete", item.ID), nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusSeeOther)
	suite.Assert().Equal(fmt.Sprintf("/categories/%d", dairy.ID), r.Header().Get("Location"))

	_, err := suite.co.Items.GetItemByID(context.Background(), item.ID)
	suite.Assert().ErrorIs(err, models.ErrNotFound)

	r = suite.get(r.Header().Get("Location"), map[string]string{"Cookie": test.Cookies(r)})
	suite.Assert().Contains(r.Body.String(), "Item deleted.")
	suite.Assert().Contains(r.Body.String(), "This category has no items.")
}

func (suite *TestSuiteStandard) TestItemDatabaseClosed() {
	dairy := suite.createTestCategory("Dairy")
	item := suite.createTestItem("Milk", "4.5", dairy.ID)
	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		form   url.Values
		body   string
	}{
		{http.MethodGet, "/items/new", nil, "Error loading item creation form."},
		{http.MethodPost, "/items/new", itemForm("Cheese", "1", "1", dairy.ID), "Error adding new item."},
		{http.MethodPost, "/items/new", itemForm("", "1", "1", dairy.ID), "Error loading form with validation errors."},
		{http.MethodGet, fmt.Sprintf("/items/%d", item.ID), nil, "Error loading item details."},
		{http.MethodGet, fmt.Sprintf("/items/%d/edit", item.ID), nil, "Error loading item edit form."},
		{http.MethodPost, fmt.Sprintf("/items/%d/edit", item.ID), itemForm("Cheese", "1", "1", dairy.ID), "Error updating item."},
		{http.MethodPost, fmt.Sprintf("/items/%d/delete", item.ID), nil, "Error deleting item."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := test.Request(t, suite.engine, tt.method, tt.path, tt.form)
			test.AssertHTTPStatus(t, r, http.StatusInternalServerError)
			assert.Equal(t, tt.body, r.Body.String())
		})
	}
}
