package controllers

// Messages shown in re-rendered forms and views
const (
	msgCategoryNameRequired = "Category name is required."
	msgItemNameRequired     = "Item name is required."
	msgPriceInvalid         = "Price must be a positive number."
	msgStockInvalid         = "Number in stock must be a non-negative integer."
	msgCategoryRequired     = "A category must be selected."
	msgCategoryMissing      = "The selected category does not exist."
	msgCategoryNameTaken    = "A category with this name already exists. Please choose a different name."
	msgItemNameTaken        = "An item with this name already exists. Please choose a different name."
	msgAdminPassword        = "Incorrect admin password."
	msgCategoryHasItems     = "Cannot delete category: Please remove all associated items first."
)

// Plain text responses
const (
	msgInvalidBody       = "The body of your request contains invalid or un-parseable data. Please check and try again."
	msgInvalidCategoryID = "Invalid category ID."
	msgInvalidItemID     = "Invalid item ID."
	msgCategoryNotFound  = "Category not found."
	msgItemNotFound      = "Item not found."
)
