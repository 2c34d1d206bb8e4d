package models

import "github.com/shopspring/decimal"

// Item is a sellable unit with a price and a stock count. Every item
// belongs to exactly one category.
type Item struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description   *string         `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	NumberInStock int             `gorm:"not null"`
	CategoryID    uint            `gorm:"not null;index"`
	Category      Category        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Item) TableName() string {
	return "items"
}

// PriceFloat returns the price as float64. Prices are stored with two
// decimal places, so the conversion does not lose anything a caller cares about.
func (i Item) PriceFloat() float64 {
	return i.Price.InexactFloat64()
}

// ItemDetail is an item together with the name of its category.
type ItemDetail struct {
	Item
	CategoryName string
}

// ItemInput contains all user configurable fields of an item.
type ItemInput struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	NumberInStock int
	CategoryID    uint
}

// model returns the Item to persist for the input. The price is rounded
// to the two decimal places the schema stores.
func (i ItemInput) model() Item {
	return Item{
		Name:          i.Name,
		Description:   i.Description,
		Price:         i.Price.Round(2),
		NumberInStock: i.NumberInStock,
		CategoryID:    i.CategoryID,
	}
}
