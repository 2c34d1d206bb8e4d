package models

// Category is a named grouping of items.
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryInput contains all user configurable fields of a category.
//
// Name is expected to be trimmed and non-empty, Description is nil when
// no description was given.
type CategoryInput struct {
	Name        string
	Description *string
}
