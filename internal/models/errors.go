package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral  = errors.New("an error occurred on the server during your request")
	ErrNotFound = errors.New("there is no")

	ErrUniqueViolation               = errors.New("the name is already in use")
	ErrForeignKeyViolation           = errors.New("a referenced resource does not exist")
	ErrReferentialIntegrityViolation = errors.New("the resource is still referenced")
)

var (
	ErrCategoryNameNotUnique = fmt.Errorf("%w: a category with this name already exists", ErrUniqueViolation)
	ErrItemNameNotUnique     = fmt.Errorf("%w: an item with this name already exists", ErrUniqueViolation)
	ErrCategoryDoesNotExist  = fmt.Errorf("%w: there is no category with the specified ID", ErrForeignKeyViolation)
	ErrCategoryInUse         = fmt.Errorf("%w: the category still has items", ErrReferentialIntegrityViolation)
)
