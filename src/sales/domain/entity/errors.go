package entity

import "errors"

var (
	ErrSaleNotFound     = errors.New("sale not found")
	ErrSaleItemNotFound = errors.New("sale item not found")
	ErrSaleNumberExists = errors.New("sale number already exists")

	ErrSaleMustHaveItems  = errors.New("sale must contain at least one item")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
	ErrQuantityAboveLimit = errors.New("cannot sell more than 20 units of the same product")
	ErrInvalidPrice       = errors.New("unit price must be greater than or equal to 0")
)
