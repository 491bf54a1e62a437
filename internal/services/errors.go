package services

import "errors"

var (
	// ErrNotFound covers both absent entities and entities not owned by the
	// requesting user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock rejects adding a product that is not in stock. Distinct
	// from ErrNotFound so the client can show a business-rule message.
	ErrOutOfStock = errors.New("product is out of stock")

	ErrInvalidInput = errors.New("invalid input")
)
