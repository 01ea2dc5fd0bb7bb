package services

import "errors"

var (
	// ErrAuthRequired is returned when a mutating cart or wishlist
	// operation is attempted without a signed-in user. No remote call is
	// made in that case.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAlreadyInWishlist marks the benign duplicate-insert condition,
	// distinct from real write failures.
	ErrAlreadyInWishlist = errors.New("item already in wishlist")

	// ErrInvalidQuantity rejects quantities below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrProductNotFound is returned for product ids the catalog does not
	// know. The catalog lives in memory, so this check replaces the
	// foreign key the products table would otherwise provide.
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound is returned when a cart or wishlist row id does not
	// exist for the user.
	ErrItemNotFound = errors.New("item not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
