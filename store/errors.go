package store

import "errors"

// Expected failure branches are sentinel errors so callers can map them to
// client responses with errors.Is instead of string matching.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidCheckoutInput = errors.New("phone, payment method, or delivery type missing")
	ErrInvalidLocation      = errors.New("invalid location data")
	ErrHasDependents        = errors.New("cannot delete: products still reference it")
	ErrBrandNotFound        = errors.New("brand not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrOrderNotFound        = errors.New("order not found")
)
