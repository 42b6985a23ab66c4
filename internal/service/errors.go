package service

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrSlugTaken          = errors.New("category already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrNoItems            = errors.New("no items in order")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
	ErrProductUnavailable = errors.New("product not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrTotalMismatch      = errors.New("total amount does not match order items")
	ErrInvalidStatus      = errors.New("unknown status value")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrInvalidPayment     = errors.New("unknown payment method")
)
