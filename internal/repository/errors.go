package repository

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflicting resource state")
	ErrInsufficientStock = errors.New("insufficient stock")
)
