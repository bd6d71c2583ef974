// Package common defines shared constants and sentinel errors used across
// the inventario client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrAuthRequired means no valid credential token is available for an
	// operation that needs one. It is raised before any network call.
	ErrAuthRequired = errors.New("authentication required")

	// ErrInsufficientStock means a stock movement would drive a product's
	// quantity below zero. It is raised before any network call.
	ErrInsufficientStock = errors.New("insufficient stock")
)
