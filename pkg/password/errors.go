package password

import "errors"

var (
	// ErrNoCategoryEnabled is returned when no category is enabled with a positive count
	ErrNoCategoryEnabled = errors.New("at least one character category must be enabled")

	// ErrBelowMinimumLength is returned when the total length is below the minimum
	ErrBelowMinimumLength = errors.New("password length below minimum")

	// ErrAboveMaximumLength is returned when the total length exceeds the maximum
	ErrAboveMaximumLength = errors.New("password length above maximum")

	// ErrInvalidCategoryCount is returned when a per-category count is outside [0, MaxCategoryLength)
	ErrInvalidCategoryCount = errors.New("category count out of range")
)
