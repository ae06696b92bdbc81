package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Date and growth-range errors
	ErrMsgInvalidDate        = "invalid date"
	ErrMsgInvalidGrowthRange = "invalid growth range"

	// Seed errors
	ErrMsgSeedNotFound    = "seed not found"
	ErrMsgInvalidCategory = "invalid category"

	// Planting errors
	ErrMsgPlantingNotFound = "planting not found"

	// Wiki errors
	ErrMsgWikiEntryNotFound = "wiki entry not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Date and growth-range errors
	ErrInvalidDate        = errors.New(ErrMsgInvalidDate)
	ErrInvalidGrowthRange = errors.New(ErrMsgInvalidGrowthRange)

	// Seed errors
	ErrSeedNotFound    = errors.New(ErrMsgSeedNotFound)
	ErrInvalidCategory = errors.New(ErrMsgInvalidCategory)

	// Planting errors
	ErrPlantingNotFound = errors.New(ErrMsgPlantingNotFound)

	// Wiki errors
	ErrWikiEntryNotFound = errors.New(ErrMsgWikiEntryNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
