package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMissingColumn indicates that an input batch lacks a required column.
// This is a precondition failure: the run aborts before any storage
// interaction.
var ErrMissingColumn = errors.New("required column missing")
