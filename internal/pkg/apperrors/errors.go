package apperrors

import "errors"

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
)

// Export errors
var (
	ErrUnknownExportResource = errors.New("unknown export resource")
)
