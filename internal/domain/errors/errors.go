package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrOrderTaken          = errors.New("order no longer available")
	ErrVehicleNotEligible  = errors.New("vehicle class not eligible for this distance")
	ErrPaymentNotVerified  = errors.New("payment reference not verified")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrAttachmentTooLarge  = errors.New("attachment exceeds size limit")
	ErrEmptyMessage        = errors.New("message has no content")
	ErrOrderNotCompleted   = errors.New("order is not completed")
)
