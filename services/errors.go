package services

import "errors"

// ErrorCode classifies service failures so controllers can map them onto
// HTTP statuses without inspecting messages.
type ErrorCode string

const (
	CodeValidation   ErrorCode = "validation"
	CodeNotFound     ErrorCode = "not_found"
	CodeConflict     ErrorCode = "conflict"
	CodeUnauthorized ErrorCode = "unauthorized"
	CodeUpstream     ErrorCode = "upstream"
	CodeInternal     ErrorCode = "internal"
)

// Error is a coded service error. Fields carries field-level detail for
// validation failures.
type Error struct {
	Code    ErrorCode
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// CodeOf extracts the error code, defaulting to internal for plain errors.
func CodeOf(err error) ErrorCode {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeInternal
}

// FieldsOf returns the field detail map when err carries one.
func FieldsOf(err error) map[string]string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Fields
	}
	return nil
}
