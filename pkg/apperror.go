package pkg

import "fmt"

// AppError is the error type handlers translate domain failures into.
//
// Code is a stable machine-readable identifier, Message is safe to return to
// clients, Err (optional) keeps the underlying cause for server-side logs.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the failure envelope every endpoint renders. Clients branch on
// the "success" field, so the shape must be identical across all failures.
type HTTPError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the client-facing envelope. The underlying cause is
// deliberately omitted; persistence details never leak past this point.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Success: false, Error: e.Message}
}
