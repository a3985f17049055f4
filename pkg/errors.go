package pkg

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AppError is the error shape every handler answers with. Title is short,
// Detail says what exactly went wrong.
type AppError struct {
	Code       string
	Title      string
	Detail     string
	Err        error
	HTTPStatus int
	Retriable  bool
	Fields     []FieldError
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError is the JSON body of an error response.
type HTTPError struct {
	Code      string       `json:"code"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	Retriable bool         `json:"retriable"`
	Fields    []FieldError `json:"fields,omitempty"`
}

func NewDomainError(code, title string, err error, status int) *AppError {
	return &AppError{Code: code, Title: title, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, title string, status int) *AppError {
	return &AppError{Code: code, Title: title, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	if e.Detail != "" {
		return e.Code + ": " + e.Detail
	}
	return e.Code + ": " + e.Title
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail returns a copy carrying a specific description.
func (e *AppError) WithDetail(detail string) *AppError {
	out := *e
	out.Detail = detail
	return &out
}

func (e *AppError) WithRetriable(retriable bool) *AppError {
	out := *e
	out.Retriable = retriable
	return &out
}

func (e *AppError) WithFields(fields ...FieldError) *AppError {
	out := *e
	out.Fields = append([]FieldError(nil), fields...)
	return &out
}

// ToHTTPError builds the response body. Internal causes are never exposed.
func (e *AppError) ToHTTPError() HTTPError {
	msg := e.Detail
	if msg == "" {
		msg = e.Title
	}
	return HTTPError{
		Code:      e.Code,
		Title:     e.Title,
		Message:   msg,
		Retriable: e.Retriable,
		Fields:    e.Fields,
	}
}

// FromValidationError turns validator errors into a 400 with one entry per
// failing field. It returns nil when err is not a validation error.
func FromValidationError(err error) *AppError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	fields := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, FieldError{Field: fieldPath(fe), Message: problem(fe)})
	}
	return &AppError{
		Code:       "INVALID_REQUEST",
		Title:      "Invalid request",
		Detail:     "One or more fields are invalid",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// fieldPath drops the root struct name: "Beneficiary.Address.ZipCode" becomes
// "beneficiary.address.zipcode".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		ns = fe.Field()
	}
	return strings.ToLower(ns)
}

func problem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short, min: " + fe.Param()
	case "max":
		return "Value is too long, max: " + fe.Param()
	case "len":
		return "Value must have length " + fe.Param()
	case "numeric":
		return "Value must contain only digits"
	case "email":
		return "Value must be a valid email address"
	case "cpf":
		return "Value must be a valid CPF"
	case "datetime":
		return "Value must be a date formatted as " + fe.Param()
	case "oneof":
		return "Value must be one of: " + fe.Param()
	default:
		return "Invalid value provided"
	}
}
