package entities

import (
	"fmt"
	"strings"
)

// CommunicationError is a network failure, timeout or unexpected non-2xx
// answer from a partner. The same step can always be retried as is.
type CommunicationError struct {
	Bank       string
	Operation  string
	StatusCode int
	Err        error
}

func (e *CommunicationError) Error() string {
	if e.StatusCode > 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s %s: partner answered HTTP %d: %v", e.Bank, e.Operation, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("%s %s: partner answered HTTP %d", e.Bank, e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Bank, e.Operation, e.Err)
}

func (e *CommunicationError) Unwrap() error { return e.Err }

// SimulationError is a partner rejection of the simulation inputs, such as
// an ineligible contract. Message is the partner's own text.
type SimulationError struct {
	Bank    string
	Code    string
	Message string
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("%s simulation rejected: %s", e.Bank, e.Message)
}

// DigitizationError is a partner rejection of the proposal payload.
// Retriable means the same condition can be resubmitted with corrected data.
type DigitizationError struct {
	Bank      string
	Message   string
	Fields    []FieldError
	Retriable bool
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *DigitizationError) Error() string {
	return fmt.Sprintf("%s digitization rejected: %s", e.Bank, e.Detail())
}

// Detail joins the partner message with its field errors, verbatim.
func (e *DigitizationError) Detail() string {
	parts := make([]string, 0, len(e.Fields)+1)
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	for _, f := range e.Fields {
		if f.Field != "" {
			parts = append(parts, f.Field+": "+f.Message)
		} else {
			parts = append(parts, f.Message)
		}
	}
	return strings.Join(parts, "; ")
}

// NotFoundError is returned when a proposal number or record id is unknown.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
