package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
)

type account struct {
	Holder struct {
		Name string `validate:"required"`
	}
	Agency string `validate:"required,numeric,max=5"`
}

func TestAppError_ToHTTPError(t *testing.T) {
	base := NewDomainErrorSimple("PARTNER_UNAVAILABLE", "Partner unavailable", http.StatusBadGateway)

	t.Run("title doubles as message", func(t *testing.T) {
		got := base.ToHTTPError()
		if got.Message != "Partner unavailable" || got.Retriable {
			t.Fatalf("unexpected body: %+v", got)
		}
	})

	t.Run("builders copy", func(t *testing.T) {
		e := base.WithDetail("banrisul did not answer").WithRetriable(true).WithFields(FieldError{Field: "cpf", Message: "bad"})
		got := e.ToHTTPError()
		if got.Message != "banrisul did not answer" || !got.Retriable || len(got.Fields) != 1 {
			t.Fatalf("unexpected body: %+v", got)
		}
		if base.Detail != "" || base.Retriable || base.Fields != nil {
			t.Fatalf("base error was mutated: %+v", base)
		}
	})

	t.Run("internal cause is hidden", func(t *testing.T) {
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("dynamo: throttled"), http.StatusInternalServerError)
		if got := e.ToHTTPError(); got.Message != "An internal error occurred" {
			t.Fatalf("cause leaked: %+v", got)
		}
		if !errors.Is(e, e.Err) {
			t.Fatalf("expected Unwrap to expose the cause")
		}
	})
}

func TestFromValidationError(t *testing.T) {
	err := validator.New().Struct(account{Agency: "12a"})

	got := FromValidationError(err)
	if got == nil || got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 app error, got %+v", got)
	}
	want := map[string]string{
		"holder.name": "This field is required",
		"agency":      "Value must contain only digits",
	}
	if len(got.Fields) != len(want) {
		t.Fatalf("unexpected fields: %+v", got.Fields)
	}
	for _, f := range got.Fields {
		if want[f.Field] != f.Message {
			t.Fatalf("unexpected field error %+v", f)
		}
	}

	if FromValidationError(errors.New("boom")) != nil {
		t.Fatalf("expected nil for non-validation errors")
	}
}
