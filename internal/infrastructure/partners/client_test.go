package partners

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inss_refin/internal/domain/entities"

	"github.com/tidwall/gjson"
)

func TestPartnerMessage(t *testing.T) {
	cases := map[string]string{
		`{"mensagem":"contrato não elegível"}`:                  "contrato não elegível",
		`{"error":{"code":"E1","message":"offer expired"}}`:      "offer expired",
		`{"erros":[{"campo":"cpf","mensagem":"inválido"}]}`:     "inválido",
		`{"error":"unauthorized"}`:                              "unauthorized",
		`{"foo":1}`:                                             "",
		`upstream timeout`:                                      "upstream timeout",
	}
	for body, want := range cases {
		if got := partnerMessage([]byte(body)); got != want {
			t.Fatalf("partnerMessage(%s) = %q, want %q", body, got, want)
		}
	}
}

func TestFieldErrors(t *testing.T) {
	body := []byte(`{"erros":[{"campo":"telefone","mensagem":"formato inválido"},{"mensagem":"cep não encontrado"},{"campo":"x"}]}`)
	got := fieldErrors(body, "errors", "erros")
	if len(got) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", got)
	}
	if got[0].Field != "telefone" || got[0].Message != "formato inválido" || got[1].Field != "" {
		t.Fatalf("unexpected field errors: %+v", got)
	}
}

func TestMoney(t *testing.T) {
	cases := map[string]float64{
		`1234.56`:      1234.56,
		`"1234.56"`:    1234.56,
		`"1.234,56"`:   1234.56,
		`"R$ 10,50"`:   10.5,
		`""`:           0,
		`"abc"`:        0,
	}
	for raw, want := range cases {
		if got := money(gjson.Parse(raw)); got != want {
			t.Fatalf("money(%s) = %v, want %v", raw, got, want)
		}
	}
	if got := amount(150); got != "150.00" {
		t.Fatalf("amount(150) = %q", got)
	}
}

func TestPartnerHTTP_CommunicationErrors(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		bank := NewBanrisulBank(Settings{BaseURL: srv.URL, HTTPClient: NewHTTPClient(50 * time.Millisecond)})
		_, err := bank.FetchFormalizationLink(context.Background(), "P1")
		var comm *entities.CommunicationError
		if !errors.As(err, &comm) || comm.Bank != BanrisulName {
			t.Fatalf("expected CommunicationError, got %v", err)
		}
	})

	t.Run("unexpected status keeps partner text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"maintenance window"}`))
		}))
		defer srv.Close()

		bank := NewC6Bank(Settings{BaseURL: srv.URL})
		_, err := bank.FetchProposalStatus(context.Background(), "P1")
		var comm *entities.CommunicationError
		if !errors.As(err, &comm) || comm.StatusCode != http.StatusServiceUnavailable || comm.Err.Error() != "maintenance window" {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "c6 proposal-status: partner answered HTTP 503: maintenance window"; err.Error() != want {
			t.Fatalf("expected %q, got %q", want, err.Error())
		}
	})
}
