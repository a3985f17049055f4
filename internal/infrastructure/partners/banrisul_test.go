package partners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inss_refin/internal/domain/entities"
)

func banrisulServer(t *testing.T, handler http.HandlerFunc) *BanrisulBank {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBanrisulBank(Settings{BaseURL: srv.URL + "/", APIKey: "secret"})
}

func TestBanrisulBank_Simulate(t *testing.T) {
	req := entities.SimulationRequest{CPF: "52998224725", EnrollmentID: "123", ContractIDs: []string{"c1", "c2"}, Mode: entities.SimulationByTerm, InstallmentQuantity: 84}

	t.Run("conditions in partner order", func(t *testing.T) {
		bank := banrisulServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/consignado/v1/refinanciamentos/simulacoes" || r.Header.Get("X-Api-Key") != "secret" {
				t.Errorf("unexpected request %s %s", r.URL.Path, r.Header.Get("X-Api-Key"))
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode: %v", err)
			}
			if body["quantidadeParcelas"] != float64(84) || body["matricula"] != "123" {
				t.Errorf("unexpected body: %v", body)
			}
			if _, ok := body["valorParcela"]; ok {
				t.Errorf("modes must be exclusive: %v", body)
			}
			_, _ = w.Write([]byte(`{"condicoes":[
				{"codigoProduto":"B","valorFinanciado":5000,"valorCliente":1200.5,"valorParcela":150,"quantidadeParcelas":84,"taxaJuros":1.66,"valorTotal":12600,
				 "despesas":[{"codigo":"PREST","descricao":"Seguro prestamista","valor":90,"isento":true}]},
				{"codigoProduto":"A","valorFinanciado":4000,"quantidadeParcelas":72}
			]}`))
		})

		got, err := bank.Simulate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ProductCode != "B" || got[1].ProductCode != "A" {
			t.Fatalf("unexpected conditions: %+v", got)
		}
		if got[0].ClientAmount != 1200.5 || len(got[0].Fees) != 1 || !got[0].Fees[0].Exempt {
			t.Fatalf("unexpected first condition: %+v", got[0])
		}
	})

	t.Run("ineligible contract surfaces partner message", func(t *testing.T) {
		bank := banrisulServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"codigo":"CT-09","mensagem":"Contrato c2 possui parcelas em atraso"}`))
		})

		_, err := bank.Simulate(context.Background(), req)
		var simErr *entities.SimulationError
		if !errors.As(err, &simErr) || simErr.Message != "Contrato c2 possui parcelas em atraso" || simErr.Code != "CT-09" {
			t.Fatalf("expected SimulationError, got %v", err)
		}
	})
}

func TestBanrisulBank_DigitizeProposal(t *testing.T) {
	req := entities.DigitizationRequest{
		EnrollmentID: "123",
		ContractIDs:  []string{"c1"},
		Beneficiary:  entities.Beneficiary{CPF: "52998224725", Name: "Maria", Address: entities.Address{State: "rs"}},
		BankAccount:  entities.BankAccount{BankCode: "041", AccountType: "savings"},
		Condition:    entities.CreditCondition{ProductCode: "B", Fees: []entities.FeeItem{{Code: "PREST", Exempt: false}}},
	}

	t.Run("success", func(t *testing.T) {
		bank := banrisulServer(t, func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Cliente struct {
					Endereco struct {
						UF string `json:"uf"`
					} `json:"endereco"`
				} `json:"cliente"`
				DadosBancarios struct {
					TipoConta string `json:"tipoConta"`
				} `json:"dadosBancarios"`
				Despesas []struct {
					Codigo string `json:"codigo"`
					Isento bool   `json:"isento"`
				} `json:"despesas"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode: %v", err)
			}
			if body.Cliente.Endereco.UF != "RS" || body.DadosBancarios.TipoConta != "CP" || len(body.Despesas) != 1 || body.Despesas[0].Isento {
				t.Errorf("unexpected body: %+v", body)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"numeroProposta":"BR123456"}`))
		})

		got, err := bank.DigitizeProposal(context.Background(), req)
		if err != nil || got != "BR123456" {
			t.Fatalf("unexpected result: %q, %v", got, err)
		}
	})

	t.Run("validation errors verbatim and retriable", func(t *testing.T) {
		bank := banrisulServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"mensagem":"Proposta inválida","permiteReenvio":true,"erros":[{"campo":"telefone","mensagem":"DDD inválido"}]}`))
		})

		_, err := bank.DigitizeProposal(context.Background(), req)
		var digErr *entities.DigitizationError
		if !errors.As(err, &digErr) {
			t.Fatalf("expected DigitizationError, got %v", err)
		}
		if !digErr.Retriable || digErr.Detail() != "Proposta inválida; telefone: DDD inválido" {
			t.Fatalf("unexpected error: %+v", digErr)
		}
	})

	t.Run("server error is a communication error", func(t *testing.T) {
		bank := banrisulServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := bank.DigitizeProposal(context.Background(), req)
		var comm *entities.CommunicationError
		if !errors.As(err, &comm) || comm.StatusCode != http.StatusBadGateway {
			t.Fatalf("expected CommunicationError, got %v", err)
		}
	})
}

func TestBanrisulBank_FormalizationLinkAndStatus(t *testing.T) {
	bank := banrisulServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/consignado/v1/refinanciamentos/propostas/P1/link-formalizacao":
			_, _ = w.Write([]byte(`{"link":"https://assina.banrisul/P1","situacao":"ATIVO"}`))
		case "/consignado/v1/refinanciamentos/propostas/P2/link-formalizacao":
			w.WriteHeader(http.StatusNotFound)
		case "/consignado/v1/refinanciamentos/propostas/P1":
			_, _ = w.Write([]byte(`{"situacao":"EM_ANALISE"}`))
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	})

	link, err := bank.FetchFormalizationLink(context.Background(), "P1")
	if err != nil || !link.Ready() || link.URL != "https://assina.banrisul/P1" {
		t.Fatalf("unexpected link: %+v, %v", link, err)
	}
	empty, err := bank.FetchFormalizationLink(context.Background(), "P2")
	if err != nil || empty.URL != "" {
		t.Fatalf("expected empty link, got %+v, %v", empty, err)
	}
	status, err := bank.FetchProposalStatus(context.Background(), "P1")
	if err != nil || status != entities.DigitizationStatusInAnalise {
		t.Fatalf("unexpected status: %q, %v", status, err)
	}
}
