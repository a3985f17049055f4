package partners

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/tidwall/gjson"
)

const SafraName = "safra"

// SafraBank talks to the Safra consignado API. Amounts come back formatted
// the Brazilian way ("1.234,56") and the proposal id is numeric.
type SafraBank struct {
	http partnerHTTP
}

var _ interfaces.IPartnerBank = (*SafraBank)(nil)

func NewSafraBank(s Settings) *SafraBank {
	return &SafraBank{http: newPartnerHTTP(SafraName, "Ocp-Apim-Subscription-Key", s)}
}

func (b *SafraBank) Name() string { return SafraName }

type safraSimulationRequest struct {
	CPF             string   `json:"cpf"`
	NumeroBeneficio string   `json:"numeroBeneficio"`
	Contratos       []string `json:"contratos"`
	Prazo           int      `json:"prazo,omitempty"`
	ValorParcela    string   `json:"valorParcela,omitempty"`
}

func (b *SafraBank) Simulate(ctx context.Context, req entities.SimulationRequest) ([]entities.CreditCondition, error) {
	const op = "simulate"
	body := safraSimulationRequest{
		CPF:             req.CPF,
		NumeroBeneficio: req.EnrollmentID,
		Contratos:       req.ContractIDs,
	}
	if req.Mode == entities.SimulationByTerm {
		body.Prazo = req.InstallmentQuantity
	} else {
		body.ValorParcela = amount(req.TargetInstallment)
	}

	resp, err := b.http.do(ctx, op, http.MethodPost, "/api/v1/refin/simulacao", body)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusBadRequest || resp.status == http.StatusUnprocessableEntity {
		return nil, &entities.SimulationError{
			Bank:    SafraName,
			Code:    gjson.GetBytes(resp.body, "errors.0.code").String(),
			Message: partnerMessage(resp.body),
		}
	}
	if !resp.ok() {
		return nil, b.http.unexpected(op, resp)
	}

	var out []entities.CreditCondition
	gjson.GetBytes(resp.body, "simulacoes").ForEach(func(_, s gjson.Result) bool {
		cond := entities.CreditCondition{
			CovenantCode:        s.Get("convenio.id").String(),
			CovenantDescription: s.Get("convenio.nome").String(),
			ProductCode:         s.Get("produto.id").String(),
			ProductDescription:  s.Get("produto.nome").String(),
			FinancedAmount:      money(s.Get("valorFinanciado")),
			ClientAmount:        money(s.Get("valorLiquido")),
			InstallmentAmount:   money(s.Get("valorParcela")),
			InstallmentQuantity: int(s.Get("prazo").Int()),
			InterestRate:        money(s.Get("taxaMensal")),
			TotalAmount:         money(s.Get("valorTotal")),
		}
		s.Get("seguros").ForEach(func(_, f gjson.Result) bool {
			cond.Fees = append(cond.Fees, entities.FeeItem{
				Code:        f.Get("id").String(),
				Description: f.Get("nome").String(),
				Amount:      money(f.Get("valor")),
				Exempt:      !f.Get("contratado").Bool(),
			})
			return true
		})
		out = append(out, cond)
		return true
	})
	return out, nil
}

func (b *SafraBank) DigitizeProposal(ctx context.Context, req entities.DigitizationRequest) (string, error) {
	const op = "digitize"
	ben := req.Beneficiary
	seguros := make([]map[string]any, 0, len(req.Condition.Fees))
	for _, f := range req.Condition.Fees {
		seguros = append(seguros, map[string]any{"id": f.Code, "contratado": !f.Exempt})
	}
	body := map[string]any{
		"numeroBeneficio": req.EnrollmentID,
		"contratos":       req.ContractIDs,
		"cliente": map[string]any{
			"cpf":            ben.CPF,
			"nome":           ben.Name,
			"dataNascimento": ben.BirthDate,
			"nomeMae":        ben.MotherName,
			"celular":        ben.Phone,
			"email":          ben.Email,
			"endereco": map[string]any{
				"logradouro":  ben.Address.Street,
				"numero":      ben.Address.Number,
				"complemento": ben.Address.Complement,
				"bairro":      ben.Address.District,
				"cidade":      ben.Address.City,
				"uf":          strings.ToUpper(ben.Address.State),
				"cep":         ben.Address.ZipCode,
			},
		},
		"contaCredito": map[string]any{
			"banco":    req.BankAccount.BankCode,
			"agencia":  req.BankAccount.Agency,
			"conta":    req.BankAccount.Account + "-" + req.BankAccount.AccountDigit,
			"poupanca": req.BankAccount.AccountType == "savings",
		},
		"simulacao": map[string]any{
			"convenio":        req.Condition.CovenantCode,
			"produto":         req.Condition.ProductCode,
			"valorFinanciado": amount(req.Condition.FinancedAmount),
			"valorParcela":    amount(req.Condition.InstallmentAmount),
			"prazo":           req.Condition.InstallmentQuantity,
			"seguros":         seguros,
		},
	}

	resp, err := b.http.do(ctx, op, http.MethodPost, "/api/v1/refin/proposta", body)
	if err != nil {
		return "", err
	}
	switch {
	case resp.ok():
	case resp.status == http.StatusBadRequest || resp.status == http.StatusUnprocessableEntity:
		return "", &entities.DigitizationError{
			Bank:      SafraName,
			Message:   safraTitle(resp.body),
			Fields:    fieldErrors(resp.body, "errors", "erros"),
			Retriable: gjson.GetBytes(resp.body, "retry").Bool(),
		}
	default:
		return "", b.http.unexpected(op, resp)
	}

	id := gjson.GetBytes(resp.body, "idProposta")
	if !id.Exists() || id.String() == "" {
		return "", b.http.unexpected(op, resp)
	}
	return id.String(), nil
}

func (b *SafraBank) FetchFormalizationLink(ctx context.Context, proposalNumber string) (entities.FormalizationLink, error) {
	const op = "formalization-link"
	resp, err := b.http.do(ctx, op, http.MethodGet, "/api/v1/refin/proposta/"+url.PathEscape(proposalNumber)+"/formalizacao", nil)
	if err != nil {
		return entities.FormalizationLink{}, err
	}
	if resp.status == http.StatusNotFound || resp.status == http.StatusNoContent {
		return entities.FormalizationLink{}, nil
	}
	if !resp.ok() {
		return entities.FormalizationLink{}, b.http.unexpected(op, resp)
	}
	return entities.FormalizationLink{
		URL:    gjson.GetBytes(resp.body, "urlFormalizacao").String(),
		Active: gjson.GetBytes(resp.body, "ativo").Bool(),
	}, nil
}

var safraStatuses = map[string]entities.DigitizationStatus{
	"AGUARDANDO": entities.DigitizationStatusPending,
	"EM_ANALISE": entities.DigitizationStatusInAnalise,
	"EM ANALISE": entities.DigitizationStatusInAnalise,
	"APROVADA":   entities.DigitizationStatusApproved,
	"INTEGRADA":  entities.DigitizationStatusApproved,
	"REPROVADA":  entities.DigitizationStatusRejected,
	"CANCELADA":  entities.DigitizationStatusCancelled,
}

func (b *SafraBank) FetchProposalStatus(ctx context.Context, proposalNumber string) (entities.DigitizationStatus, error) {
	const op = "proposal-status"
	resp, err := b.http.do(ctx, op, http.MethodGet, "/api/v1/refin/proposta/"+url.PathEscape(proposalNumber)+"/status", nil)
	if err != nil {
		return "", err
	}
	if !resp.ok() {
		return "", b.http.unexpected(op, resp)
	}
	return safraStatuses[strings.ToUpper(gjson.GetBytes(resp.body, "status").String())], nil
}

func safraTitle(body []byte) string {
	if t := gjson.GetBytes(body, "title").String(); t != "" {
		return t
	}
	return partnerMessage(body)
}
