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

const BanrisulName = "banrisul"

// BanrisulBank talks to the Banrisul consignado API. Payloads are in Portuguese
// and amounts are plain JSON numbers.
type BanrisulBank struct {
	http partnerHTTP
}

var _ interfaces.IPartnerBank = (*BanrisulBank)(nil)

func NewBanrisulBank(s Settings) *BanrisulBank {
	return &BanrisulBank{http: newPartnerHTTP(BanrisulName, "X-Api-Key", s)}
}

func (b *BanrisulBank) Name() string { return BanrisulName }

type banrisulSimulationRequest struct {
	CPF                string   `json:"cpf"`
	Matricula          string   `json:"matricula"`
	Contratos          []string `json:"contratos"`
	QuantidadeParcelas int      `json:"quantidadeParcelas,omitempty"`
	ValorParcela       float64  `json:"valorParcela,omitempty"`
}

func (b *BanrisulBank) Simulate(ctx context.Context, req entities.SimulationRequest) ([]entities.CreditCondition, error) {
	const op = "simulate"
	body := banrisulSimulationRequest{
		CPF:       req.CPF,
		Matricula: req.EnrollmentID,
		Contratos: req.ContractIDs,
	}
	if req.Mode == entities.SimulationByTerm {
		body.QuantidadeParcelas = req.InstallmentQuantity
	} else {
		body.ValorParcela = req.TargetInstallment
	}

	resp, err := b.http.do(ctx, op, http.MethodPost, "/consignado/v1/refinanciamentos/simulacoes", body)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.ok():
	case resp.status == http.StatusUnprocessableEntity || resp.status == http.StatusBadRequest:
		return nil, &entities.SimulationError{
			Bank:    BanrisulName,
			Code:    gjson.GetBytes(resp.body, "codigo").String(),
			Message: partnerMessage(resp.body),
		}
	default:
		return nil, b.http.unexpected(op, resp)
	}

	var out []entities.CreditCondition
	gjson.GetBytes(resp.body, "condicoes").ForEach(func(_, c gjson.Result) bool {
		cond := entities.CreditCondition{
			CovenantCode:        c.Get("codigoConvenio").String(),
			CovenantDescription: c.Get("descricaoConvenio").String(),
			ProductCode:         c.Get("codigoProduto").String(),
			ProductDescription:  c.Get("descricaoProduto").String(),
			FinancedAmount:      money(c.Get("valorFinanciado")),
			ClientAmount:        money(c.Get("valorCliente")),
			InstallmentAmount:   money(c.Get("valorParcela")),
			InstallmentQuantity: int(c.Get("quantidadeParcelas").Int()),
			InterestRate:        c.Get("taxaJuros").Float(),
			TotalAmount:         money(c.Get("valorTotal")),
		}
		c.Get("despesas").ForEach(func(_, f gjson.Result) bool {
			cond.Fees = append(cond.Fees, entities.FeeItem{
				Code:        f.Get("codigo").String(),
				Description: f.Get("descricao").String(),
				Amount:      money(f.Get("valor")),
				Exempt:      f.Get("isento").Bool(),
			})
			return true
		})
		out = append(out, cond)
		return true
	})
	return out, nil
}

type banrisulProposalRequest struct {
	Matricula  string              `json:"matricula"`
	Contratos  []string            `json:"contratos"`
	Cliente    banrisulClient      `json:"cliente"`
	DadosBanco banrisulBankAccount `json:"dadosBancarios"`
	Condicao   banrisulCondition   `json:"condicao"`
	Despesas   []banrisulFee       `json:"despesas"`
}

type banrisulClient struct {
	CPF            string          `json:"cpf"`
	Nome           string          `json:"nome"`
	DataNascimento string          `json:"dataNascimento"`
	NomeMae        string          `json:"nomeMae"`
	Telefone       string          `json:"telefone"`
	Email          string          `json:"email,omitempty"`
	Endereco       banrisulAddress `json:"endereco"`
}

type banrisulAddress struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	CEP         string `json:"cep"`
}

type banrisulBankAccount struct {
	Banco     string `json:"banco"`
	Agencia   string `json:"agencia"`
	Conta     string `json:"conta"`
	Digito    string `json:"digito"`
	TipoConta string `json:"tipoConta"`
}

type banrisulCondition struct {
	CodigoConvenio     string  `json:"codigoConvenio"`
	CodigoProduto      string  `json:"codigoProduto"`
	ValorFinanciado    float64 `json:"valorFinanciado"`
	ValorCliente       float64 `json:"valorCliente"`
	ValorParcela       float64 `json:"valorParcela"`
	QuantidadeParcelas int     `json:"quantidadeParcelas"`
	TaxaJuros          float64 `json:"taxaJuros"`
}

type banrisulFee struct {
	Codigo string  `json:"codigo"`
	Valor  float64 `json:"valor"`
	Isento bool    `json:"isento"`
}

func (b *BanrisulBank) DigitizeProposal(ctx context.Context, req entities.DigitizationRequest) (string, error) {
	const op = "digitize"
	ben := req.Beneficiary
	accountType := "CC"
	if req.BankAccount.AccountType == "savings" {
		accountType = "CP"
	}
	body := banrisulProposalRequest{
		Matricula: req.EnrollmentID,
		Contratos: req.ContractIDs,
		Cliente: banrisulClient{
			CPF:            ben.CPF,
			Nome:           ben.Name,
			DataNascimento: ben.BirthDate,
			NomeMae:        ben.MotherName,
			Telefone:       ben.Phone,
			Email:          ben.Email,
			Endereco: banrisulAddress{
				Logradouro:  ben.Address.Street,
				Numero:      ben.Address.Number,
				Complemento: ben.Address.Complement,
				Bairro:      ben.Address.District,
				Cidade:      ben.Address.City,
				UF:          strings.ToUpper(ben.Address.State),
				CEP:         ben.Address.ZipCode,
			},
		},
		DadosBanco: banrisulBankAccount{
			Banco:     req.BankAccount.BankCode,
			Agencia:   req.BankAccount.Agency,
			Conta:     req.BankAccount.Account,
			Digito:    req.BankAccount.AccountDigit,
			TipoConta: accountType,
		},
		Condicao: banrisulCondition{
			CodigoConvenio:     req.Condition.CovenantCode,
			CodigoProduto:      req.Condition.ProductCode,
			ValorFinanciado:    req.Condition.FinancedAmount,
			ValorCliente:       req.Condition.ClientAmount,
			ValorParcela:       req.Condition.InstallmentAmount,
			QuantidadeParcelas: req.Condition.InstallmentQuantity,
			TaxaJuros:          req.Condition.InterestRate,
		},
	}
	for _, f := range req.Condition.Fees {
		body.Despesas = append(body.Despesas, banrisulFee{Codigo: f.Code, Valor: f.Amount, Isento: f.Exempt})
	}

	resp, err := b.http.do(ctx, op, http.MethodPost, "/consignado/v1/refinanciamentos/propostas", body)
	if err != nil {
		return "", err
	}
	switch {
	case resp.ok():
	case resp.status == http.StatusBadRequest || resp.status == http.StatusUnprocessableEntity:
		return "", &entities.DigitizationError{
			Bank:      BanrisulName,
			Message:   partnerMessage(resp.body),
			Fields:    fieldErrors(resp.body, "erros", "errors"),
			Retriable: gjson.GetBytes(resp.body, "permiteReenvio").Bool(),
		}
	default:
		return "", b.http.unexpected(op, resp)
	}

	number := gjson.GetBytes(resp.body, "numeroProposta").String()
	if number == "" {
		return "", b.http.unexpected(op, resp)
	}
	return number, nil
}

func (b *BanrisulBank) FetchFormalizationLink(ctx context.Context, proposalNumber string) (entities.FormalizationLink, error) {
	const op = "formalization-link"
	resp, err := b.http.do(ctx, op, http.MethodGet, "/consignado/v1/refinanciamentos/propostas/"+url.PathEscape(proposalNumber)+"/link-formalizacao", nil)
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
		URL:    gjson.GetBytes(resp.body, "link").String(),
		Active: strings.EqualFold(gjson.GetBytes(resp.body, "situacao").String(), "ATIVO"),
	}, nil
}

var banrisulStatuses = map[string]entities.DigitizationStatus{
	"PENDENTE":   entities.DigitizationStatusPending,
	"EM_ANALISE": entities.DigitizationStatusInAnalise,
	"APROVADA":   entities.DigitizationStatusApproved,
	"REPROVADA":  entities.DigitizationStatusRejected,
	"CANCELADA":  entities.DigitizationStatusCancelled,
}

func (b *BanrisulBank) FetchProposalStatus(ctx context.Context, proposalNumber string) (entities.DigitizationStatus, error) {
	const op = "proposal-status"
	resp, err := b.http.do(ctx, op, http.MethodGet, "/consignado/v1/refinanciamentos/propostas/"+url.PathEscape(proposalNumber), nil)
	if err != nil {
		return "", err
	}
	if !resp.ok() {
		return "", b.http.unexpected(op, resp)
	}
	return banrisulStatuses[strings.ToUpper(gjson.GetBytes(resp.body, "situacao").String())], nil
}
