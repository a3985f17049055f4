package multicorban

import (
	"strings"
	"time"

	"inss_refin/internal/domain/entities"
)

type lookupResponse struct {
	Beneficiario beneficiaryResponse `json:"beneficiario"`
	Beneficios   []benefitResponse   `json:"beneficios"`
}

type beneficiaryResponse struct {
	CPF            string          `json:"cpf"`
	Nome           string          `json:"nome"`
	DataNascimento string          `json:"data_nascimento"`
	NomeMae        string          `json:"nome_mae"`
	Telefone       string          `json:"telefone"`
	Email          string          `json:"email"`
	Endereco       addressResponse `json:"endereco"`
}

type addressResponse struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	CEP         string `json:"cep"`
}

type benefitResponse struct {
	Matricula string `json:"matricula"`
	Especie   struct {
		Codigo    string `json:"codigo"`
		Descricao string `json:"descricao"`
	} `json:"especie"`
	Contratos []contractResponse `json:"contratos"`
}

type contractResponse struct {
	Contrato          string  `json:"contrato"`
	BancoCodigo       string  `json:"banco_codigo"`
	BancoNome         string  `json:"banco_nome"`
	ValorParcela      float64 `json:"valor_parcela"`
	SaldoDevedor      float64 `json:"saldo_devedor"`
	Prazo             int     `json:"prazo"`
	ParcelasRestantes int     `json:"parcelas_restantes"`
}

func (r *lookupResponse) ToDomain() entities.BenefitLookup {
	b := r.Beneficiario
	out := entities.BenefitLookup{
		Beneficiary: entities.Beneficiary{
			CPF:        entities.NormalizeCPF(b.CPF),
			Name:       strings.TrimSpace(b.Nome),
			BirthDate:  isoDate(b.DataNascimento),
			MotherName: strings.TrimSpace(b.NomeMae),
			Phone:      digits(b.Telefone),
			Email:      b.Email,
			Address: entities.Address{
				Street:     b.Endereco.Logradouro,
				Number:     b.Endereco.Numero,
				Complement: b.Endereco.Complemento,
				District:   b.Endereco.Bairro,
				City:       b.Endereco.Cidade,
				State:      strings.ToUpper(b.Endereco.UF),
				ZipCode:    digits(b.Endereco.CEP),
			},
		},
	}
	for _, ben := range r.Beneficios {
		benefit := entities.Benefit{
			EnrollmentID:       ben.Matricula,
			SpeciesCode:        ben.Especie.Codigo,
			SpeciesDescription: ben.Especie.Descricao,
		}
		for _, c := range ben.Contratos {
			benefit.Contracts = append(benefit.Contracts, entities.Contract{
				ID:                    c.Contrato,
				EnrollmentID:          ben.Matricula,
				BankCode:              c.BancoCodigo,
				BankName:              c.BancoNome,
				InstallmentAmount:     c.ValorParcela,
				OutstandingBalance:    c.SaldoDevedor,
				Term:                  c.Prazo,
				RemainingInstallments: c.ParcelasRestantes,
			})
		}
		out.Benefits = append(out.Benefits, benefit)
	}
	return out
}

// isoDate accepts dd/mm/yyyy from the provider and returns yyyy-mm-dd.
func isoDate(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t.Format(time.DateOnly)
	}
	return s
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
