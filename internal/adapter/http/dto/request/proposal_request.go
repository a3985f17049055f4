package request

import (
	"strings"

	"inss_refin/internal/domain/entities"
)

type SimulationRequest struct {
	CPF                 string   `json:"cpf" binding:"required"`
	EnrollmentID        string   `json:"enrollment_id" binding:"required"`
	ContractIDs         []string `json:"contract_ids" binding:"required,min=1,dive,required"`
	Mode                string   `json:"mode" binding:"required,oneof=term installment"`
	InstallmentQuantity int      `json:"installment_quantity"`
	TargetInstallment   float64  `json:"target_installment"`
}

func (r SimulationRequest) ToDomain() entities.SimulationRequest {
	return entities.SimulationRequest{
		CPF:                 r.CPF,
		EnrollmentID:        strings.TrimSpace(r.EnrollmentID),
		ContractIDs:         trimAll(r.ContractIDs),
		Mode:                entities.SimulationMode(r.Mode),
		InstallmentQuantity: r.InstallmentQuantity,
		TargetInstallment:   r.TargetInstallment,
	}
}

// IncludeProposalRequest is the full digitization payload. Nested structs are
// checked by the domain validator, so only presence is bound here.
type IncludeProposalRequest struct {
	EnrollmentID string                   `json:"enrollment_id" binding:"required"`
	ContractIDs  []string                 `json:"contract_ids" binding:"required,min=1"`
	Beneficiary  entities.Beneficiary     `json:"beneficiary"`
	BankAccount  entities.BankAccount     `json:"bank_account"`
	Condition    entities.CreditCondition `json:"condition"`
}

func (r IncludeProposalRequest) ToDomain() entities.DigitizationRequest {
	return entities.DigitizationRequest{
		EnrollmentID: strings.TrimSpace(r.EnrollmentID),
		ContractIDs:  trimAll(r.ContractIDs),
		Beneficiary:  r.Beneficiary,
		BankAccount:  r.BankAccount,
		Condition:    r.Condition,
	}
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
