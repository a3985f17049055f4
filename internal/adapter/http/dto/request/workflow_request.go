package request

import (
	"strings"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase"
)

type StartWorkflowRequest struct {
	Bank string `json:"bank" binding:"required"`
	CPF  string `json:"cpf" binding:"required"`
}

type SelectContractsRequest struct {
	ContractIDs []string `json:"contract_ids" binding:"required,min=1"`
}

type WorkflowSimulationRequest struct {
	Mode                string  `json:"mode" binding:"required,oneof=term installment"`
	InstallmentQuantity int     `json:"installment_quantity"`
	TargetInstallment   float64 `json:"target_installment"`
}

func (r WorkflowSimulationRequest) ToParams() usecase.SimulationParams {
	return usecase.SimulationParams{
		Mode:                entities.SimulationMode(r.Mode),
		InstallmentQuantity: r.InstallmentQuantity,
		TargetInstallment:   r.TargetInstallment,
	}
}

// SelectConditionRequest picks a condition by its position in the last
// simulation. An empty insurance code contracts no insurance.
type SelectConditionRequest struct {
	Index         *int   `json:"index" binding:"required,min=0"`
	InsuranceCode string `json:"insurance_code"`
}

func (r SelectConditionRequest) InsuranceOrEmpty() string {
	return strings.TrimSpace(r.InsuranceCode)
}

type WorkflowDigitizeRequest struct {
	Beneficiary entities.Beneficiary `json:"beneficiary"`
	BankAccount entities.BankAccount `json:"bank_account"`
}

func (r WorkflowDigitizeRequest) ToInput() usecase.DigitizationInput {
	return usecase.DigitizationInput{Beneficiary: r.Beneficiary, BankAccount: r.BankAccount}
}
