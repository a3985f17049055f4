package response

import (
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase"
)

type DigitizationResponse struct {
	ProposalNumber    string                   `json:"proposal_number"`
	Bank              string                   `json:"bank"`
	OperatorID        string                   `json:"operator_id"`
	CPF               string                   `json:"cpf"`
	ClientName        string                   `json:"client_name"`
	SelectedContracts []string                 `json:"selected_contracts"`
	Condition         entities.CreditCondition `json:"condition"`
	SelectedInsurance string                   `json:"selected_insurance,omitempty"`
	RequestedAmount   float64                  `json:"requested_amount"`
	InstallmentAmount float64                  `json:"installment_amount"`
	ClientAmount      float64                  `json:"client_amount"`
	Status            string                   `json:"status"`
	FormalizationLink *string                  `json:"formalization_link"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func FromDigitization(r entities.DigitizationRecord) DigitizationResponse {
	contracts := r.SelectedContracts
	if contracts == nil {
		contracts = []string{}
	}
	return DigitizationResponse{
		ProposalNumber:    r.ProposalNumber,
		Bank:              r.Bank,
		OperatorID:        r.OperatorID,
		CPF:               r.CPF,
		ClientName:        r.ClientName,
		SelectedContracts: contracts,
		Condition:         r.Condition,
		SelectedInsurance: r.SelectedInsurance,
		RequestedAmount:   r.RequestedAmount,
		InstallmentAmount: r.InstallmentAmount,
		ClientAmount:      r.ClientAmount,
		Status:            string(r.Status),
		FormalizationLink: r.FormalizationLink,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type DigitizationListResponse struct {
	Items []DigitizationResponse `json:"items"`
	Total int                    `json:"total"`
}

func FromDigitizations(records []entities.DigitizationRecord) DigitizationListResponse {
	out := DigitizationListResponse{Items: make([]DigitizationResponse, 0, len(records)), Total: len(records)}
	for _, r := range records {
		out.Items = append(out.Items, FromDigitization(r))
	}
	return out
}

type RefreshReportResponse struct {
	Bank    string `json:"bank"`
	Checked int    `json:"checked"`
	Changed int    `json:"changed"`
	Failed  int    `json:"failed"`
}

func FromRefreshReport(r usecase.RefreshReport) RefreshReportResponse {
	return RefreshReportResponse{Bank: r.Bank, Checked: r.Checked, Changed: r.Changed, Failed: r.Failed}
}
