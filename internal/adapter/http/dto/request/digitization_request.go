package request

import (
	"strings"

	"inss_refin/internal/domain/entities"
)

// CreateDigitizationRequest records a proposal digitized outside this service.
type CreateDigitizationRequest struct {
	ProposalNumber    string                   `json:"proposal_number" binding:"required"`
	CPF               string                   `json:"cpf" binding:"required"`
	ClientName        string                   `json:"client_name" binding:"required"`
	SelectedContracts []string                 `json:"selected_contracts" binding:"required,min=1"`
	Condition         entities.CreditCondition `json:"condition"`
	SelectedInsurance string                   `json:"selected_insurance"`
	RequestedAmount   float64                  `json:"requested_amount"`
	InstallmentAmount float64                  `json:"installment_amount"`
	ClientAmount      float64                  `json:"client_amount"`
	Status            string                   `json:"status"`
	FormalizationLink *string                  `json:"formalization_link"`
}

func (r CreateDigitizationRequest) ToDomain(bank, operatorID string) entities.DigitizationRecord {
	return entities.DigitizationRecord{
		ProposalNumber:    strings.TrimSpace(r.ProposalNumber),
		Bank:              bank,
		OperatorID:        operatorID,
		CPF:               r.CPF,
		ClientName:        strings.TrimSpace(r.ClientName),
		SelectedContracts: trimAll(r.SelectedContracts),
		Condition:         r.Condition,
		SelectedInsurance: r.SelectedInsurance,
		RequestedAmount:   r.RequestedAmount,
		InstallmentAmount: r.InstallmentAmount,
		ClientAmount:      r.ClientAmount,
		Status:            entities.DigitizationStatus(r.Status),
		FormalizationLink: r.FormalizationLink,
	}
}

type UpdateStatusRequest struct {
	Status            string  `json:"status" binding:"required"`
	FormalizationLink *string `json:"formalization_link"`
}

func (r UpdateStatusRequest) ToDomain() entities.StatusUpdate {
	return entities.StatusUpdate{
		Status:            entities.DigitizationStatus(strings.TrimSpace(r.Status)),
		FormalizationLink: r.FormalizationLink,
	}
}

// DigitizationListQuery holds the history filters taken from the query string.
type DigitizationListQuery struct {
	ClientName     string `form:"client_name"`
	CPF            string `form:"cpf"`
	ProposalNumber string `form:"proposal_number"`
	Status         string `form:"status"`
	Period         string `form:"period"`
}

func (q DigitizationListQuery) ToFilter(bank string) entities.DigitizationFilter {
	return entities.DigitizationFilter{
		Bank:           bank,
		ClientName:     strings.TrimSpace(q.ClientName),
		CPF:            strings.TrimSpace(q.CPF),
		ProposalNumber: strings.TrimSpace(q.ProposalNumber),
		Status:         entities.DigitizationStatus(strings.TrimSpace(q.Status)),
		Period:         entities.DatePeriod(strings.TrimSpace(q.Period)),
	}
}
