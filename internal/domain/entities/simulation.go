package entities

import (
	"errors"
	"strings"
)

var (
	ErrNoContracts         = errors.New("at least one contract is required")
	ErrDuplicateContract   = errors.New("contract selected more than once")
	ErrInvalidSimulationIn = errors.New("invalid simulation input")
	ErrUnknownInsurance    = errors.New("insurance not offered by the selected condition")
)

// SimulationMode selects how the partner computes the new installments.
// Modes are mutually exclusive.
type SimulationMode string

const (
	SimulationByTerm        SimulationMode = "term"
	SimulationByInstallment SimulationMode = "installment"
)

// SimulationRequest carries the contracts to refinance and the desired terms.
// Every contract must belong to EnrollmentID.
type SimulationRequest struct {
	CPF                 string         `json:"cpf"`
	EnrollmentID        string         `json:"enrollment_id"`
	ContractIDs         []string       `json:"contract_ids"`
	Mode                SimulationMode `json:"mode"`
	InstallmentQuantity int            `json:"installment_quantity,omitempty"`
	TargetInstallment   float64        `json:"target_installment,omitempty"`
}

func (r SimulationRequest) Validate() error {
	if len(r.ContractIDs) == 0 {
		return ErrNoContracts
	}
	seen := make(map[string]struct{}, len(r.ContractIDs))
	for _, id := range r.ContractIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return ErrNoContracts
		}
		if _, ok := seen[id]; ok {
			return ErrDuplicateContract
		}
		seen[id] = struct{}{}
	}

	switch r.Mode {
	case SimulationByTerm:
		if r.InstallmentQuantity <= 0 || r.TargetInstallment != 0 {
			return ErrInvalidSimulationIn
		}
	case SimulationByInstallment:
		if r.TargetInstallment <= 0 || r.InstallmentQuantity != 0 {
			return ErrInvalidSimulationIn
		}
	default:
		return ErrInvalidSimulationIn
	}
	return nil
}

// FeeItem is an insurance or expense line offered with a credit condition.
// Exempt=false means the client contracts it.
type FeeItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Exempt      bool    `json:"exempt"`
}

// CreditCondition is one refinancing offer returned by a simulation.
type CreditCondition struct {
	CovenantCode        string    `json:"covenant_code"`
	CovenantDescription string    `json:"covenant_description"`
	ProductCode         string    `json:"product_code"`
	ProductDescription  string    `json:"product_description"`
	FinancedAmount      float64   `json:"financed_amount"`
	ClientAmount        float64   `json:"client_amount"`
	InstallmentAmount   float64   `json:"installment_amount"`
	InstallmentQuantity int       `json:"installment_quantity"`
	InterestRate        float64   `json:"interest_rate"`
	TotalAmount         float64   `json:"total_amount"`
	Fees                []FeeItem `json:"fees,omitempty"`
}

// WithInsurance returns a copy of the condition where only the fee item with
// the given code is contracted. An empty code contracts none.
func (c CreditCondition) WithInsurance(code string) (CreditCondition, error) {
	code = strings.TrimSpace(code)
	out := c
	out.Fees = make([]FeeItem, len(c.Fees))
	found := code == ""
	for i, f := range c.Fees {
		f.Exempt = true
		if code != "" && f.Code == code && !found {
			f.Exempt = false
			found = true
		}
		out.Fees[i] = f
	}
	if !found {
		return CreditCondition{}, ErrUnknownInsurance
	}
	if len(c.Fees) == 0 {
		out.Fees = nil
	}
	return out, nil
}

// SelectedInsurance returns the single contracted fee item, if any.
func (c CreditCondition) SelectedInsurance() (FeeItem, bool) {
	for _, f := range c.Fees {
		if !f.Exempt {
			return f, true
		}
	}
	return FeeItem{}, false
}

// NonExemptFees counts contracted fee items.
func (c CreditCondition) NonExemptFees() int {
	n := 0
	for _, f := range c.Fees {
		if !f.Exempt {
			n++
		}
	}
	return n
}
