package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrMultipleInsurances = errors.New("only one insurance may be contracted")

// DigitizationStatus is the lifecycle of a proposal submitted to a partner bank.
//
// Partner-native values (EM_ANALISE, CANCELADA) are kept verbatim because
// operators search by them.
type DigitizationStatus string

const (
	DigitizationStatusPending   DigitizationStatus = "pending"
	DigitizationStatusInAnalise DigitizationStatus = "EM_ANALISE"
	DigitizationStatusApproved  DigitizationStatus = "approved"
	DigitizationStatusRejected  DigitizationStatus = "rejected"
	DigitizationStatusCancelled DigitizationStatus = "CANCELADA"
)

func (s DigitizationStatus) Valid() bool {
	switch s {
	case DigitizationStatusPending, DigitizationStatusInAnalise, DigitizationStatusApproved,
		DigitizationStatusRejected, DigitizationStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the partner will not move the proposal anymore.
func (s DigitizationStatus) IsTerminal() bool {
	switch s {
	case DigitizationStatusApproved, DigitizationStatusRejected, DigitizationStatusCancelled:
		return true
	}
	return false
}

type BankAccount struct {
	BankCode     string `json:"bank_code" validate:"required,numeric,len=3"`
	Agency       string `json:"agency" validate:"required,numeric,max=5"`
	Account      string `json:"account" validate:"required,numeric,max=12"`
	AccountDigit string `json:"account_digit" validate:"required,max=2"`
	AccountType  string `json:"account_type" validate:"required,oneof=checking savings"`
}

// DigitizationRequest is the full proposal sent to a partner bank.
// ContractIDs must be the exact set that was simulated for Condition.
type DigitizationRequest struct {
	EnrollmentID string          `json:"enrollment_id" validate:"required"`
	Beneficiary  Beneficiary     `json:"beneficiary"`
	BankAccount  BankAccount     `json:"bank_account"`
	Condition    CreditCondition `json:"condition"`
	ContractIDs  []string        `json:"contract_ids" validate:"required,min=1,dive,required"`
}

func (r DigitizationRequest) Validate() error {
	if err := Validator().Struct(r); err != nil {
		return err
	}
	if r.Condition.NonExemptFees() > 1 {
		return ErrMultipleInsurances
	}
	return nil
}

// DigitizationRecord is the persisted outcome of a successful digitization.
//
// Storage model:
//   - PK: proposal_number (assigned by the partner, unique)
//   - FormalizationLink stays nil until the polling loop or an operator sets it.
type DigitizationRecord struct {
	ProposalNumber    string             `json:"proposal_number"`
	Bank              string             `json:"bank"`
	OperatorID        string             `json:"operator_id"`
	CPF               string             `json:"cpf"`
	ClientName        string             `json:"client_name"`
	SelectedContracts []string           `json:"selected_contracts"`
	Condition         CreditCondition    `json:"condition"`
	SelectedInsurance string             `json:"selected_insurance,omitempty"`
	RequestedAmount   float64            `json:"requested_amount"`
	InstallmentAmount float64            `json:"installment_amount"`
	ClientAmount      float64            `json:"client_amount"`
	Status            DigitizationStatus `json:"status"`
	FormalizationLink *string            `json:"formalization_link"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NewDigitizationRecord snapshots a submitted request into a pending record.
func NewDigitizationRecord(bank, operatorID, proposalNumber string, req DigitizationRequest) DigitizationRecord {
	insurance := ""
	if f, ok := req.Condition.SelectedInsurance(); ok {
		insurance = f.Description
	}
	contracts := make([]string, len(req.ContractIDs))
	copy(contracts, req.ContractIDs)
	return DigitizationRecord{
		ProposalNumber:    proposalNumber,
		Bank:              bank,
		OperatorID:        operatorID,
		CPF:               req.Beneficiary.CPF,
		ClientName:        req.Beneficiary.Name,
		SelectedContracts: contracts,
		Condition:         req.Condition,
		SelectedInsurance: insurance,
		RequestedAmount:   req.Condition.FinancedAmount,
		InstallmentAmount: req.Condition.InstallmentAmount,
		ClientAmount:      req.Condition.ClientAmount,
		Status:            DigitizationStatusPending,
	}
}

// StatusUpdate is a partial update; a nil link leaves the stored link untouched.
type StatusUpdate struct {
	Status            DigitizationStatus `json:"status"`
	FormalizationLink *string            `json:"formalization_link,omitempty"`
}

// DatePeriod buckets records by creation date.
type DatePeriod string

const (
	PeriodToday  DatePeriod = "today"
	PeriodLast7  DatePeriod = "7d"
	PeriodLast30 DatePeriod = "30d"
	PeriodAll    DatePeriod = "all"
)

func (p DatePeriod) Valid() bool {
	switch p {
	case "", PeriodToday, PeriodLast7, PeriodLast30, PeriodAll:
		return true
	}
	return false
}

// Since returns the lower creation bound for the period, zero for "all".
func (p DatePeriod) Since(now time.Time) time.Time {
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodToday:
		return startOfDay
	case PeriodLast7:
		return startOfDay.AddDate(0, 0, -6)
	case PeriodLast30:
		return startOfDay.AddDate(0, 0, -29)
	}
	return time.Time{}
}

// DigitizationFilter narrows the history listing. Empty fields match everything.
type DigitizationFilter struct {
	Bank           string
	ClientName     string
	CPF            string
	ProposalNumber string
	Status         DigitizationStatus
	Period         DatePeriod
}

func (f DigitizationFilter) Matches(r DigitizationRecord, now time.Time) bool {
	if f.Bank != "" && r.Bank != f.Bank {
		return false
	}
	if f.ClientName != "" && !strings.Contains(strings.ToLower(r.ClientName), strings.ToLower(f.ClientName)) {
		return false
	}
	if cpf := NormalizeCPF(f.CPF); cpf != "" && !strings.Contains(NormalizeCPF(r.CPF), cpf) {
		return false
	}
	if f.ProposalNumber != "" && !strings.Contains(r.ProposalNumber, f.ProposalNumber) {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if since := f.Period.Since(now); !since.IsZero() && r.CreatedAt.Before(since) {
		return false
	}
	return true
}
