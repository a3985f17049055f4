package entities

// Contract is an existing payroll loan tied to an INSS benefit.
//
// Contracts come from the benefit-data provider and are read-only for the
// whole workflow run. EnrollmentID is the benefit number (matrícula) the
// contract is deducted from.
type Contract struct {
	ID                    string  `json:"id"`
	EnrollmentID          string  `json:"enrollment_id"`
	BankCode              string  `json:"bank_code"`
	BankName              string  `json:"bank_name"`
	InstallmentAmount     float64 `json:"installment_amount"`
	OutstandingBalance    float64 `json:"outstanding_balance"`
	Term                  int     `json:"term"`
	RemainingInstallments int     `json:"remaining_installments"`
}
