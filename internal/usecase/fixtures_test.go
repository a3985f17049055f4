package usecase

import (
	"context"
	"sync"

	"inss_refin/internal/domain/entities"
)

const testCPF = "52998224725"

func testBeneficiary() entities.Beneficiary {
	return entities.Beneficiary{
		CPF:        testCPF,
		Name:       "Maria da Silva",
		BirthDate:  "1950-03-10",
		MotherName: "Ana da Silva",
		Phone:      "51999998888",
		Address: entities.Address{
			Street:   "Rua dos Andradas",
			Number:   "100",
			District: "Centro",
			City:     "Porto Alegre",
			State:    "RS",
			ZipCode:  "90010000",
		},
	}
}

func testBankAccount() entities.BankAccount {
	return entities.BankAccount{BankCode: "041", Agency: "1234", Account: "123456", AccountDigit: "7", AccountType: "checking"}
}

func testCondition() entities.CreditCondition {
	return entities.CreditCondition{
		CovenantCode:        "INSS",
		ProductCode:         "REFIN",
		FinancedAmount:      5000,
		ClientAmount:        1200,
		InstallmentAmount:   150,
		InstallmentQuantity: 84,
		InterestRate:        1.66,
		TotalAmount:         12600,
		Fees: []entities.FeeItem{
			{Code: "PREST", Description: "Seguro prestamista", Amount: 90, Exempt: true},
			{Code: "VIDA", Description: "Seguro vida", Amount: 40, Exempt: true},
		},
	}
}

func testDigitizationRequest() entities.DigitizationRequest {
	return entities.DigitizationRequest{
		EnrollmentID: "1234567890",
		Beneficiary:  testBeneficiary(),
		BankAccount:  testBankAccount(),
		Condition:    testCondition(),
		ContractIDs:  []string{"c1"},
	}
}

func testLookup() entities.BenefitLookup {
	b := testBeneficiary()
	return entities.BenefitLookup{
		Beneficiary: entities.Beneficiary{CPF: b.CPF, Name: b.Name},
		Benefits: []entities.Benefit{
			{EnrollmentID: "1234567890", SpeciesCode: "41", Contracts: []entities.Contract{
				{ID: "c1", BankCode: "041", InstallmentAmount: 100, OutstandingBalance: 3000},
				{ID: "c2", BankCode: "336", InstallmentAmount: 80, OutstandingBalance: 2000},
			}},
			{EnrollmentID: "9876543210", SpeciesCode: "32", Contracts: []entities.Contract{
				{ID: "c3", BankCode: "422", InstallmentAmount: 60, OutstandingBalance: 1500},
			}},
		},
	}
}

type statusCall struct {
	bank           string
	proposalNumber string
	upd            entities.StatusUpdate
}

// fakeStatusRecorder records UpdateStatus calls made by the poller.
type fakeStatusRecorder struct {
	mu    sync.Mutex
	calls []statusCall
}

func (f *fakeStatusRecorder) UpdateStatus(_ context.Context, bank, proposalNumber string, upd entities.StatusUpdate) (entities.DigitizationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, statusCall{bank: bank, proposalNumber: proposalNumber, upd: upd})
	return entities.DigitizationRecord{ProposalNumber: proposalNumber, Bank: bank, Status: upd.Status, FormalizationLink: upd.FormalizationLink}, nil
}

func (f *fakeStatusRecorder) Calls() []statusCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]statusCall(nil), f.calls...)
}
