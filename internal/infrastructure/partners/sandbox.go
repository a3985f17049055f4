package partners

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SandboxBank is an in-process partner for local runs (PARTNER_SANDBOX=true).
// Conditions are derived from the request, proposal numbers are random and
// the signing link shows up after LinkAfter fetches.
type SandboxBank struct {
	name      string
	linkAfter int

	mu      sync.Mutex
	fetches map[string]int
}

var _ interfaces.IPartnerBank = (*SandboxBank)(nil)

func NewSandboxBank(name string, linkAfter int) *SandboxBank {
	if linkAfter < 1 {
		linkAfter = 1
	}
	return &SandboxBank{name: name, linkAfter: linkAfter, fetches: make(map[string]int)}
}

func (b *SandboxBank) Name() string { return b.name }

func (b *SandboxBank) Simulate(ctx context.Context, req entities.SimulationRequest) ([]entities.CreditCondition, error) {
	if err := ctx.Err(); err != nil {
		return nil, &entities.CommunicationError{Bank: b.name, Operation: "simulate", Err: err}
	}
	for _, id := range req.ContractIDs {
		if strings.HasPrefix(id, "X") {
			return nil, &entities.SimulationError{Bank: b.name, Code: "CONTRATO_INELEGIVEL", Message: fmt.Sprintf("contrato %s não elegível para refinanciamento", id)}
		}
	}

	base := decimal.NewFromInt(int64(1500 * len(req.ContractIDs)))
	terms := []int{72, 84}
	if req.Mode == entities.SimulationByTerm {
		terms = []int{req.InstallmentQuantity}
	}

	out := make([]entities.CreditCondition, 0, len(terms))
	for _, term := range terms {
		rate := decimal.RequireFromString("0.0166")
		installment := base.Div(decimal.NewFromInt(int64(term))).Add(base.Mul(rate)).Round(2)
		if req.Mode == entities.SimulationByInstallment {
			installment = decimal.NewFromFloat(req.TargetInstallment).Round(2)
		}
		total := installment.Mul(decimal.NewFromInt(int64(term))).Round(2)
		financed := base.Mul(decimal.NewFromFloat(1.4)).Round(2)
		out = append(out, entities.CreditCondition{
			CovenantCode:        "INSS",
			CovenantDescription: "INSS Refinanciamento",
			ProductCode:         fmt.Sprintf("REFIN-%d", term),
			ProductDescription:  fmt.Sprintf("Refinanciamento %d meses", term),
			FinancedAmount:      financed.InexactFloat64(),
			ClientAmount:        financed.Sub(base).InexactFloat64(),
			InstallmentAmount:   installment.InexactFloat64(),
			InstallmentQuantity: term,
			InterestRate:        1.66,
			TotalAmount:         total.InexactFloat64(),
			Fees: []entities.FeeItem{
				{Code: "PREST", Description: "Seguro prestamista", Amount: financed.Mul(decimal.RequireFromString("0.03")).Round(2).InexactFloat64(), Exempt: true},
			},
		})
	}
	return out, nil
}

func (b *SandboxBank) DigitizeProposal(ctx context.Context, req entities.DigitizationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &entities.CommunicationError{Bank: b.name, Operation: "digitize", Err: err}
	}
	if req.BankAccount.BankCode == "000" {
		return "", &entities.DigitizationError{
			Bank:      b.name,
			Message:   "dados bancários inválidos",
			Fields:    []entities.FieldError{{Field: "bank_code", Message: "banco inexistente"}},
			Retriable: true,
		}
	}
	return strings.ToUpper(b.name) + "-" + strings.ToUpper(uuid.NewString()[:8]), nil
}

func (b *SandboxBank) FetchFormalizationLink(ctx context.Context, proposalNumber string) (entities.FormalizationLink, error) {
	if err := ctx.Err(); err != nil {
		return entities.FormalizationLink{}, &entities.CommunicationError{Bank: b.name, Operation: "formalization-link", Err: err}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fetches[proposalNumber]++
	if b.fetches[proposalNumber] < b.linkAfter {
		return entities.FormalizationLink{}, nil
	}
	return entities.FormalizationLink{URL: "https://sandbox.local/formalizacao/" + proposalNumber, Active: true}, nil
}

func (b *SandboxBank) FetchProposalStatus(ctx context.Context, proposalNumber string) (entities.DigitizationStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", &entities.CommunicationError{Bank: b.name, Operation: "proposal-status", Err: err}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fetches[proposalNumber] >= b.linkAfter {
		return entities.DigitizationStatusApproved, nil
	}
	return entities.DigitizationStatusInAnalise, nil
}
