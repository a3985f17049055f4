package multicorban

import (
	"context"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"
)

// SandboxClient answers every CPF with the same two benefits, used when
// PARTNER_SANDBOX is on. Contract ids starting with "X" are rejected by the
// sandbox partners, which makes the ineligible path reachable.
type SandboxClient struct{}

var _ interfaces.IBenefitProvider = SandboxClient{}

func (SandboxClient) LookupByCPF(ctx context.Context, cpf string) (entities.BenefitLookup, error) {
	if err := ctx.Err(); err != nil {
		return entities.BenefitLookup{}, &entities.CommunicationError{Bank: providerName, Operation: "lookup", Err: err}
	}
	return entities.BenefitLookup{
		Beneficiary: entities.Beneficiary{
			CPF:        cpf,
			Name:       "Beneficiário Sandbox",
			BirthDate:  "1955-03-15",
			MotherName: "Mãe Sandbox",
			Phone:      "51999990000",
			Address: entities.Address{
				Street: "Rua dos Andradas", Number: "1000", District: "Centro",
				City: "Porto Alegre", State: "RS", ZipCode: "90020008",
			},
		},
		Benefits: []entities.Benefit{
			{
				EnrollmentID:       "1234567890",
				SpeciesCode:        "41",
				SpeciesDescription: "Aposentadoria por idade",
				Contracts: []entities.Contract{
					{ID: "SBX-001", EnrollmentID: "1234567890", BankCode: "041", BankName: "Banrisul", InstallmentAmount: 180.4, OutstandingBalance: 5200, Term: 84, RemainingInstallments: 52},
					{ID: "SBX-002", EnrollmentID: "1234567890", BankCode: "336", BankName: "C6", InstallmentAmount: 95.1, OutstandingBalance: 2100, Term: 72, RemainingInstallments: 30},
					{ID: "X-003", EnrollmentID: "1234567890", BankCode: "422", BankName: "Safra", InstallmentAmount: 60, OutstandingBalance: 900, Term: 60, RemainingInstallments: 12},
				},
			},
			{
				EnrollmentID:       "9876543210",
				SpeciesCode:        "21",
				SpeciesDescription: "Pensão por morte",
				Contracts: []entities.Contract{
					{ID: "SBX-004", EnrollmentID: "9876543210", BankCode: "041", BankName: "Banrisul", InstallmentAmount: 120, OutstandingBalance: 3100, Term: 84, RemainingInstallments: 40},
				},
			},
		},
	}, nil
}
