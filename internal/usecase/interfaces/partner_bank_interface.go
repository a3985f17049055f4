package interfaces

import (
	"context"

	"inss_refin/internal/domain/entities"
)

// IPartnerBank abstracts a partner bank's consignado API (Banrisul, C6, Safra...).
//
// Implementations shape the bank-specific payloads and normalize partner errors into
// *entities.CommunicationError, *entities.SimulationError and *entities.DigitizationError.
// No local state is mutated by an implementation.
type IPartnerBank interface {
	Name() string
	Simulate(ctx context.Context, req entities.SimulationRequest) ([]entities.CreditCondition, error)
	DigitizeProposal(ctx context.Context, req entities.DigitizationRequest) (proposalNumber string, err error)
	FetchFormalizationLink(ctx context.Context, proposalNumber string) (entities.FormalizationLink, error)
	FetchProposalStatus(ctx context.Context, proposalNumber string) (entities.DigitizationStatus, error)
}
