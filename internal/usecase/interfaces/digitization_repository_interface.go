package interfaces

import (
	"context"
	"errors"

	"inss_refin/internal/domain/entities"
)

var ErrDuplicateProposal = errors.New("proposal number already recorded")

// IDigitizationRepository persists DigitizationRecord entities.
//
// Lookups and updates on an unknown proposal number return a zero record and a nil error.
// Create must fail with ErrDuplicateProposal when the proposal number already exists.
type IDigitizationRepository interface {
	Create(ctx context.Context, r entities.DigitizationRecord) (entities.DigitizationRecord, error)
	GetByProposalNumber(ctx context.Context, proposalNumber string) (entities.DigitizationRecord, error)
	UpdateStatus(ctx context.Context, proposalNumber string, upd entities.StatusUpdate) (entities.DigitizationRecord, error)
	List(ctx context.Context, filter entities.DigitizationFilter) ([]entities.DigitizationRecord, error)
	ListNonTerminal(ctx context.Context, bank string) ([]entities.DigitizationRecord, error)
}
