package interfaces

import (
	"context"
	"errors"

	"inss_refin/internal/domain/entities"
)

var ErrBeneficiaryNotFound = errors.New("beneficiary not found")

// IBenefitProvider abstracts the external benefit-data provider (Multicorban).
type IBenefitProvider interface {
	LookupByCPF(ctx context.Context, cpf string) (entities.BenefitLookup, error)
}
