package usecase

import (
	"context"
	"errors"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCPF = errors.New("invalid cpf")

type IBenefitUseCase interface {
	LookupByCPF(ctx context.Context, cpf string) (entities.BenefitLookup, error)
}

type BenefitUseCase struct {
	provider interfaces.IBenefitProvider
}

var _ IBenefitUseCase = (*BenefitUseCase)(nil)

func NewBenefitUseCase(provider interfaces.IBenefitProvider) *BenefitUseCase {
	return &BenefitUseCase{provider: provider}
}

func (u *BenefitUseCase) LookupByCPF(ctx context.Context, cpf string) (entities.BenefitLookup, error) {
	cpf = entities.NormalizeCPF(cpf)
	if !entities.ValidCPF(cpf) {
		return entities.BenefitLookup{}, ErrInvalidCPF
	}

	lookup, err := u.provider.LookupByCPF(ctx, cpf)
	if err != nil {
		if !errors.Is(err, interfaces.ErrBeneficiaryNotFound) {
			logrus.WithError(err).Warn("[benefit][usecase] lookup failed")
		}
		return entities.BenefitLookup{}, err
	}
	if lookup.Beneficiary.CPF == "" {
		lookup.Beneficiary.CPF = cpf
	}
	logrus.WithField("benefits", len(lookup.Benefits)).Info("[benefit][usecase] lookup success")
	return lookup, nil
}
