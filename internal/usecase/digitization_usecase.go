package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrDigitizationNotFound      = errors.New("digitization not found")
	ErrDigitizationAlreadyExists = errors.New("digitization already recorded")
	ErrInvalidStatus             = errors.New("invalid digitization status")
	ErrInvalidPeriod             = errors.New("invalid period")
)

// RefreshReport summarizes one bulk reconciliation against a partner.
type RefreshReport struct {
	Bank    string `json:"bank"`
	Checked int    `json:"checked"`
	Changed int    `json:"changed"`
	Failed  int    `json:"failed"`
}

// IDigitizationUseCase is the digitization history recorder.
//
// An empty bank matches records of any bank.
type IDigitizationUseCase interface {
	Create(ctx context.Context, r entities.DigitizationRecord) (entities.DigitizationRecord, error)
	GetByProposalNumber(ctx context.Context, bank, proposalNumber string) (entities.DigitizationRecord, error)
	UpdateStatus(ctx context.Context, bank, proposalNumber string, upd entities.StatusUpdate) (entities.DigitizationRecord, error)
	List(ctx context.Context, filter entities.DigitizationFilter) ([]entities.DigitizationRecord, error)
	RefreshAll(ctx context.Context, bank string) (RefreshReport, error)
}

type DigitizationUseCase struct {
	repo     interfaces.IDigitizationRepository
	partners PartnerDirectory
	now      func() time.Time
}

var _ IDigitizationUseCase = (*DigitizationUseCase)(nil)

func NewDigitizationUseCase(repo interfaces.IDigitizationRepository, partners PartnerDirectory) *DigitizationUseCase {
	return &DigitizationUseCase{repo: repo, partners: partners, now: time.Now}
}

func (u *DigitizationUseCase) Create(ctx context.Context, r entities.DigitizationRecord) (entities.DigitizationRecord, error) {
	r.ProposalNumber = strings.TrimSpace(r.ProposalNumber)
	if r.ProposalNumber == "" {
		return entities.DigitizationRecord{}, ErrInvalidProposalNumber
	}
	if r.Status == "" {
		r.Status = entities.DigitizationStatusPending
	}
	if !r.Status.Valid() {
		return entities.DigitizationRecord{}, ErrInvalidStatus
	}
	r.CPF = entities.NormalizeCPF(r.CPF)

	now := u.now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	created, err := u.repo.Create(ctx, r)
	if errors.Is(err, interfaces.ErrDuplicateProposal) {
		// Partners never reuse proposal numbers, so a duplicate means a caller recorded twice.
		logrus.WithFields(logrus.Fields{"bank": r.Bank, "proposal_number": r.ProposalNumber}).
			Error("[digitization][usecase] duplicate proposal number")
		return entities.DigitizationRecord{}, ErrDigitizationAlreadyExists
	}
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	logrus.WithFields(logrus.Fields{"bank": created.Bank, "proposal_number": created.ProposalNumber}).
		Info("[digitization][usecase] recorded")
	return created, nil
}

func (u *DigitizationUseCase) GetByProposalNumber(ctx context.Context, bank, proposalNumber string) (entities.DigitizationRecord, error) {
	proposalNumber = strings.TrimSpace(proposalNumber)
	if proposalNumber == "" {
		return entities.DigitizationRecord{}, ErrInvalidProposalNumber
	}
	r, err := u.repo.GetByProposalNumber(ctx, proposalNumber)
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	if r.ProposalNumber == "" || !sameBank(bank, r.Bank) {
		return entities.DigitizationRecord{}, notFound(proposalNumber)
	}
	return r, nil
}

// UpdateStatus applies a partial update. Applying the same update twice
// leaves the record as after the first one, apart from UpdatedAt.
func (u *DigitizationUseCase) UpdateStatus(ctx context.Context, bank, proposalNumber string, upd entities.StatusUpdate) (entities.DigitizationRecord, error) {
	proposalNumber = strings.TrimSpace(proposalNumber)
	if proposalNumber == "" {
		return entities.DigitizationRecord{}, ErrInvalidProposalNumber
	}
	if !upd.Status.Valid() {
		return entities.DigitizationRecord{}, ErrInvalidStatus
	}
	if bank != "" {
		if _, err := u.GetByProposalNumber(ctx, bank, proposalNumber); err != nil {
			return entities.DigitizationRecord{}, err
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, proposalNumber, upd)
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	if updated.ProposalNumber == "" {
		return entities.DigitizationRecord{}, notFound(proposalNumber)
	}
	logrus.WithFields(logrus.Fields{
		"bank":            updated.Bank,
		"proposal_number": proposalNumber,
		"status":          updated.Status,
	}).Info("[digitization][usecase] status updated")
	return updated, nil
}

func (u *DigitizationUseCase) List(ctx context.Context, filter entities.DigitizationFilter) ([]entities.DigitizationRecord, error) {
	if !filter.Period.Valid() {
		return nil, ErrInvalidPeriod
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.List(ctx, filter)
}

// RefreshAll asks the partner for the current status of every non-terminal
// record of bank. A failure on one record is counted and the rest continue.
func (u *DigitizationUseCase) RefreshAll(ctx context.Context, bank string) (RefreshReport, error) {
	partner, err := u.partners.Get(bank)
	if err != nil {
		return RefreshReport{}, err
	}
	report := RefreshReport{Bank: partner.Name()}

	records, err := u.repo.ListNonTerminal(ctx, partner.Name())
	if err != nil {
		return report, err
	}

	log := logrus.WithField("bank", partner.Name())
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Checked++

		status, err := partner.FetchProposalStatus(ctx, r.ProposalNumber)
		if err != nil {
			report.Failed++
			log.WithError(err).WithField("proposal_number", r.ProposalNumber).Warn("[digitization][usecase] refresh failed")
			continue
		}
		if status == "" || status == r.Status {
			continue
		}
		if !status.Valid() {
			report.Failed++
			log.WithFields(logrus.Fields{"proposal_number": r.ProposalNumber, "status": status}).Warn("[digitization][usecase] partner returned unknown status")
			continue
		}
		if _, err := u.repo.UpdateStatus(ctx, r.ProposalNumber, entities.StatusUpdate{Status: status}); err != nil {
			report.Failed++
			log.WithError(err).WithField("proposal_number", r.ProposalNumber).Warn("[digitization][usecase] refresh update failed")
			continue
		}
		report.Changed++
	}

	log.WithFields(logrus.Fields{"checked": report.Checked, "changed": report.Changed, "failed": report.Failed}).
		Info("[digitization][usecase] refresh done")
	return report, nil
}

func sameBank(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

func notFound(proposalNumber string) error {
	return fmt.Errorf("%w: %w", ErrDigitizationNotFound, &entities.NotFoundError{Resource: "digitization", Key: proposalNumber})
}
