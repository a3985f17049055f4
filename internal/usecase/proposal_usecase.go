package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"inss_refin/internal/domain/entities"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidProposalNumber = errors.New("invalid proposal number")
	ErrPollingNotStarted     = errors.New("formalization polling not started")
)

// IProposalUseCase exposes the stateless partner operations behind /api/<bank>/...
//
// IncludeProposal records the digitization as soon as the partner assigns a
// proposal number, so every accepted proposal has exactly one history record.
type IProposalUseCase interface {
	Simulate(ctx context.Context, bank string, req entities.SimulationRequest) ([]entities.CreditCondition, error)
	IncludeProposal(ctx context.Context, bank, operatorID string, req entities.DigitizationRequest) (entities.DigitizationRecord, error)
	FormalizationLink(ctx context.Context, bank, proposalNumber string) (entities.FormalizationLink, error)
	StartFormalizationPolling(bank, proposalNumber string) (entities.PollReport, error)
	FormalizationPollingReport(bank, proposalNumber string) (entities.PollReport, error)
	CancelFormalizationPolling(bank, proposalNumber string) (entities.PollReport, error)
}

type ProposalUseCase struct {
	partners PartnerDirectory
	recorder IDigitizationUseCase
	poller   *FormalizationPoller
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(partners PartnerDirectory, recorder IDigitizationUseCase, poller *FormalizationPoller) *ProposalUseCase {
	return &ProposalUseCase{partners: partners, recorder: recorder, poller: poller}
}

func (u *ProposalUseCase) Simulate(ctx context.Context, bank string, req entities.SimulationRequest) ([]entities.CreditCondition, error) {
	partner, err := u.partners.Get(bank)
	if err != nil {
		return nil, err
	}
	req.CPF = entities.NormalizeCPF(req.CPF)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{"bank": partner.Name(), "enrollment_id": req.EnrollmentID, "contracts": len(req.ContractIDs)})
	log.Info("[proposal][usecase] simulate start")
	conditions, err := partner.Simulate(ctx, req)
	if err != nil {
		log.WithError(err).Warn("[proposal][usecase] simulate failed")
		return nil, err
	}
	log.WithField("conditions", len(conditions)).Info("[proposal][usecase] simulate success")
	return conditions, nil
}

func (u *ProposalUseCase) IncludeProposal(ctx context.Context, bank, operatorID string, req entities.DigitizationRequest) (entities.DigitizationRecord, error) {
	partner, err := u.partners.Get(bank)
	if err != nil {
		return entities.DigitizationRecord{}, err
	}
	req.Beneficiary.CPF = entities.NormalizeCPF(req.Beneficiary.CPF)
	if err := req.Validate(); err != nil {
		return entities.DigitizationRecord{}, err
	}

	log := logrus.WithFields(logrus.Fields{"bank": partner.Name(), "contracts": len(req.ContractIDs)})
	log.Info("[proposal][usecase] include start")
	proposalNumber, err := partner.DigitizeProposal(ctx, req)
	if err != nil {
		log.WithError(err).Warn("[proposal][usecase] include failed")
		return entities.DigitizationRecord{}, err
	}
	log = log.WithField("proposal_number", proposalNumber)
	log.Info("[proposal][usecase] include success")

	record := entities.NewDigitizationRecord(partner.Name(), operatorID, proposalNumber, req)
	recCtx, cancel := recordContext(ctx, u.poller.Policy().CallTimeout)
	defer cancel()
	created, err := u.recorder.Create(recCtx, record)
	if err != nil {
		// The partner already holds the proposal; the operator still needs the number.
		log.WithError(err).Error("[proposal][usecase] recording digitization failed")
		return record, err
	}
	return created, nil
}

// recordContext outlives the caller's cancellation: once the partner holds a
// proposal its history record is written even if the client went away.
func recordContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

func (u *ProposalUseCase) FormalizationLink(ctx context.Context, bank, proposalNumber string) (entities.FormalizationLink, error) {
	partner, err := u.partners.Get(bank)
	if err != nil {
		return entities.FormalizationLink{}, err
	}
	proposalNumber = strings.TrimSpace(proposalNumber)
	if proposalNumber == "" {
		return entities.FormalizationLink{}, ErrInvalidProposalNumber
	}
	return partner.FetchFormalizationLink(ctx, proposalNumber)
}

func (u *ProposalUseCase) StartFormalizationPolling(bank, proposalNumber string) (entities.PollReport, error) {
	partner, err := u.partners.Get(bank)
	if err != nil {
		return entities.PollReport{}, err
	}
	proposalNumber = strings.TrimSpace(proposalNumber)
	if proposalNumber == "" {
		return entities.PollReport{}, ErrInvalidProposalNumber
	}
	task := u.poller.Start(partner, proposalNumber, nil)
	return task.Report(), nil
}

func (u *ProposalUseCase) FormalizationPollingReport(bank, proposalNumber string) (entities.PollReport, error) {
	task, err := u.task(bank, proposalNumber)
	if err != nil {
		return entities.PollReport{}, err
	}
	return task.Report(), nil
}

func (u *ProposalUseCase) CancelFormalizationPolling(bank, proposalNumber string) (entities.PollReport, error) {
	task, err := u.task(bank, proposalNumber)
	if err != nil {
		return entities.PollReport{}, err
	}
	task.Cancel()
	<-task.Done()
	return task.Report(), nil
}

func (u *ProposalUseCase) task(bank, proposalNumber string) (*PollTask, error) {
	partner, err := u.partners.Get(bank)
	if err != nil {
		return nil, err
	}
	task, ok := u.poller.Get(partner.Name(), strings.TrimSpace(proposalNumber))
	if !ok {
		return nil, ErrPollingNotStarted
	}
	return task, nil
}
