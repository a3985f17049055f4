package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrWorkflowNotFound      = errors.New("workflow not found")
	ErrInvalidWorkflowStep   = errors.New("step not allowed in the current workflow state")
	ErrStepInProgress        = errors.New("another step of this workflow is in progress")
	ErrMixedEnrollments      = errors.New("selected contracts belong to different enrollments")
	ErrUnknownContract       = errors.New("contract not found for this beneficiary")
	ErrInvalidConditionIndex = errors.New("invalid condition index")
	ErrBeneficiaryMismatch   = errors.New("beneficiary cpf does not match the workflow")
)

const DefaultWorkflowTTL = 12 * time.Hour

// SimulationParams are the operator choices for one simulation.
type SimulationParams struct {
	Mode                entities.SimulationMode
	InstallmentQuantity int
	TargetInstallment   float64
}

// DigitizationInput is the data collected at the digitization step.
type DigitizationInput struct {
	Beneficiary entities.Beneficiary
	BankAccount entities.BankAccount
}

// RunView is a point-in-time copy of a workflow run.
type RunView struct {
	ID                string                       `json:"id"`
	Bank              string                       `json:"bank"`
	OperatorID        string                       `json:"operator_id"`
	State             entities.WorkflowState       `json:"state"`
	Lookup            entities.BenefitLookup       `json:"lookup"`
	EnrollmentID      string                       `json:"enrollment_id,omitempty"`
	SelectedContracts []string                     `json:"selected_contracts"`
	Conditions        []entities.CreditCondition   `json:"conditions"`
	Condition         *entities.CreditCondition    `json:"condition,omitempty"`
	ProposalNumber    string                       `json:"proposal_number,omitempty"`
	Record            *entities.DigitizationRecord `json:"record,omitempty"`
	Poll              *entities.PollReport         `json:"poll,omitempty"`
	LastError         string                       `json:"last_error,omitempty"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         time.Time                    `json:"updated_at"`
}

type IWorkflowUseCase interface {
	Start(ctx context.Context, bank, cpf, operatorID string) (RunView, error)
	Get(id string) (RunView, error)
	SelectContracts(id string, contractIDs []string) (RunView, error)
	Simulate(ctx context.Context, id string, params SimulationParams) (RunView, error)
	RestartSimulation(id string) (RunView, error)
	SelectCondition(id string, index int, insuranceCode string) (RunView, error)
	Digitize(ctx context.Context, id string, in DigitizationInput) (RunView, error)
	Cancel(id string) (RunView, error)
}

// run is the per-workflow context. Every field is guarded by mu; busy marks
// a blocking partner call so steps of one run never overlap.
type run struct {
	mu sync.Mutex

	id         string
	bank       string
	partner    interfaces.IPartnerBank
	operatorID string
	state      entities.WorkflowState
	lookup     entities.BenefitLookup

	enrollmentID string
	selected     []string
	simulated    []string
	conditions   []entities.CreditCondition
	condition    *entities.CreditCondition

	proposalNumber string
	record         *entities.DigitizationRecord
	task           *PollTask
	lastError      string

	busy      bool
	cancelled bool
	createdAt time.Time
	updatedAt time.Time
}

type WorkflowUseCase struct {
	partners PartnerDirectory
	benefits IBenefitUseCase
	recorder IDigitizationUseCase
	poller   *FormalizationPoller
	ttl      time.Duration

	mu   sync.Mutex
	runs map[string]*run
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(partners PartnerDirectory, benefits IBenefitUseCase, recorder IDigitizationUseCase, poller *FormalizationPoller) *WorkflowUseCase {
	return &WorkflowUseCase{
		partners: partners,
		benefits: benefits,
		recorder: recorder,
		poller:   poller,
		ttl:      DefaultWorkflowTTL,
		runs:     make(map[string]*run),
	}
}

func (w *WorkflowUseCase) Start(ctx context.Context, bank, cpf, operatorID string) (RunView, error) {
	partner, err := w.partners.Get(bank)
	if err != nil {
		return RunView{}, err
	}
	lookup, err := w.benefits.LookupByCPF(ctx, cpf)
	if err != nil {
		return RunView{}, err
	}

	now := time.Now().UTC()
	r := &run{
		id:         uuid.NewString(),
		bank:       partner.Name(),
		partner:    partner,
		operatorID: operatorID,
		state:      entities.WorkflowContractSelection,
		lookup:     lookup,
		createdAt:  now,
		updatedAt:  now,
	}

	w.mu.Lock()
	stopped := w.pruneLocked(now)
	w.runs[r.id] = r
	w.mu.Unlock()
	for _, task := range stopped {
		task.Cancel()
	}

	logrus.WithFields(logrus.Fields{"run_id": r.id, "bank": r.bank}).Info("[workflow][usecase] started")
	return r.view(), nil
}

func (w *WorkflowUseCase) Get(id string) (RunView, error) {
	r, err := w.get(id)
	if err != nil {
		return RunView{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view(), nil
}

// SelectContracts replaces the selection. On error the previous selection is kept.
func (w *WorkflowUseCase) SelectContracts(id string, contractIDs []string) (RunView, error) {
	r, err := w.get(id)
	if err != nil {
		return RunView{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.expect(entities.WorkflowContractSelection); err != nil {
		return r.view(), err
	}
	if len(contractIDs) == 0 {
		return r.view(), entities.ErrNoContracts
	}

	enrollment := ""
	seen := make(map[string]struct{}, len(contractIDs))
	ids := make([]string, 0, len(contractIDs))
	for _, cid := range contractIDs {
		cid = strings.TrimSpace(cid)
		if _, dup := seen[cid]; dup {
			return r.view(), entities.ErrDuplicateContract
		}
		seen[cid] = struct{}{}
		e, ok := r.lookup.EnrollmentOf(cid)
		if !ok {
			return r.view(), ErrUnknownContract
		}
		if enrollment != "" && e != enrollment {
			return r.view(), ErrMixedEnrollments
		}
		enrollment = e
		ids = append(ids, cid)
	}

	r.enrollmentID = enrollment
	r.selected = ids
	r.touch()
	return r.view(), nil
}

// Simulate runs from contract selection, or from condition selection as a
// re-simulation. A failed simulation returns the run to contract selection.
func (w *WorkflowUseCase) Simulate(ctx context.Context, id string, params SimulationParams) (RunView, error) {
	r, err := w.get(id)
	if err != nil {
		return RunView{}, err
	}

	r.mu.Lock()
	if err := r.expect(entities.WorkflowContractSelection, entities.WorkflowConditionSelection); err != nil {
		defer r.mu.Unlock()
		return r.view(), err
	}
	req := entities.SimulationRequest{
		CPF:                 r.lookup.Beneficiary.CPF,
		EnrollmentID:        r.enrollmentID,
		ContractIDs:         append([]string(nil), r.selected...),
		Mode:                params.Mode,
		InstallmentQuantity: params.InstallmentQuantity,
		TargetInstallment:   params.TargetInstallment,
	}
	if err := req.Validate(); err != nil {
		defer r.mu.Unlock()
		return r.view(), err
	}
	r.busy = true
	r.state = entities.WorkflowSimulating
	r.conditions = nil
	r.condition = nil
	r.touch()
	partner := r.partner
	r.mu.Unlock()

	log := logrus.WithFields(logrus.Fields{"run_id": id, "bank": partner.Name()})
	log.Info("[workflow][usecase] simulate start")
	conditions, simErr := partner.Simulate(ctx, req)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = false
	if r.cancelled {
		return r.view(), ErrWorkflowNotFound
	}
	if simErr != nil {
		log.WithError(simErr).Warn("[workflow][usecase] simulate failed")
		r.state = entities.WorkflowContractSelection
		r.lastError = simErr.Error()
		r.touch()
		return r.view(), simErr
	}
	r.state = entities.WorkflowConditionSelection
	r.conditions = conditions
	r.simulated = req.ContractIDs
	r.lastError = ""
	r.touch()
	log.WithField("conditions", len(conditions)).Info("[workflow][usecase] simulate success")
	return r.view(), nil
}

// RestartSimulation is the only backward move: the selection is kept,
// conditions are discarded.
func (w *WorkflowUseCase) RestartSimulation(id string) (RunView, error) {
	r, err := w.get(id)
	if err != nil {
		return RunView{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.expect(entities.WorkflowConditionSelection, entities.WorkflowDigitizing); err != nil {
		return r.view(), err
	}
	r.state = entities.WorkflowContractSelection
	r.conditions = nil
	r.condition = nil
	r.simulated = nil
	r.lastError = ""
	r.touch()
	return r.view(), nil
}

func (w *WorkflowUseCase) SelectCondition(id string, index int, insuranceCode string) (RunView, error) {
	r, err := w.get(id)
	if err != nil {
		return RunView{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.expect(entities.WorkflowConditionSelection); err != nil {
		return r.view(), err
	}
	if index < 0 || index >= len(r.conditions) {
		return r.view(), ErrInvalidConditionIndex
	}
	c, err := r.conditions[index].WithInsurance(strings.TrimSpace(insuranceCode))
	if err != nil {
		return r.view(), err
	}
	r.condition = &c
	r.state = entities.WorkflowDigitizing
	r.touch()
	return r.view(), nil
}

// Digitize submits the proposal with the contract set that was simulated.
// A partner rejection keeps the run in digitizing so the operator can fix
// the data and resubmit without simulating again.
func (w *WorkflowUseCase) Digitize(ctx context.Context, id string, in DigitizationInput) (RunView, error) {
	r, err := w.get(id)
	if err != nil {
		return RunView{}, err
	}

	r.mu.Lock()
	if err := r.expect(entities.WorkflowDigitizing); err != nil {
		defer r.mu.Unlock()
		return r.view(), err
	}
	beneficiary := in.Beneficiary
	beneficiary.CPF = entities.NormalizeCPF(beneficiary.CPF)
	if beneficiary.CPF == "" {
		beneficiary.CPF = r.lookup.Beneficiary.CPF
	} else if beneficiary.CPF != r.lookup.Beneficiary.CPF {
		defer r.mu.Unlock()
		return r.view(), ErrBeneficiaryMismatch
	}
	req := entities.DigitizationRequest{
		EnrollmentID: r.enrollmentID,
		Beneficiary:  beneficiary,
		BankAccount:  in.BankAccount,
		Condition:    *r.condition,
		ContractIDs:  append([]string(nil), r.simulated...),
	}
	if err := req.Validate(); err != nil {
		defer r.mu.Unlock()
		return r.view(), err
	}
	r.busy = true
	partner, operatorID := r.partner, r.operatorID
	r.mu.Unlock()

	log := logrus.WithFields(logrus.Fields{"run_id": id, "bank": partner.Name()})
	log.Info("[workflow][usecase] digitize start")
	proposalNumber, digErr := partner.DigitizeProposal(ctx, req)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = false
	if r.cancelled {
		return r.view(), ErrWorkflowNotFound
	}
	if digErr != nil {
		log.WithError(digErr).Warn("[workflow][usecase] digitize failed")
		r.lastError = digErr.Error()
		r.touch()
		return r.view(), digErr
	}

	log = log.WithField("proposal_number", proposalNumber)
	log.Info("[workflow][usecase] digitize success")
	record := entities.NewDigitizationRecord(partner.Name(), operatorID, proposalNumber, req)
	recCtx, cancel := recordContext(ctx, w.poller.Policy().CallTimeout)
	defer cancel()
	if created, err := w.recorder.Create(recCtx, record); err != nil {
		log.WithError(err).Error("[workflow][usecase] recording digitization failed")
	} else {
		record = created
	}

	r.proposalNumber = proposalNumber
	r.record = &record
	r.lastError = ""
	r.state = entities.WorkflowFormalizationPolling
	r.touch()
	r.task = w.poller.Start(partner, proposalNumber, func(rep entities.PollReport) {
		w.finishPolling(r, rep)
	})
	return r.view(), nil
}

func (w *WorkflowUseCase) finishPolling(r *run, rep entities.PollReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancelled || r.state != entities.WorkflowFormalizationPolling {
		return
	}
	switch rep.Outcome {
	case entities.PollFound:
		r.state = entities.WorkflowFound
		if r.record != nil {
			url := rep.URL
			r.record.Status = entities.DigitizationStatusApproved
			r.record.FormalizationLink = &url
		}
	case entities.PollExhausted:
		r.state = entities.WorkflowExhausted
	default:
		return
	}
	r.touch()
	logrus.WithFields(logrus.Fields{"run_id": r.id, "state": r.state}).Info("[workflow][usecase] polling finished")
}

// Cancel drops the run and stops its polling task, if any.
func (w *WorkflowUseCase) Cancel(id string) (RunView, error) {
	w.mu.Lock()
	r, ok := w.runs[id]
	delete(w.runs, id)
	w.mu.Unlock()
	if !ok {
		return RunView{}, ErrWorkflowNotFound
	}

	r.mu.Lock()
	r.cancelled = true
	task := r.task
	r.mu.Unlock()
	if task != nil {
		task.Cancel()
		<-task.Done()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	logrus.WithField("run_id", id).Info("[workflow][usecase] cancelled")
	return r.view(), nil
}

func (w *WorkflowUseCase) get(id string) (*run, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.runs[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrWorkflowNotFound
	}
	return r, nil
}

// pruneLocked drops runs idle for longer than the TTL and returns their polling
// tasks for the caller to cancel once w.mu is released. Caller holds w.mu.
// A run whose lock is held is in use and is skipped.
func (w *WorkflowUseCase) pruneLocked(now time.Time) []*PollTask {
	var stopped []*PollTask
	for id, r := range w.runs {
		if !r.mu.TryLock() {
			continue
		}
		stale := !r.busy && now.Sub(r.updatedAt) > w.ttl
		if stale {
			r.cancelled = true
			if r.task != nil {
				stopped = append(stopped, r.task)
			}
			delete(w.runs, id)
		}
		r.mu.Unlock()
	}
	return stopped
}

// expect checks the run is idle and in one of states. Caller holds r.mu.
func (r *run) expect(states ...entities.WorkflowState) error {
	if r.busy {
		return ErrStepInProgress
	}
	for _, s := range states {
		if r.state == s {
			return nil
		}
	}
	return ErrInvalidWorkflowStep
}

func (r *run) touch() { r.updatedAt = time.Now().UTC() }

func (r *run) view() RunView {
	v := RunView{
		ID:                r.id,
		Bank:              r.bank,
		OperatorID:        r.operatorID,
		State:             r.state,
		Lookup:            r.lookup,
		EnrollmentID:      r.enrollmentID,
		SelectedContracts: append([]string(nil), r.selected...),
		Conditions:        append([]entities.CreditCondition(nil), r.conditions...),
		ProposalNumber:    r.proposalNumber,
		LastError:         r.lastError,
		CreatedAt:         r.createdAt,
		UpdatedAt:         r.updatedAt,
	}
	if r.condition != nil {
		c := *r.condition
		v.Condition = &c
	}
	if r.record != nil {
		rec := *r.record
		v.Record = &rec
	}
	if r.task != nil {
		rep := r.task.Report()
		v.Poll = &rep
	}
	return v
}
