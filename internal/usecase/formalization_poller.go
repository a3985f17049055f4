package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPollMaxAttempts = 15
	DefaultPollInterval    = 20 * time.Second
	DefaultPartnerTimeout  = 30 * time.Second
	// DefaultPollRetention is how long a finished task stays queryable.
	DefaultPollRetention = time.Hour
)

var errLinkNotReady = errors.New("formalization link not ready")

// PollPolicy bounds the formalization polling loop. CallTimeout applies to each
// partner call and is independent from the attempt budget.
type PollPolicy struct {
	MaxAttempts int
	Interval    time.Duration
	CallTimeout time.Duration
}

func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		MaxAttempts: DefaultPollMaxAttempts,
		Interval:    DefaultPollInterval,
		CallTimeout: DefaultPartnerTimeout,
	}
}

func (p PollPolicy) normalized() PollPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultPollMaxAttempts
	}
	if p.Interval <= 0 {
		p.Interval = DefaultPollInterval
	}
	if p.CallTimeout <= 0 {
		p.CallTimeout = DefaultPartnerTimeout
	}
	return p
}

type statusRecorder interface {
	UpdateStatus(ctx context.Context, bank, proposalNumber string, upd entities.StatusUpdate) (entities.DigitizationRecord, error)
}

// FormalizationPoller runs one polling task per proposal until the partner
// exposes an active signing link or the attempt budget runs out.
type FormalizationPoller struct {
	recorder  statusRecorder
	policy    PollPolicy
	retention time.Duration

	mu    sync.Mutex
	tasks map[string]*PollTask
}

func NewFormalizationPoller(recorder statusRecorder, policy PollPolicy) *FormalizationPoller {
	return &FormalizationPoller{
		recorder:  recorder,
		policy:    policy.normalized(),
		retention: DefaultPollRetention,
		tasks:     make(map[string]*PollTask),
	}
}

func (p *FormalizationPoller) Policy() PollPolicy { return p.policy }

// Start launches polling for proposalNumber, or returns the task already running
// for it. onDone, when set, receives the final report once.
func (p *FormalizationPoller) Start(partner interfaces.IPartnerBank, proposalNumber string, onDone func(entities.PollReport)) *PollTask {
	key := taskKey(partner.Name(), proposalNumber)

	p.mu.Lock()
	p.pruneLocked(time.Now().UTC())
	if existing, ok := p.tasks[key]; ok && !existing.finished() {
		p.mu.Unlock()
		return existing
	}
	ctx, cancel := context.WithCancel(context.Background())
	task := &PollTask{
		cancel: cancel,
		done:   make(chan struct{}),
		report: entities.PollReport{
			ProposalNumber: proposalNumber,
			Bank:           partner.Name(),
			MaxAttempts:    p.policy.MaxAttempts,
			Outcome:        entities.PollRunning,
			StartedAt:      time.Now().UTC(),
		},
	}
	p.tasks[key] = task
	p.mu.Unlock()

	go p.run(ctx, task, partner, onDone)
	return task
}

func (p *FormalizationPoller) Get(bank, proposalNumber string) (*PollTask, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.tasks[taskKey(bank, proposalNumber)]
	return t, ok
}

func (p *FormalizationPoller) run(ctx context.Context, task *PollTask, partner interfaces.IPartnerBank, onDone func(entities.PollReport)) {
	defer close(task.done)
	proposalNumber := task.report.ProposalNumber
	log := logrus.WithFields(logrus.Fields{"bank": partner.Name(), "proposal_number": proposalNumber})
	log.Info("[formalization][poller] start")

	attempt := func() (entities.FormalizationLink, error) {
		n := task.countAttempt()
		callCtx, cancel := context.WithTimeout(ctx, p.policy.CallTimeout)
		defer cancel()

		link, err := partner.FetchFormalizationLink(callCtx, proposalNumber)
		if err != nil {
			// Transient failures consume the attempt like an empty answer.
			log.WithError(err).WithField("attempt", n).Debug("[formalization][poller] attempt failed")
			return link, errLinkNotReady
		}
		if !link.Ready() {
			log.WithField("attempt", n).Debug("[formalization][poller] link not ready")
			return link, errLinkNotReady
		}
		return link, nil
	}

	link, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(backoff.NewConstantBackOff(p.policy.Interval)),
		backoff.WithMaxTries(uint(p.policy.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
	)

	report := task.finish(func(cancelled bool) entities.PollOutcome {
		switch {
		case cancelled:
			return entities.PollCancelled
		case err != nil:
			return entities.PollExhausted
		}
		url := link.URL
		updCtx, cancel := context.WithTimeout(context.Background(), p.policy.CallTimeout)
		defer cancel()
		if _, uerr := p.recorder.UpdateStatus(updCtx, partner.Name(), proposalNumber, entities.StatusUpdate{
			Status:            entities.DigitizationStatusApproved,
			FormalizationLink: &url,
		}); uerr != nil {
			log.WithError(uerr).Error("[formalization][poller] recording link failed")
		}
		return entities.PollFound
	}, link.URL)

	log.WithFields(logrus.Fields{"outcome": report.Outcome, "attempts": report.Attempts}).Info("[formalization][poller] finished")
	if onDone != nil {
		onDone(report)
	}
}

// pruneLocked drops tasks finished longer than the retention ago. Caller holds p.mu.
// Only tasks whose goroutine has exited are inspected, so no task lock is waited on.
func (p *FormalizationPoller) pruneLocked(now time.Time) {
	for key, t := range p.tasks {
		if !t.finished() {
			continue
		}
		if rep := t.Report(); rep.FinishedAt != nil && now.Sub(*rep.FinishedAt) > p.retention {
			delete(p.tasks, key)
		}
	}
}

func taskKey(bank, proposalNumber string) string {
	return bank + "/" + proposalNumber
}

// PollTask is a cancellable polling run. After Cancel returns no further
// record update is applied by the task.
type PollTask struct {
	mu        sync.Mutex
	cancel    context.CancelFunc
	cancelled bool
	done      chan struct{}
	report    entities.PollReport
}

func (t *PollTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.report.Outcome == entities.PollRunning {
		t.cancelled = true
	}
	t.cancel()
}

func (t *PollTask) Done() <-chan struct{} { return t.done }

func (t *PollTask) finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *PollTask) Report() entities.PollReport {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report
}

func (t *PollTask) countAttempt() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.report.Attempts < t.report.MaxAttempts {
		t.report.Attempts++
	}
	return t.report.Attempts
}

// finish decides the outcome under the task lock so it cannot interleave with Cancel.
func (t *PollTask) finish(decide func(cancelled bool) entities.PollOutcome, url string) entities.PollReport {
	t.mu.Lock()
	defer t.mu.Unlock()
	outcome := decide(t.cancelled)
	now := time.Now().UTC()
	t.report.Outcome = outcome
	t.report.FinishedAt = &now
	if outcome == entities.PollFound {
		t.report.URL = url
	}
	t.cancel()
	return t.report
}
