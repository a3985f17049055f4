package entities

import "time"

// FormalizationLink is the signing URL for a proposal. An empty URL means
// the partner has not generated it yet.
type FormalizationLink struct {
	URL    string `json:"url,omitempty"`
	Active bool   `json:"active"`
}

func (l FormalizationLink) Ready() bool {
	return l.URL != "" && l.Active
}

// PollOutcome is the state of a formalization polling task.
// PollExhausted is the timeout outcome: the operator must consult the partner directly.
type PollOutcome string

const (
	PollRunning   PollOutcome = "running"
	PollFound     PollOutcome = "found"
	PollExhausted PollOutcome = "exhausted"
	PollCancelled PollOutcome = "cancelled"
)

type PollReport struct {
	ProposalNumber string      `json:"proposal_number"`
	Bank           string      `json:"bank"`
	Attempts       int         `json:"attempts"`
	MaxAttempts    int         `json:"max_attempts"`
	Outcome        PollOutcome `json:"outcome"`
	URL            string      `json:"url,omitempty"`
	StartedAt      time.Time   `json:"started_at"`
	FinishedAt     *time.Time  `json:"finished_at,omitempty"`
}
