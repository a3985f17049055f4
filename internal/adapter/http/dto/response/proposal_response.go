package response

import (
	"fmt"
	"time"

	"inss_refin/internal/domain/entities"
)

type ConditionResponse struct {
	Index int `json:"index"`
	entities.CreditCondition
}

type SimulationResponse struct {
	Bank       string              `json:"bank"`
	Conditions []ConditionResponse `json:"conditions"`
}

// FromConditions keeps the partner's order; Index is what the operator sends
// back when choosing a condition.
func FromConditions(bank string, conditions []entities.CreditCondition) SimulationResponse {
	out := SimulationResponse{Bank: bank, Conditions: make([]ConditionResponse, 0, len(conditions))}
	for i, c := range conditions {
		out.Conditions = append(out.Conditions, ConditionResponse{Index: i, CreditCondition: c})
	}
	return out
}

type FormalizationLinkResponse struct {
	ProposalNumber string `json:"proposal_number"`
	URL            string `json:"url,omitempty"`
	Active         bool   `json:"active"`
	Ready          bool   `json:"ready"`
}

func FromFormalizationLink(proposalNumber string, l entities.FormalizationLink) FormalizationLinkResponse {
	return FormalizationLinkResponse{
		ProposalNumber: proposalNumber,
		URL:            l.URL,
		Active:         l.Active,
		Ready:          l.Ready(),
	}
}

type PollReportResponse struct {
	ProposalNumber string     `json:"proposal_number"`
	Bank           string     `json:"bank"`
	Outcome        string     `json:"outcome"`
	Attempts       int        `json:"attempts"`
	MaxAttempts    int        `json:"max_attempts"`
	URL            string     `json:"url,omitempty"`
	Message        string     `json:"message"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
}

func FromPollReport(r entities.PollReport) PollReportResponse {
	return PollReportResponse{
		ProposalNumber: r.ProposalNumber,
		Bank:           r.Bank,
		Outcome:        string(r.Outcome),
		Attempts:       r.Attempts,
		MaxAttempts:    r.MaxAttempts,
		URL:            r.URL,
		Message:        pollMessage(r),
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
	}
}

func pollMessage(r entities.PollReport) string {
	switch r.Outcome {
	case entities.PollFound:
		return "Formalization link available"
	case entities.PollExhausted:
		return fmt.Sprintf("Link not available after %d attempts, check the proposal directly with %s", r.Attempts, r.Bank)
	case entities.PollCancelled:
		return "Polling cancelled"
	default:
		return fmt.Sprintf("Waiting for the formalization link (attempt %d of %d)", r.Attempts, r.MaxAttempts)
	}
}
