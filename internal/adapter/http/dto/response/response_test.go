package response

import (
	"testing"
	"time"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase"
)

func TestFromConditions(t *testing.T) {
	res := FromConditions("c6", []entities.CreditCondition{{ProductCode: "B"}, {ProductCode: "A"}})
	if res.Bank != "c6" || len(res.Conditions) != 2 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Conditions[0].Index != 0 || res.Conditions[0].ProductCode != "B" || res.Conditions[1].ProductCode != "A" {
		t.Fatalf("order not preserved: %+v", res.Conditions)
	}
}

func TestFromPollReport(t *testing.T) {
	exhausted := FromPollReport(entities.PollReport{Bank: "safra", Attempts: 15, MaxAttempts: 15, Outcome: entities.PollExhausted})
	if exhausted.Outcome != "exhausted" || exhausted.Message != "Link not available after 15 attempts, check the proposal directly with safra" {
		t.Fatalf("unexpected exhausted message: %+v", exhausted)
	}
	running := FromPollReport(entities.PollReport{Attempts: 3, MaxAttempts: 15, Outcome: entities.PollRunning})
	if running.Message != "Waiting for the formalization link (attempt 3 of 15)" {
		t.Fatalf("unexpected running message: %q", running.Message)
	}
}

func TestFromDigitization(t *testing.T) {
	now := time.Now().UTC()
	res := FromDigitization(entities.DigitizationRecord{ProposalNumber: "P1", Status: entities.DigitizationStatusPending, CreatedAt: now})
	if res.ProposalNumber != "P1" || res.Status != "pending" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.SelectedContracts == nil || res.FormalizationLink != nil {
		t.Fatalf("expected empty contracts and nil link: %+v", res)
	}

	list := FromDigitizations(nil)
	if list.Total != 0 || list.Items == nil {
		t.Fatalf("unexpected empty list: %+v", list)
	}
}

func TestFromBenefitLookup(t *testing.T) {
	res := FromBenefitLookup(entities.BenefitLookup{Benefits: []entities.Benefit{{
		EnrollmentID: "1",
		Contracts:    []entities.Contract{{ID: "c1", OutstandingBalance: 1000}, {ID: "c2", OutstandingBalance: 250.5}},
	}}})
	if res.Benefits[0].ContractCount != 2 || res.Benefits[0].TotalOutstanding != 1250.5 {
		t.Fatalf("unexpected aggregates: %+v", res.Benefits[0])
	}
}

func TestFromRunView(t *testing.T) {
	res := FromRunView(usecase.RunView{ID: "r1", State: entities.WorkflowDigitizing})
	if res.ID != "r1" || len(res.NextActions) != 3 || res.NextActions[0] != "digitize" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if done := FromRunView(usecase.RunView{State: entities.WorkflowFound}); len(done.NextActions) != 0 {
		t.Fatalf("terminal runs have no next actions: %+v", done.NextActions)
	}
}
