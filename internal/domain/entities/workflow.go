package entities

// WorkflowState is a step of the proposal workflow. Steps only move forward,
// except that a run may go back to contract selection to re-simulate.
type WorkflowState string

const (
	WorkflowContractSelection    WorkflowState = "contract-selection"
	WorkflowSimulating           WorkflowState = "simulating"
	WorkflowConditionSelection   WorkflowState = "condition-selection"
	WorkflowDigitizing           WorkflowState = "digitizing"
	WorkflowFormalizationPolling WorkflowState = "formalization-polling"
	WorkflowFound                WorkflowState = "found"
	WorkflowExhausted            WorkflowState = "exhausted"
)

func (s WorkflowState) IsTerminal() bool {
	return s == WorkflowFound || s == WorkflowExhausted
}
