package response

import (
	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase"
)

// WorkflowResponse is a run snapshot plus the steps the operator may take next.
type WorkflowResponse struct {
	usecase.RunView
	NextActions []string `json:"next_actions"`
}

func FromRunView(v usecase.RunView) WorkflowResponse {
	return WorkflowResponse{RunView: v, NextActions: nextActions(v.State)}
}

func nextActions(s entities.WorkflowState) []string {
	switch s {
	case entities.WorkflowContractSelection:
		return []string{"select-contracts", "simulate", "cancel"}
	case entities.WorkflowConditionSelection:
		return []string{"select-condition", "simulate", "restart", "cancel"}
	case entities.WorkflowDigitizing:
		return []string{"digitize", "restart", "cancel"}
	case entities.WorkflowFormalizationPolling:
		return []string{"cancel"}
	default:
		return []string{}
	}
}
