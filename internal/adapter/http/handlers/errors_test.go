package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("wrapped: %w", &entities.CommunicationError{Bank: "c6"}), http.StatusBadGateway, "PARTNER_UNAVAILABLE"},
		{usecase.ErrStepInProgress, http.StatusConflict, "STEP_IN_PROGRESS"},
		{usecase.ErrWorkflowNotFound, http.StatusNotFound, "WORKFLOW_NOT_FOUND"},
		{entities.ErrMultipleInsurances, http.StatusBadRequest, "INVALID_REQUEST"},
		{entities.ErrInvalidSimulationIn, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrUnknownBank, http.StatusNotFound, "UNKNOWN_BANK"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("mapError(%v) = %d %s, want %d %s", tc.err, got.HTTPStatus, got.Code, tc.status, tc.code)
			}
			if got.ToHTTPError().Message == "" {
				t.Fatalf("every error needs a description")
			}
		})
	}
}

func TestMapError_PartnerStatusKeepsPartnerText(t *testing.T) {
	err := &entities.CommunicationError{Bank: "safra", Operation: "simulate", StatusCode: http.StatusServiceUnavailable, Err: errors.New("janela de manutenção")}

	got := mapError(err).ToHTTPError()
	if got.Message != "safra simulate: partner answered HTTP 503: janela de manutenção" || !got.Retriable {
		t.Fatalf("unexpected error body: %+v", got)
	}
}
