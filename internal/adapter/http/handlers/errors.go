package handlers

import (
	"errors"
	"net/http"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase"
	"inss_refin/internal/usecase/interfaces"
	"inss_refin/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingBank    = pkg.NewDomainErrorSimple("UNKNOWN_BANK", "Unknown partner bank", http.StatusNotFound)
)

// mapError translates usecase and partner errors into the API error shape.
// Partner messages are passed through verbatim.
func mapError(err error) *pkg.AppError {
	var (
		comm   *entities.CommunicationError
		simErr *entities.SimulationError
		digErr *entities.DigitizationError
	)
	if appErr := pkg.FromValidationError(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.As(err, &comm):
		return pkg.NewDomainError("PARTNER_UNAVAILABLE", "Partner unavailable", err, http.StatusBadGateway).
			WithDetail(comm.Error()).
			WithRetriable(true)
	case errors.As(err, &simErr):
		return pkg.NewDomainError("SIMULATION_REJECTED", "Simulation rejected", err, http.StatusUnprocessableEntity).
			WithDetail(simErr.Message)
	case errors.As(err, &digErr):
		fields := make([]pkg.FieldError, 0, len(digErr.Fields))
		for _, f := range digErr.Fields {
			fields = append(fields, pkg.FieldError{Field: f.Field, Message: f.Message})
		}
		return pkg.NewDomainError("DIGITIZATION_REJECTED", "Digitization rejected", err, http.StatusUnprocessableEntity).
			WithDetail(digErr.Detail()).
			WithRetriable(digErr.Retriable).
			WithFields(fields...)

	case errors.Is(err, usecase.ErrUnknownBank):
		return errMissingBank.WithDetail(err.Error())
	case errors.Is(err, usecase.ErrDigitizationNotFound):
		return pkg.NewDomainErrorSimple("DIGITIZATION_NOT_FOUND", "Digitization not found", http.StatusNotFound).WithDetail(notFoundDetail(err))
	case errors.Is(err, usecase.ErrWorkflowNotFound):
		return pkg.NewDomainErrorSimple("WORKFLOW_NOT_FOUND", "Workflow not found", http.StatusNotFound).WithDetail("The workflow expired or was cancelled")
	case errors.Is(err, usecase.ErrPollingNotStarted):
		return pkg.NewDomainErrorSimple("POLLING_NOT_STARTED", "Polling not started", http.StatusNotFound).WithDetail("No formalization polling exists for this proposal")
	case errors.Is(err, interfaces.ErrBeneficiaryNotFound):
		return pkg.NewDomainErrorSimple("BENEFICIARY_NOT_FOUND", "Beneficiary not found", http.StatusNotFound).WithDetail("No INSS benefit found for this CPF")

	case errors.Is(err, usecase.ErrDigitizationAlreadyExists):
		return pkg.NewDomainErrorSimple("DIGITIZATION_ALREADY_EXISTS", "Digitization already exists", http.StatusConflict).WithDetail("This proposal number is already recorded")
	case errors.Is(err, usecase.ErrMixedEnrollments):
		return pkg.NewDomainErrorSimple("MIXED_ENROLLMENTS", "Mixed enrollments", http.StatusConflict).WithDetail("All selected contracts must belong to the same benefit; the previous selection was kept")
	case errors.Is(err, usecase.ErrInvalidWorkflowStep):
		return pkg.NewDomainErrorSimple("INVALID_WORKFLOW_STEP", "Invalid workflow step", http.StatusConflict).WithDetail(err.Error())
	case errors.Is(err, usecase.ErrStepInProgress):
		return pkg.NewDomainErrorSimple("STEP_IN_PROGRESS", "Step in progress", http.StatusConflict).WithDetail("Wait for the current step of this workflow to finish").WithRetriable(true)

	case errors.Is(err, usecase.ErrInvalidCPF):
		return errInvalidPayload.WithDetail("CPF must have 11 digits and valid check digits")
	case errors.Is(err, entities.ErrMultipleInsurances):
		return errInvalidPayload.WithDetail("Only one insurance may be contracted per proposal")
	case errors.Is(err, entities.ErrNoContracts),
		errors.Is(err, entities.ErrDuplicateContract),
		errors.Is(err, entities.ErrInvalidSimulationIn),
		errors.Is(err, entities.ErrUnknownInsurance),
		errors.Is(err, usecase.ErrUnknownContract),
		errors.Is(err, usecase.ErrInvalidConditionIndex),
		errors.Is(err, usecase.ErrBeneficiaryMismatch),
		errors.Is(err, usecase.ErrInvalidProposalNumber),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPeriod):
		return errInvalidPayload.WithDetail(err.Error())
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func notFoundDetail(err error) string {
	var nf *entities.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return err.Error()
}

func respondError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	entry := logrus.WithFields(logrus.Fields{"code": appErr.Code, "status": appErr.HTTPStatus, "path": c.FullPath()}).WithError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.HTTPStatus != http.StatusBadGateway {
		entry.Error("[" + area + "][handler] request failed")
	} else {
		entry.Warn("[" + area + "][handler] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, err error) {
	appErr := pkg.FromValidationError(err)
	if appErr == nil {
		appErr = errInvalidPayload.WithDetail("Malformed JSON body")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

const (
	// BankKey is the gin context key holding the partner slug of /api/<bank> routes.
	BankKey          = "bank"
	OperatorIDHeader = "X-Operator-ID"
)

// BankScope pins every request of a route group to one partner bank.
func BankScope(bank string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(BankKey, bank)
		c.Next()
	}
}

func bankOf(c *gin.Context) string {
	return c.GetString(BankKey)
}

func operatorOf(c *gin.Context) string {
	return c.GetHeader(OperatorIDHeader)
}
