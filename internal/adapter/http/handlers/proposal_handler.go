package handlers

import (
	"net/http"

	request "inss_refin/internal/adapter/http/dto/request"
	response "inss_refin/internal/adapter/http/dto/response"
	"inss_refin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProposalHandler serves the stateless partner operations under /api/<bank>.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// Simulate godoc
// @Summary      Simulate a refinancing
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SimulationRequest  true  "Contracts and desired terms"
// @Success      200      {object}  response.SimulationResponse
// @Failure      400,422,502  {object}  pkg.HTTPError
// @Router       /api/{bank}/simulate [post]
func (h *ProposalHandler) Simulate(c *gin.Context) {
	var payload request.SimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}

	bank := bankOf(c)
	conditions, err := h.usecase.Simulate(c.Request.Context(), bank, payload.ToDomain())
	if err != nil {
		respondError(c, "proposal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromConditions(bank, conditions))
}

// IncludeProposal godoc
// @Summary      Digitize a proposal with the partner bank
// @Description  Records the digitization as pending once the partner assigns a proposal number.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        X-Operator-ID  header    string                            false  "Operator id"
// @Param        payload        body      request.IncludeProposalRequest    true   "Proposal"
// @Success      201            {object}  response.DigitizationResponse
// @Failure      400,422,502    {object}  pkg.HTTPError
// @Router       /api/{bank}/include-proposal [post]
func (h *ProposalHandler) IncludeProposal(c *gin.Context) {
	var payload request.IncludeProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}

	record, err := h.usecase.IncludeProposal(c.Request.Context(), bankOf(c), operatorOf(c), payload.ToDomain())
	if err != nil {
		respondError(c, "proposal", err)
		return
	}
	logrus.WithFields(logrus.Fields{"bank": record.Bank, "proposal_number": record.ProposalNumber}).Info("[proposal][handler] included")
	c.JSON(http.StatusCreated, response.FromDigitization(record))
}

// FormalizationLink godoc
// @Summary      Fetch the signing link once
// @Tags         proposals
// @Produce      json
// @Param        proposalNumber  path      string  true  "Proposal number"
// @Success      200             {object}  response.FormalizationLinkResponse
// @Failure      502             {object}  pkg.HTTPError
// @Router       /api/{bank}/formalization-link/{proposalNumber} [get]
func (h *ProposalHandler) FormalizationLink(c *gin.Context) {
	proposalNumber := c.Param("proposalNumber")
	link, err := h.usecase.FormalizationLink(c.Request.Context(), bankOf(c), proposalNumber)
	if err != nil {
		respondError(c, "proposal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormalizationLink(proposalNumber, link))
}

// StartPolling godoc
// @Summary      Start polling for the signing link
// @Description  Up to 15 attempts, 20 seconds apart. Returns the running task if one exists.
// @Tags         proposals
// @Produce      json
// @Param        proposalNumber  path      string  true  "Proposal number"
// @Success      202             {object}  response.PollReportResponse
// @Router       /api/{bank}/formalization-link-attempts/{proposalNumber} [post]
func (h *ProposalHandler) StartPolling(c *gin.Context) {
	report, err := h.usecase.StartFormalizationPolling(bankOf(c), c.Param("proposalNumber"))
	if err != nil {
		respondError(c, "formalization", err)
		return
	}
	c.JSON(http.StatusAccepted, response.FromPollReport(report))
}

// PollingReport godoc
// @Summary      Polling progress
// @Tags         proposals
// @Produce      json
// @Param        proposalNumber  path      string  true  "Proposal number"
// @Success      200             {object}  response.PollReportResponse
// @Failure      404             {object}  pkg.HTTPError
// @Router       /api/{bank}/formalization-link-attempts/{proposalNumber} [get]
func (h *ProposalHandler) PollingReport(c *gin.Context) {
	report, err := h.usecase.FormalizationPollingReport(bankOf(c), c.Param("proposalNumber"))
	if err != nil {
		respondError(c, "formalization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPollReport(report))
}

// CancelPolling godoc
// @Summary      Cancel polling
// @Tags         proposals
// @Produce      json
// @Param        proposalNumber  path      string  true  "Proposal number"
// @Success      200             {object}  response.PollReportResponse
// @Failure      404             {object}  pkg.HTTPError
// @Router       /api/{bank}/formalization-link-attempts/{proposalNumber} [delete]
func (h *ProposalHandler) CancelPolling(c *gin.Context) {
	report, err := h.usecase.CancelFormalizationPolling(bankOf(c), c.Param("proposalNumber"))
	if err != nil {
		respondError(c, "formalization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPollReport(report))
}
