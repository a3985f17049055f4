package handlers

import (
	"net/http"

	request "inss_refin/internal/adapter/http/dto/request"
	response "inss_refin/internal/adapter/http/dto/response"
	"inss_refin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DigitizationHandler serves the digitization history under /api/<bank>-digitizations.
type DigitizationHandler struct {
	usecase usecase.IDigitizationUseCase
}

func NewDigitizationHandler(uc usecase.IDigitizationUseCase) *DigitizationHandler {
	return &DigitizationHandler{usecase: uc}
}

// List godoc
// @Summary      List digitizations, newest first
// @Tags         digitizations
// @Produce      json
// @Param        client_name      query  string  false  "Client name fragment"
// @Param        cpf              query  string  false  "CPF fragment"
// @Param        proposal_number  query  string  false  "Proposal number fragment"
// @Param        status           query  string  false  "Exact status"
// @Param        period           query  string  false  "today, 7d, 30d or all"
// @Success      200  {object}  response.DigitizationListResponse
// @Router       /api/{bank}-digitizations [get]
func (h *DigitizationHandler) List(c *gin.Context) {
	var q request.DigitizationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalid(c, err)
		return
	}

	records, err := h.usecase.List(c.Request.Context(), q.ToFilter(bankOf(c)))
	if err != nil {
		respondError(c, "digitization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDigitizations(records))
}

// Create godoc
// @Summary      Record a digitization
// @Tags         digitizations
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateDigitizationRequest  true  "Record"
// @Success      201      {object}  response.DigitizationResponse
// @Failure      400,409  {object}  pkg.HTTPError
// @Router       /api/{bank}-digitizations [post]
func (h *DigitizationHandler) Create(c *gin.Context) {
	var payload request.CreateDigitizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}

	record, err := h.usecase.Create(c.Request.Context(), payload.ToDomain(bankOf(c), operatorOf(c)))
	if err != nil {
		respondError(c, "digitization", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDigitization(record))
}

// Get godoc
// @Summary      Get a digitization by proposal number
// @Tags         digitizations
// @Produce      json
// @Param        id   path      string  true  "Proposal number"
// @Success      200  {object}  response.DigitizationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/{bank}-digitizations/{id} [get]
func (h *DigitizationHandler) Get(c *gin.Context) {
	record, err := h.usecase.GetByProposalNumber(c.Request.Context(), bankOf(c), c.Param("id"))
	if err != nil {
		respondError(c, "digitization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDigitization(record))
}

// UpdateStatus godoc
// @Summary      Update status and signing link
// @Tags         digitizations
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Proposal number"
// @Param        payload  body      request.UpdateStatusRequest  true  "New status"
// @Success      200      {object}  response.DigitizationResponse
// @Failure      400,404  {object}  pkg.HTTPError
// @Router       /api/{bank}-digitizations/{id}/status [put]
func (h *DigitizationHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}

	record, err := h.usecase.UpdateStatus(c.Request.Context(), bankOf(c), c.Param("id"), payload.ToDomain())
	if err != nil {
		respondError(c, "digitization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDigitization(record))
}

// RefreshStatus godoc
// @Summary      Reconcile pending digitizations with the partner
// @Tags         digitizations
// @Produce      json
// @Success      200  {object}  response.RefreshReportResponse
// @Router       /api/{bank}-digitizations/refresh-status [post]
func (h *DigitizationHandler) RefreshStatus(c *gin.Context) {
	report, err := h.usecase.RefreshAll(c.Request.Context(), bankOf(c))
	if err != nil {
		respondError(c, "digitization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRefreshReport(report))
}
