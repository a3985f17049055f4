package handlers

import (
	"net/http"

	request "inss_refin/internal/adapter/http/dto/request"
	response "inss_refin/internal/adapter/http/dto/response"
	"inss_refin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler drives a proposal workflow run step by step.
type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// Start godoc
// @Summary      Start a workflow for a beneficiary
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        X-Operator-ID  header    string                        false  "Operator id"
// @Param        payload        body      request.StartWorkflowRequest  true   "Bank and CPF"
// @Success      201            {object}  response.WorkflowResponse
// @Failure      400,404,502    {object}  pkg.HTTPError
// @Router       /workflows [post]
func (h *WorkflowHandler) Start(c *gin.Context) {
	var payload request.StartWorkflowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	view, err := h.usecase.Start(c.Request.Context(), payload.Bank, payload.CPF, operatorOf(c))
	if err != nil {
		respondError(c, "workflow", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRunView(view))
}

// Get godoc
// @Summary      Workflow snapshot
// @Tags         workflows
// @Produce      json
// @Param        id   path      string  true  "Workflow id"
// @Success      200  {object}  response.WorkflowResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /workflows/{id} [get]
func (h *WorkflowHandler) Get(c *gin.Context) {
	h.reply(c)(h.usecase.Get(c.Param("id")))
}

// SelectContracts godoc
// @Summary      Select the contracts to refinance
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Workflow id"
// @Param        payload  body      request.SelectContractsRequest  true  "Contract ids"
// @Success      200      {object}  response.WorkflowResponse
// @Failure      400,409  {object}  pkg.HTTPError
// @Router       /workflows/{id}/contracts [put]
func (h *WorkflowHandler) SelectContracts(c *gin.Context) {
	var payload request.SelectContractsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	h.reply(c)(h.usecase.SelectContracts(c.Param("id"), payload.ContractIDs))
}

// Simulate godoc
// @Summary      Simulate the selected contracts
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        id       path      string                             true  "Workflow id"
// @Param        payload  body      request.WorkflowSimulationRequest  true  "Terms"
// @Success      200      {object}  response.WorkflowResponse
// @Failure      400,409,422,502  {object}  pkg.HTTPError
// @Router       /workflows/{id}/simulate [post]
func (h *WorkflowHandler) Simulate(c *gin.Context) {
	var payload request.WorkflowSimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	h.reply(c)(h.usecase.Simulate(c.Request.Context(), c.Param("id"), payload.ToParams()))
}

// Restart godoc
// @Summary      Go back to contract selection
// @Tags         workflows
// @Produce      json
// @Param        id   path      string  true  "Workflow id"
// @Success      200  {object}  response.WorkflowResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /workflows/{id}/restart [post]
func (h *WorkflowHandler) Restart(c *gin.Context) {
	h.reply(c)(h.usecase.RestartSimulation(c.Param("id")))
}

// SelectCondition godoc
// @Summary      Choose a condition and its insurance
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Workflow id"
// @Param        payload  body      request.SelectConditionRequest  true  "Condition index and insurance code"
// @Success      200      {object}  response.WorkflowResponse
// @Failure      400,409  {object}  pkg.HTTPError
// @Router       /workflows/{id}/condition [put]
func (h *WorkflowHandler) SelectCondition(c *gin.Context) {
	var payload request.SelectConditionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	h.reply(c)(h.usecase.SelectCondition(c.Param("id"), *payload.Index, payload.InsuranceOrEmpty()))
}

// Digitize godoc
// @Summary      Digitize the chosen condition
// @Description  On success the run moves to formalization polling.
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Workflow id"
// @Param        payload  body      request.WorkflowDigitizeRequest  true  "Personal and bank data"
// @Success      200      {object}  response.WorkflowResponse
// @Failure      400,409,422,502  {object}  pkg.HTTPError
// @Router       /workflows/{id}/digitize [post]
func (h *WorkflowHandler) Digitize(c *gin.Context) {
	var payload request.WorkflowDigitizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	h.reply(c)(h.usecase.Digitize(c.Request.Context(), c.Param("id"), payload.ToInput()))
}

// Cancel godoc
// @Summary      Cancel a workflow and its polling
// @Tags         workflows
// @Produce      json
// @Param        id   path      string  true  "Workflow id"
// @Success      200  {object}  response.WorkflowResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /workflows/{id} [delete]
func (h *WorkflowHandler) Cancel(c *gin.Context) {
	h.reply(c)(h.usecase.Cancel(c.Param("id")))
}

func (h *WorkflowHandler) reply(c *gin.Context) func(usecase.RunView, error) {
	return func(view usecase.RunView, err error) {
		if err != nil {
			respondError(c, "workflow", err)
			return
		}
		c.JSON(http.StatusOK, response.FromRunView(view))
	}
}
