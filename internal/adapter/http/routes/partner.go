package routes

import (
	"inss_refin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMulticorban = "/multicorban"

// addPartnerRoutes registers /api/<bank>/... and /api/<bank>-digitizations for one bank.
func addPartnerRoutes(api *gin.RouterGroup, bank string, proposal *handlers.ProposalHandler, digitization *handlers.DigitizationHandler) {
	partner := api.Group("/"+bank, handlers.BankScope(bank))
	{
		partner.POST("/simulate", proposal.Simulate)
		partner.POST("/include-proposal", proposal.IncludeProposal)
		partner.GET("/formalization-link/:proposalNumber", proposal.FormalizationLink)
		partner.POST("/formalization-link-attempts/:proposalNumber", proposal.StartPolling)
		partner.GET("/formalization-link-attempts/:proposalNumber", proposal.PollingReport)
		partner.DELETE("/formalization-link-attempts/:proposalNumber", proposal.CancelPolling)
	}

	history := api.Group("/"+bank+"-digitizations", handlers.BankScope(bank))
	{
		history.GET("", digitization.List)
		history.POST("", digitization.Create)
		history.POST("/refresh-status", digitization.RefreshStatus)
		history.GET("/:id", digitization.Get)
		history.PUT("/:id/status", digitization.UpdateStatus)
	}
}

func addBenefitRoutes(api *gin.RouterGroup, benefit *handlers.BenefitHandler) {
	multicorban := api.Group(PathMulticorban)
	{
		multicorban.POST("/cpf", benefit.LookupByCPF)
	}
}
