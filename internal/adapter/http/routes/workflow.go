package routes

import (
	"inss_refin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWorkflows = "/workflows"

func addWorkflowRoutes(rg *gin.RouterGroup, workflow *handlers.WorkflowHandler) {
	workflows := rg.Group(PathWorkflows)
	{
		workflows.POST("", workflow.Start)
		workflows.GET("/:id", workflow.Get)
		workflows.DELETE("/:id", workflow.Cancel)
		workflows.PUT("/:id/contracts", workflow.SelectContracts)
		workflows.POST("/:id/simulate", workflow.Simulate)
		workflows.POST("/:id/restart", workflow.Restart)
		workflows.PUT("/:id/condition", workflow.SelectCondition)
		workflows.POST("/:id/digitize", workflow.Digitize)
	}
}
