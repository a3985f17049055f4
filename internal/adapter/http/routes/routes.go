package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "inss_refin/docs"
	"inss_refin/internal/adapter/http/handlers"
	"inss_refin/internal/infrastructure/config"
	"inss_refin/internal/infrastructure/logging"
	"inss_refin/internal/usecase"
	"inss_refin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the adapters the router is built on. Benefits may be nil,
// in which case benefit lookup and workflows are not exposed.
type Dependencies struct {
	Partners   usecase.PartnerDirectory
	Store      interfaces.IDigitizationRepository
	Benefits   interfaces.IBenefitProvider
	PollPolicy usecase.PollPolicy
}

// Run wires the adapters from configuration and starts the server.
func Run(cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	deps, closeStore, err := buildDependencies(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("wire dependencies: %w", err)
	}
	defer closeStore()

	router := NewRouter(deps)
	logrus.WithFields(logrus.Fields{"port": cfg.Port, "banks": deps.Partners.Names(), "store": cfg.Store}).Info("[api] starting")
	return router.Run(":" + strconv.Itoa(cfg.Port))
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	digitizations := usecase.NewDigitizationUseCase(deps.Store, deps.Partners)
	poller := usecase.NewFormalizationPoller(digitizations, deps.PollPolicy)
	proposals := usecase.NewProposalUseCase(deps.Partners, digitizations, poller)

	proposalHandler := handlers.NewProposalHandler(proposals)
	digitizationHandler := handlers.NewDigitizationHandler(digitizations)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := router.Group("/api")
	for _, bank := range deps.Partners.Names() {
		addPartnerRoutes(api, bank, proposalHandler, digitizationHandler)
	}

	if deps.Benefits == nil {
		logrus.Warn("[api] benefit provider not configured, benefit lookup and workflows disabled")
		return router
	}
	benefits := usecase.NewBenefitUseCase(deps.Benefits)
	workflows := usecase.NewWorkflowUseCase(deps.Partners, benefits, digitizations, poller)

	addBenefitRoutes(api, handlers.NewBenefitHandler(benefits))
	addWorkflowRoutes(v1, handlers.NewWorkflowHandler(workflows))
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logging.Middleware())
	router.Use(logging.Recovery())
}
