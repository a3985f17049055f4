package main

import (
	_ "inss_refin/docs"
	"inss_refin/internal/adapter/http/routes"
	"inss_refin/internal/infrastructure/config"
	"inss_refin/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           INSS Refinancing API
// @version         1.0
// @description     Payroll-loan refinancing for INSS beneficiaries: simulation, digitization and formalization with partner banks.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey OperatorID
// @in header
// @name X-Operator-ID
// @description Identifier of the operator submitting proposals.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("[main] invalid configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(cfg); err != nil {
		logrus.Fatalf("[main] server stopped: %v", err)
	}
}
