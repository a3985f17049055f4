package routes

import (
	"context"
	"fmt"

	"inss_refin/internal/adapter/persistence/repository"
	"inss_refin/internal/infrastructure/config"
	"inss_refin/internal/infrastructure/database"
	"inss_refin/internal/infrastructure/multicorban"
	"inss_refin/internal/infrastructure/partners"
	"inss_refin/internal/usecase"
	"inss_refin/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// sandboxLinkAfter is how many link fetches a sandbox proposal needs before
// its signing link shows up.
const sandboxLinkAfter = 3

func buildDependencies(ctx context.Context, cfg config.Config) (Dependencies, func(), error) {
	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return Dependencies{}, nil, err
	}

	deps := Dependencies{
		Partners: buildPartners(cfg),
		Store:    store,
		Benefits: buildBenefitProvider(cfg),
		PollPolicy: usecase.PollPolicy{
			MaxAttempts: cfg.PollMaxAttempts,
			Interval:    cfg.PollInterval,
			CallTimeout: cfg.PartnerTimeout,
		},
	}
	if len(deps.Partners) == 0 {
		logrus.Warn("[api] no partner bank configured")
	}
	return deps, closeStore, nil
}

func buildStore(ctx context.Context, cfg config.Config) (interfaces.IDigitizationRepository, func(), error) {
	switch cfg.Store {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repository.NewDigitizationDynamoRepository(ddb, cfg.DigitizationsTable), func() {}, nil
	default:
		db, err := database.OpenSQLite(cfg.SQLitePath, &repository.DigitizationModel{})
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		closeStore := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewDigitizationGormRepository(db), closeStore, nil
	}
}

func buildPartners(cfg config.Config) usecase.PartnerDirectory {
	if cfg.PartnerSandbox {
		logrus.Warn("[api] PARTNER_SANDBOX enabled, partner banks are simulated in-process")
		return usecase.NewPartnerDirectory(
			partners.NewSandboxBank(partners.BanrisulName, sandboxLinkAfter),
			partners.NewSandboxBank(partners.C6Name, sandboxLinkAfter),
			partners.NewSandboxBank(partners.SafraName, sandboxLinkAfter),
		)
	}

	client := partners.NewHTTPClient(cfg.PartnerTimeout)
	settings := func(p config.Partner) partners.Settings {
		return partners.Settings{BaseURL: p.BaseURL, APIKey: p.APIKey, HTTPClient: client}
	}
	var banks []interfaces.IPartnerBank
	if cfg.Banrisul.Enabled() {
		banks = append(banks, partners.NewBanrisulBank(settings(cfg.Banrisul)))
	}
	if cfg.C6.Enabled() {
		banks = append(banks, partners.NewC6Bank(settings(cfg.C6)))
	}
	if cfg.Safra.Enabled() {
		banks = append(banks, partners.NewSafraBank(settings(cfg.Safra)))
	}
	return usecase.NewPartnerDirectory(banks...)
}

func buildBenefitProvider(cfg config.Config) interfaces.IBenefitProvider {
	switch {
	case cfg.MulticorbanURL != "":
		return multicorban.NewClient(cfg.MulticorbanURL, cfg.MulticorbanToken, partners.NewHTTPClient(cfg.PartnerTimeout))
	case cfg.PartnerSandbox:
		return multicorban.SandboxClient{}
	default:
		return nil
	}
}
