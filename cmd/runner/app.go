package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dailysale/infrastructure/browser"
	"github.com/vfg2006/dailysale/infrastructure/integrator/license"
	"github.com/vfg2006/dailysale/infrastructure/integrator/license/licenseclient"
	"github.com/vfg2006/dailysale/infrastructure/ledger"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/internal/usecases/orchestrating"
	"github.com/vfg2006/dailysale/internal/wizard"
)

// app junta as dependências do executor; o navegador só abre quando um comando precisa dele
type app struct {
	cfg     *config.Config
	ledger  *ledger.Ledger
	license *license.LicenseService
	session *browser.Session
}

func newApp(cfg *config.Config) (*app, error) {
	store, err := ledger.Open(cfg.Client.LedgerPath)
	if err != nil {
		return nil, err
	}

	client := licenseclient.NewClient(cfg.Client)
	licenseService := license.New(client, store, license.WithCacheTTL(cfg.Client.CacheTTL))

	return &app{
		cfg:     cfg,
		ledger:  store,
		license: licenseService,
	}, nil
}

// orchestrator sem navegador, para comandos que só leem ou editam o ledger
func (a *app) orchestrator() *orchestrating.Service {
	return orchestrating.NewService(a.ledger, a.license, nil, "")
}

// automatedOrchestrator abre o navegador e monta o assistente
func (a *app) automatedOrchestrator(ctx context.Context) (*orchestrating.Service, error) {
	wizardCfg, err := wizard.LoadConfig(a.cfg.Browser.WizardConfigPath)
	if err != nil {
		return nil, err
	}

	if a.session == nil {
		session, err := browser.Launch(ctx, a.cfg.Browser)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir o navegador: %w", err)
		}
		a.session = session
	}

	driver := wizard.NewDriver(a.session.Locator(), wizardCfg)
	return orchestrating.NewService(a.ledger, a.license, driver, a.cfg.Browser.SalesURL), nil
}

func (a *app) Close() {
	if a.session != nil {
		if err := a.session.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o navegador")
		}
	}
	if err := a.ledger.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar o ledger")
	}
}
