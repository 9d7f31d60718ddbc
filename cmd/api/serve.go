package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/retail-dashboard-api/internal/api"
	"github.com/vfg2006/retail-dashboard-api/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe a API HTTP e o agendador do sync horário",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.Database.AutoMigrate {
		if _, err := a.migrate(ctx); err != nil {
			return err
		}
	}

	shop := a.shopify()
	reporter, err := a.reporter(ctx, shop)
	if err != nil {
		return err
	}

	hourlySync := scheduler.NewHourlySyncService(a.syncer(shop), a.cfg)
	if err := hourlySync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do sync horário")
	}

	server := api.New(a.cfg, api.Services{
		Reporter:      reporter,
		Calendar:      a.calendar(),
		Authenticator: a.authenticator(),
		Sync:          hourlySync,
	})

	return server.Run(ctx)
}
