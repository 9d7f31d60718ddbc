package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/appscript"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/appscript/appscriptclient"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google/calendarclient"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google/ga4client"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/calendaring"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const (
	connectTimeout = 10 * time.Second
	migrateTimeout = 2 * time.Minute
)

// app reúne as dependências compartilhadas pelos subcomandos
type app struct {
	cfg  *config.Config
	conn *postgres.Connection

	users   repository.UserRepository
	hourly  repository.HourlyMetricRepository
	orders  repository.OrderRepository
	lines   repository.OrderLineRepository
	targets repository.MonthlyTargetRepository
}

// loadConfig lê a configuração e prepara o logrus
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	return cfg, nil
}

// newApp conecta ao PostgreSQL e cria os repositórios
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	return &app{
		cfg:     cfg,
		conn:    conn,
		users:   repository.NewUserRepository(conn),
		hourly:  repository.NewHourlyMetricRepository(conn, cfg),
		orders:  repository.NewOrderRepository(conn, cfg),
		lines:   repository.NewOrderLineRepository(conn, cfg),
		targets: repository.NewMonthlyTargetRepository(conn),
	}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("erro ao fechar conexão com PostgreSQL")
	}
}

func (a *app) migrate(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	return migration.Up(ctx, a.conn.DB.DB, a.cfg.Database.Driver)
}

func (a *app) shopify() shopify.ShopifyIntegrator {
	return shopify.New(
		a.cfg,
		shopifyclient.NewClient(a.cfg),
		cache.New(a.cfg.Cache, "shopifyql"),
		cache.New(a.cfg.Cache, "access_scopes"),
	)
}

func (a *app) marketing() appscript.MarketingIntegrator {
	return appscript.New(appscriptclient.NewClient(a.cfg.AppsScript.URL))
}

func (a *app) syncer(shop shopify.ShopifyIntegrator) syncing.Syncer {
	return syncing.NewService(a.cfg, a.marketing(), shop, a.hourly, a.orders, a.lines)
}

func (a *app) reporter(ctx context.Context, shop shopify.ShopifyIntegrator) (reporting.Reporter, error) {
	ga4, err := ga4client.NewClient(ctx, a.cfg.GA4)
	if err != nil {
		return nil, err
	}

	calendar := utils.NewCalendar(a.cfg.Reporting.Timezone)
	snapshots := snapshotting.NewService(shop, ga4, calendar)

	return reporting.NewService(a.cfg, calendar, snapshots, shop, a.hourly, a.orders, a.lines, a.targets), nil
}

func (a *app) calendar() calendaring.Calendar {
	tokens := google.NewTokenManager(a.cfg.Google)
	return calendaring.NewService(a.cfg.Google, google.New(tokens, calendarclient.NewClient()))
}

func (a *app) authenticator() authenticating.Authenticator {
	return authenticating.NewService(a.users, a.cfg.Auth)
}
