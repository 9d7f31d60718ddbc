package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/calendaring"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-dashboard-api/pkg/middleware"
)

func Healthcheck(now func() time.Time, examples func() []string) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(now),
			Example: "/api/health",
		},
		{
			Path:    "/api/endpoints",
			Method:  http.MethodGet,
			Handler: EndpointsHandler(examples),
			Example: "/api/endpoints",
		},
	}
}

func Dashboard(reporter reporting.Reporter) []router.Route {
	get := func(path, example string, handler http.Handler) router.Route {
		return router.Route{Path: path, Method: http.MethodGet, Handler: handler, Example: example}
	}

	return []router.Route{
		get("/api/clean", "/api/clean?days=120", reportHandler("clean", withDays(defaultCleanDays, maxDays, reporter.Clean))),
		get("/api/latest", "/api/latest", reportHandler("latest", noParams(reporter.Latest))),
		get("/api/summary", "/api/summary", reportHandler("summary", noParams(reporter.Summary))),
		get("/api/kpis", "/api/kpis", reportHandler("kpis", noParams(reporter.Summary))),
		get("/api/ytd", "/api/ytd", reportHandler("ytd", noParams(reporter.YTD))),
		get("/api/cells", "/api/cells", Cells(reporter)),
		get("/api/trend/hourly", "/api/trend/hourly?days=30", reportHandler("trend_hourly", withDays(defaultHourlyDays, maxDays, reporter.HourlyTrend))),
		get("/api/trend/daily", "/api/trend/daily?days=90", reportHandler("trend_daily", withDays(defaultDailyDays, maxDailyDays, reporter.DailyTrend))),
		get("/api/quality", "/api/quality?days=30", reportHandler("quality", withDays(defaultWindowDays, maxDays, reporter.Quality))),
		get("/api/sources", "/api/sources?days=30", reportHandler("sources", withDays(defaultWindowDays, maxDays, reporter.Sources))),
		get("/api/goal", "/api/goal", reportHandler("goal", noParams(reporter.Goal))),
		get("/api/products/top-units", "/api/products/top-units?limit=10", reportHandler("top_units", withLimit(reporter.TopProductsByUnits))),
		get("/api/products/top-revenue", "/api/products/top-revenue?limit=10", reportHandler("top_revenue", withLimit(reporter.TopProductsByRevenue))),
		get("/api/products/momentum", "/api/products/momentum?metric=revenue&limit=10", Momentum(reporter)),
		get("/api/pace", "/api/pace", reportHandler("pace", noParams(reporter.DailySalesPace))),
		get("/api/projection", "/api/projection", reportHandler("projection", noParams(reporter.MTDProjection))),
		get("/api/finance/gross-net-returns", "/api/finance/gross-net-returns", reportHandler("gross_net_returns", noParams(reporter.GrossNetReturns))),
		get("/api/aov", "/api/aov", reportHandler("aov", noParams(reporter.AOV))),
		get("/api/sessions/mtd", "/api/sessions/mtd", reportHandler("sessions", noParams(reporter.WebsiteSessionsMTD))),
		get("/api/customers/new-vs-returning", "/api/customers/new-vs-returning", reportHandler("new_vs_returning", noParams(reporter.NewVsReturning))),
		get("/api/channels", "/api/channels", reportHandler("channels", noParams(reporter.ChannelSplit))),
		get("/api/discount-impact", "/api/discount-impact", reportHandler("discount_impact", noParams(reporter.DiscountImpact))),
		get("/api/heatmap/today", "/api/heatmap/today", reportHandler("heatmap", noParams(reporter.HourlyHeatmapToday))),
		get("/api/refund-watchlist", "/api/refund-watchlist?limit=10", reportHandler("refund_watchlist", withLimit(reporter.RefundWatchlist))),
	}
}

func Google(calendar calendaring.Calendar) []router.Route {
	return []router.Route{
		{
			Path:    "/api/google/oauth/start",
			Method:  http.MethodGet,
			Handler: OAuthStart(calendar),
			Example: "/api/google/oauth/start",
		},
		{
			Path:    "/api/google/oauth/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(calendar),
			Example: "/api/google/oauth/callback",
		},
		{
			Path:    "/api/google/calendar/upcoming",
			Method:  http.MethodGet,
			Handler: CalendarUpcoming(calendar),
			Example: "/api/google/calendar/upcoming?max=4",
		},
	}
}

func Admin(authenticator authenticating.Authenticator, reporter reporting.Reporter, sync SyncController) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.RequireAuth(authenticator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:    "/api/admin/login",
			Method:  http.MethodPost,
			Handler: Login(authenticator),
		},
		{
			Path:        "/api/admin/me",
			Method:      http.MethodGet,
			Handler:     Me(authenticator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/sync/run",
			Method:      http.MethodPost,
			Handler:     SyncRun(sync),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/sync/status",
			Method:      http.MethodGet,
			Handler:     SyncStatus(sync),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(reporter),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/targets/:month",
			Method:      http.MethodPut,
			Handler:     UpsertTarget(reporter),
			Middlewares: adminOnly,
		},
	}
}
