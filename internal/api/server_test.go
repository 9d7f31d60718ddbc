package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handlermocks "github.com/vfg2006/retail-dashboard-api/internal/api/handler/mocks"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/scheduler"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/retail-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/calendaring"
	calendarmocks "github.com/vfg2006/retail-dashboard-api/internal/usecases/calendaring/mocks"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/retail-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fixture struct {
	reporter *reportmocks.MockReporter
	calendar *calendarmocks.MockCalendar
	auth     *authmocks.MockAuthenticator
	sync     *handlermocks.MockSyncController
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	f := &fixture{
		reporter: reportmocks.NewMockReporter(ctrl),
		calendar: calendarmocks.NewMockCalendar(ctrl),
		auth:     authmocks.NewMockAuthenticator(ctrl),
		sync:     handlermocks.NewMockSyncController(ctrl),
	}
	f.handler = NewHandler(Services{
		Reporter:      f.reporter,
		Calendar:      f.calendar,
		Authenticator: f.auth,
		Sync:          f.sync,
	})
	return f
}

func (f *fixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPublicRoutes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/api/health", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "dashboard-api", body["service"])
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("endpoints lista as rotas registradas em ordem", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/api/endpoints", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Endpoints []string `json:"endpoints"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.Endpoints)
		assert.Equal(t, "/api/health", body.Endpoints[0])
		assert.Equal(t, "/api/google/calendar/upcoming?max=4", body.Endpoints[len(body.Endpoints)-1])
		assert.Contains(t, body.Endpoints, "/api/clean?days=120")
		assert.Contains(t, body.Endpoints, "/api/products/momentum?metric=revenue&limit=10")
		for _, e := range body.Endpoints {
			assert.NotContains(t, e, "/api/admin")
		}
	})

	t.Run("rota desconhecida", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/api/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not found", decode(t, rec)["error"])
	})

	t.Run("preflight", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodOptions, "/api/summary", "", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestDashboardRoutes(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(f *fixture)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "days acima do máximo é limitado",
			target: "/api/clean?days=999",
			setup: func(f *fixture) {
				f.reporter.EXPECT().Clean(gomock.Any(), 365).Return(&domain.CleanReport{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "days inválido usa o padrão",
			target: "/api/trend/daily?days=abc",
			setup: func(f *fixture) {
				f.reporter.EXPECT().DailyTrend(gomock.Any(), 90).Return(&domain.TrendReport[domain.DailyTrendPoint]{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "limit fracionário é truncado",
			target: "/api/products/top-units?limit=3.7",
			setup: func(f *fixture) {
				f.reporter.EXPECT().TopProductsByUnits(gomock.Any(), 3).Return(&domain.TopUnitsReport{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "momentum repassa a métrica",
			target: "/api/products/momentum?metric=units&limit=0",
			setup: func(f *fixture) {
				f.reporter.EXPECT().ProductMomentum(gomock.Any(), 1, domain.MomentumMetric("units")).Return(&domain.MomentumReport{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "kpis usa o resumo",
			target: "/api/kpis",
			setup: func(f *fixture) {
				f.reporter.EXPECT().Summary(gomock.Any()).Return(&domain.SummaryReport{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "falha do relatório vira 500",
			target: "/api/latest",
			setup: func(f *fixture) {
				f.reporter.EXPECT().Latest(gomock.Any()).Return(nil, errors.New("apps script fora do ar"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, "apps script fora do ar", decode(t, rec)["error"])
			},
		},
		{
			name:   "cells sempre responde 200",
			target: "/api/cells",
			setup: func(f *fixture) {
				f.reporter.EXPECT().Cells(gomock.Any()).Return(&domain.CellsReport{
					Errors: map[string]string{"ytd": "boom"},
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			tt.validate(t, f.do(http.MethodGet, tt.target, "", nil))
		})
	}
}

func TestGoogleRoutes(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		headers  map[string]string
		setup    func(f *fixture)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "start sem OAuth configurado",
			target: "/api/google/oauth/start",
			setup: func(f *fixture) {
				f.calendar.EXPECT().IsOAuthConfigured().Return(false)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
				assert.Equal(t, "google_oauth_not_configured", decode(t, rec)["status"])
			},
		},
		{
			name:    "start redireciona usando o host encaminhado",
			target:  "/api/google/oauth/start",
			headers: map[string]string{"X-Forwarded-Proto": "https", "X-Forwarded-Host": "painel.example.com"},
			setup: func(f *fixture) {
				f.calendar.EXPECT().IsOAuthConfigured().Return(true)
				f.calendar.EXPECT().AuthURL(gomock.Any()).DoAndReturn(func(u *url.URL) string {
					assert.Equal(t, "painel.example.com", u.Hostname())
					return "https://accounts.google.com/o/oauth2/auth?x=1"
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusFound, rec.Code)
				assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?x=1", rec.Header().Get("Location"))
				assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			},
		},
		{
			name:   "callback grava o cookie do refresh token",
			target: "/api/google/oauth/callback?code=abc",
			setup: func(f *fixture) {
				f.calendar.EXPECT().IsOAuthConfigured().Return(true)
				f.calendar.EXPECT().Connect(gomock.Any(), "abc", gomock.Any()).Return(&calendaring.Connection{RefreshToken: "rt/1"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				cookie := rec.Header().Get("Set-Cookie")
				assert.Contains(t, cookie, "elave_gcal_rt=rt%2F1")
				assert.Contains(t, cookie, "HttpOnly")
			},
		},
		{
			name:   "callback com erro do Google",
			target: "/api/google/oauth/callback?error=access_denied",
			setup: func(f *fixture) {
				f.calendar.EXPECT().IsOAuthConfigured().Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "access_denied")
			},
		},
		{
			name:    "upcoming lê o cookie e exige autorização",
			target:  "/api/google/calendar/upcoming?max=50",
			headers: map[string]string{"Cookie": "elave_gcal_rt=rt%2F1"},
			setup: func(f *fixture) {
				f.calendar.EXPECT().Upcoming(gomock.Any(), "", 10, "rt/1").Return(nil, calendaring.ErrAuthRequired)
				f.calendar.EXPECT().IsOAuthConfigured().Return(true)
				f.calendar.EXPECT().AuthURL(gomock.Any()).Return("https://accounts.google.com/auth")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, "google_auth_required", body["status"])
				assert.Equal(t, "https://accounts.google.com/auth", body["auth_url"])
			},
		},
		{
			name:   "upcoming com falha da API",
			target: "/api/google/calendar/upcoming",
			setup: func(f *fixture) {
				f.calendar.EXPECT().Upcoming(gomock.Any(), "", 4, "").Return(nil, &calendaring.CalendarError{Err: errors.New("quota")})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)
				assert.Equal(t, "google_calendar_error", decode(t, rec)["status"])
			},
		},
		{
			name:   "upcoming sem OAuth",
			target: "/api/google/calendar/upcoming?calendarId=loja",
			setup: func(f *fixture) {
				f.calendar.EXPECT().Upcoming(gomock.Any(), "loja", 4, "").Return(nil, calendaring.ErrOAuthNotConfigured)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			tt.validate(t, f.do(http.MethodGet, tt.target, "", tt.headers))
		})
	}
}

func TestAdminRoutes(t *testing.T) {
	bearer := map[string]string{"Authorization": "Bearer tok"}
	admin := &domain.Claims{UserID: 1, UserRoleID: authenticating.RoleAdmin}

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		headers  map[string]string
		setup    func(f *fixture)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "login devolve token",
			method: http.MethodPost,
			target: "/api/admin/login",
			body:   `{"email":"a@b.com","password":"segredo-longo"}`,
			setup: func(f *fixture) {
				f.auth.EXPECT().Login(gomock.Any(), "a@b.com", "segredo-longo").Return("jwt", nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "jwt", decode(t, rec)["token"])
			},
		},
		{
			name:   "login com usuário inexistente não revela o motivo",
			method: http.MethodPost,
			target: "/api/admin/login",
			body:   `{"email":"x@b.com","password":"123"}`,
			setup: func(f *fixture) {
				f.auth.EXPECT().Login(gomock.Any(), "x@b.com", "123").
					Return("", authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, decode(t, rec)["code"])
			},
		},
		{
			name:   "login com falha de banco não expõe o erro",
			method: http.MethodPost,
			target: "/api/admin/login",
			body:   `{"email":"a@b.com","password":"segredo-longo"}`,
			setup: func(f *fixture) {
				f.auth.EXPECT().Login(gomock.Any(), "a@b.com", "segredo-longo").
					Return("", authenticating.NewAuthError(errors.New("pq: connection refused"), apiErrors.ErrDatabaseOperation, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, body["code"])
				assert.Equal(t, "Erro interno do servidor", body["message"])
			},
		},
		{
			name:   "login com corpo inválido",
			method: http.MethodPost,
			target: "/api/admin/login",
			body:   `{`,
			setup:  func(f *fixture) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "sync sem token",
			method: http.MethodPost,
			target: "/api/admin/sync/run",
			setup:  func(f *fixture) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name:    "sync com papel sem privilégio",
			method:  http.MethodPost,
			target:  "/api/admin/sync/run",
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{UserID: 2, UserRoleID: 2}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
			},
		},
		{
			name:    "sync iniciado",
			method:  http.MethodPost,
			target:  "/api/admin/sync/run",
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(admin, nil)
				f.sync.EXPECT().TriggerManualSync(gomock.Any()).Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Equal(t, true, decode(t, rec)["started"])
			},
		},
		{
			name:    "sync já em andamento",
			method:  http.MethodPost,
			target:  "/api/admin/sync/run",
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(admin, nil)
				f.sync.EXPECT().TriggerManualSync(gomock.Any()).Return(false)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
			},
		},
		{
			name:    "status do sync",
			method:  http.MethodGet,
			target:  "/api/admin/sync/status",
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(admin, nil)
				f.sync.EXPECT().GetStatus().Return(scheduler.SyncStatus{SyncEnabled: true, SyncCron: "5 * * * *", SyncDays: 3})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, "5 * * * *", body["sync_cron"])
				assert.Equal(t, false, body["running"])
			},
		},
		{
			name:    "me",
			method:  http.MethodGet,
			target:  "/api/admin/me",
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(admin, nil)
				f.auth.EXPECT().Profile(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "a@b.com", Active: true, RoleID: 1}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				body := decode(t, rec)
				assert.Equal(t, "a@b.com", body["email"])
				assert.NotContains(t, body, "password")
			},
		},
		{
			name:    "upsert de meta",
			method:  http.MethodPut,
			target:  "/api/admin/targets/2026-03",
			body:    `{"target":125000}`,
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(admin, nil)
				f.reporter.EXPECT().UpsertTarget(gomock.Any(), "2026-03", 125000.0).Return(&domain.MonthlyTarget{Month: "2026-03", Target: 125000}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "2026-03", decode(t, rec)["month"])
			},
		},
		{
			name:    "upsert de meta com mês inválido",
			method:  http.MethodPut,
			target:  "/api/admin/targets/marco",
			body:    `{"target":10}`,
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(admin, nil)
				f.reporter.EXPECT().UpsertTarget(gomock.Any(), "marco", 10.0).
					Return(nil, reporting.NewReportError(reporting.ErrInvalidMonth, apiErrors.ErrInvalidMonth, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidMonth, decode(t, rec)["code"])
			},
		},
		{
			name:    "lista de metas",
			method:  http.MethodGet,
			target:  "/api/admin/targets",
			headers: bearer,
			setup: func(f *fixture) {
				f.auth.EXPECT().ValidateToken("tok").Return(admin, nil)
				f.reporter.EXPECT().ListTargets(gomock.Any()).Return([]domain.MonthlyTarget{{Month: "2026-02", Target: 1}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "2026-02")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			tt.validate(t, f.do(tt.method, tt.target, tt.body, tt.headers))
		})
	}
}
