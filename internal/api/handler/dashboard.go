package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// Limites dos parâmetros de consulta (padrão, máximo)
const (
	defaultLimit = 10
	maxLimit     = 50

	defaultCleanDays  = 120
	defaultHourlyDays = 30
	defaultDailyDays  = 90
	defaultWindowDays = 30
	maxDays           = 365
	maxDailyDays      = 730
)

// reportHandler executa um relatório e responde 200 com o corpo ou 500 {"error"}
func reportHandler[T any](name string, build func(r *http.Request) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := build(r)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("report", name).Error("erro ao montar relatório")
			writeErrorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, report)
	})
}

func noParams[T any](fn func(ctx context.Context) (T, error)) func(r *http.Request) (T, error) {
	return func(r *http.Request) (T, error) {
		return fn(r.Context())
	}
}

func withDays[T any](fallback, max int, fn func(ctx context.Context, days int) (T, error)) func(r *http.Request) (T, error) {
	return func(r *http.Request) (T, error) {
		return fn(r.Context(), utils.ParseBoundedInt(r.URL.Query(), "days", fallback, max))
	}
}

func withLimit[T any](fn func(ctx context.Context, limit int) (T, error)) func(r *http.Request) (T, error) {
	return func(r *http.Request) (T, error) {
		return fn(r.Context(), utils.ParseBoundedInt(r.URL.Query(), "limit", defaultLimit, maxLimit))
	}
}

func Momentum(reporter reporting.Reporter) http.Handler {
	return reportHandler("momentum", func(r *http.Request) (*domain.MomentumReport, error) {
		limit := utils.ParseBoundedInt(r.URL.Query(), "limit", defaultLimit, maxLimit)
		metric := domain.MomentumMetric(r.URL.Query().Get("metric"))
		return reporter.ProductMomentum(r.Context(), limit, metric)
	})
}

// Cells sempre responde 200; falhas individuais vão para o mapa errors
func Cells(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reporter.Cells(r.Context()))
	})
}
