package appscript

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/appscript/appscriptclient"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// Formatos de data aceitos nas colunas de horário da planilha
var loggedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

type MarketingIntegrator interface {
	FetchMarketing(ctx context.Context) (map[string]domain.MarketingPoint, error)
}

type AppsScriptService struct {
	Client appscriptclient.Client
}

func New(client appscriptclient.Client) MarketingIntegrator {
	return &AppsScriptService{Client: client}
}

// FetchMarketing indexa o investimento e o ROAS da planilha por hora UTC.
// Linhas sem hora identificável ou sem nenhum número são ignoradas.
func (s *AppsScriptService) FetchMarketing(ctx context.Context) (map[string]domain.MarketingPoint, error) {
	rows, err := s.Client.GetCleanRows(ctx)
	if err != nil {
		return nil, err
	}

	byHour := make(map[string]domain.MarketingPoint, len(rows))
	skipped := 0

	for _, row := range rows {
		point, ok := MarketingPointFromRow(row)
		if !ok {
			skipped++
			continue
		}
		byHour[point.HourKey] = point
	}

	logrus.WithFields(logrus.Fields{
		"rows":    len(rows),
		"hours":   len(byHour),
		"skipped": skipped,
	}).Debug("apps script: marketing carregado")

	return byHour, nil
}

func MarketingPointFromRow(row appscriptclient.Row) (domain.MarketingPoint, bool) {
	hourKey := normalizeHourKey(row)
	if hourKey == "" {
		return domain.MarketingPoint{}, false
	}

	adSpend := utils.CleanNumber(row["ad_spend"])
	roas := utils.CleanNumber(row["roas"])
	if adSpend == nil && roas == nil {
		return domain.MarketingPoint{}, false
	}

	return domain.MarketingPoint{
		HourKey:       hourKey,
		LoggedAtLocal: text(row["logged_at_local"]),
		AdSpend:       utils.RoundPtr(adSpend, 2),
		ROAS:          utils.RoundPtr(roas, 4),
	}, true
}

// normalizeHourKey usa o prefixo da row_key e, na falta dele, a primeira data válida
func normalizeHourKey(row appscriptclient.Row) string {
	if key := utils.HourKeyPrefix(text(row["row_key"])); key != "" {
		return key
	}

	for _, field := range []string{"logged_at_utc", "logged_at_local", "Logged At"} {
		raw := text(row[field])
		if raw == "" {
			continue
		}
		if t, ok := parseLoggedAt(raw); ok {
			return utils.HourKeyFromDate(t)
		}
		return ""
	}

	return ""
}

func parseLoggedAt(raw string) (time.Time, bool) {
	for _, layout := range loggedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func text(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
