package ga4client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"

	"github.com/vfg2006/retail-dashboard-api/internal/config"
)

type Client interface {
	IsEnabled() bool
	Sessions(ctx context.Context, startDate, endDate string) (*float64, error)
}

type GA4Client struct {
	service    *analyticsdata.Service
	propertyID string
	enabled    bool
}

// NewClient cria o cliente da Data API; sem propriedade ou credenciais ele fica desabilitado
func NewClient(ctx context.Context, cfg config.GA4) (Client, error) {
	if !cfg.IsConfigured() {
		logrus.Debug("ga4: desabilitado")
		return &GA4Client{enabled: false}, nil
	}

	var opts []option.ClientOption
	if raw := strings.TrimSpace(cfg.CredentialsJSON); raw != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(raw)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	service, err := analyticsdata.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente GA4: %w", err)
	}

	logrus.WithField("property_id", cfg.PropertyID).Info("ga4: cliente inicializado")

	return &GA4Client{
		service:    service,
		propertyID: cfg.PropertyID,
		enabled:    true,
	}, nil
}

func (c *GA4Client) IsEnabled() bool {
	return c.enabled
}

// Sessions soma as sessões entre as datas (YYYY-MM-DD, inclusivas)
func (c *GA4Client) Sessions(ctx context.Context, startDate, endDate string) (*float64, error) {
	if !c.enabled {
		return nil, nil
	}

	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{
				StartDate: startDate,
				EndDate:   endDate,
			},
		},
		Metrics: []*analyticsdata.Metric{
			{Name: "sessions"},
		},
	}

	resp, err := c.service.Properties.RunReport(fmt.Sprintf("properties/%s", c.propertyID), req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao executar relatório GA4: %w", err)
	}

	total := 0.0
	for _, row := range resp.Rows {
		if len(row.MetricValues) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(row.MetricValues[0].Value, 64)
		if err != nil {
			continue
		}
		total += v
	}

	return &total, nil
}
