package shopify

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/cache"
	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const accessScopesCacheKey = "access_scopes"

// ShopifyIntegrator expõe a loja para o restante da aplicação.
// Sem domínio ou token configurados, todas as leituras devolvem vazio sem erro.
type ShopifyIntegrator interface {
	IsConfigured() bool
	Query(ctx context.Context, query string) (*shopifydomain.ShopifyQLResult, error)
	AccessScopes(ctx context.Context) ([]string, error)
	CountOrders(ctx context.Context, start, end time.Time) (*float64, error)
	FetchOrders(ctx context.Context, start, end time.Time) (*shopifydomain.OrdersFeed, error)
}

type ShopifyService struct {
	cfg         *config.Config
	Client      shopifyclient.Client
	queryCache  cache.QueryCache
	scopesCache cache.QueryCache
}

func New(cfg *config.Config, client shopifyclient.Client, queryCache, scopesCache cache.QueryCache) ShopifyIntegrator {
	return &ShopifyService{
		cfg:         cfg,
		Client:      client,
		queryCache:  queryCache,
		scopesCache: scopesCache,
	}
}

func (s *ShopifyService) IsConfigured() bool {
	return s.cfg.Shopify.IsConfigured()
}

// Query executa ShopifyQL passando pelo cache; a chave inclui a versão da API de analytics
func (s *ShopifyService) Query(ctx context.Context, query string) (*shopifydomain.ShopifyQLResult, error) {
	if !s.IsConfigured() {
		return nil, nil
	}

	key := s.cfg.Shopify.AnalyticsAPIVersion + ":" + query

	var cached shopifydomain.ShopifyQLResult
	if s.readCache(ctx, s.queryCache, key, &cached) {
		return &cached, nil
	}

	result, err := s.Client.RunShopifyQL(ctx, query)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, s.queryCache, key, result, s.cfg.Shopify.QueryCacheTTL())

	return result, nil
}

func (s *ShopifyService) AccessScopes(ctx context.Context) ([]string, error) {
	if !s.IsConfigured() {
		return []string{}, nil
	}

	var cached []string
	if s.readCache(ctx, s.scopesCache, accessScopesCacheKey, &cached) {
		return cached, nil
	}

	scopes, err := s.Client.GetAccessScopes(ctx)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, s.scopesCache, accessScopesCacheKey, scopes, s.cfg.Shopify.AccessScopesCacheTTL())

	return scopes, nil
}

func (s *ShopifyService) CountOrders(ctx context.Context, start, end time.Time) (*float64, error) {
	if !s.IsConfigured() {
		return nil, nil
	}
	return s.Client.CountOrders(ctx, start, end)
}

func (s *ShopifyService) FetchOrders(ctx context.Context, start, end time.Time) (*shopifydomain.OrdersFeed, error) {
	if !s.IsConfigured() {
		return nil, nil
	}

	logrus.WithFields(logrus.Fields{
		"start": start.Format(time.RFC3339),
		"end":   end.Format(time.RFC3339),
	}).Debug("shopify: buscando pedidos")

	return s.Client.GetOrders(ctx, start, end)
}

// readCache trata falhas do cache como ausência
func (s *ShopifyService) readCache(ctx context.Context, c cache.QueryCache, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, ok, err := c.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).Warn("shopify: falha ao ler cache")
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logrus.WithError(err).Warn("shopify: entrada de cache inválida")
		return false
	}

	return true
}

func (s *ShopifyService) writeCache(ctx context.Context, c cache.QueryCache, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Warn("shopify: falha ao serializar para cache")
		return
	}

	if err := c.Set(ctx, key, raw, ttl); err != nil {
		logrus.WithError(err).Warn("shopify: falha ao gravar cache")
	}
}
