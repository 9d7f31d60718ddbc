package shopifyclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	accessTokenHeader = "X-Shopify-Access-Token"
	errorBodyLimit    = 500
	requestTimeout    = 45 * time.Second
)

type Client interface {
	RunShopifyQL(ctx context.Context, query string) (*shopifydomain.ShopifyQLResult, error)
	GetOrders(ctx context.Context, start, end time.Time) (*shopifydomain.OrdersFeed, error)
	CountOrders(ctx context.Context, start, end time.Time) (*float64, error)
	GetAccessScopes(ctx context.Context) ([]string, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// NewClientWithHTTP permite apontar para outro transporte (testes com httptest)
func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) Client {
	return &ShopifyClient{httpClient: httpClient, config: cfg}
}

// adminURL monta https://{domain}/admin/api/{version}/{resource}
func (c *ShopifyClient) adminURL(version, resource string) (*url.URL, error) {
	base := c.config.Shopify.StoreDomain
	endpoint, err := url.Parse(base)
	if err != nil || endpoint.Host == "" {
		endpoint, err = url.Parse("https://" + base)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao analisar o domínio da loja")
		}
	}
	endpoint.Path = path.Join(endpoint.Path, "/admin/api", version, resource)
	return endpoint, nil
}

func (c *ShopifyClient) do(ctx context.Context, req *http.Request) (*http.Response, []byte, error) {
	req.Header.Set(accessTokenHeader, c.config.Shopify.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	return resp, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func truncatedBody(body []byte) string {
	return utils.Truncate(body, errorBodyLimit)
}
