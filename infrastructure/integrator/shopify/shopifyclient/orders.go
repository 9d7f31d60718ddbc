package shopifyclient

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
)

var ErrPaginationExceeded = errors.New("shopify pagination exceeded")

// PaginationError indica que o feed de pedidos passou do limite de páginas
type PaginationError struct {
	MaxPages int
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("Shopify pagination exceeded %d pages. Reduce SYNC_DAYS.", e.MaxPages)
}

func (e *PaginationError) Unwrap() error {
	return ErrPaginationExceeded
}

const ordersPageLimit = "250"

var linkTarget = regexp.MustCompile(`<([^>]+)>`)

// GetOrders lê todos os pedidos criados na janela, seguindo o cabeçalho Link
func (c *ShopifyClient) GetOrders(ctx context.Context, start, end time.Time) (*shopifydomain.OrdersFeed, error) {
	endpoint, err := c.adminURL(c.config.Shopify.APIVersion, "orders.json")
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("status", "any")
	query.Set("limit", ordersPageLimit)
	query.Set("order", "created_at asc")
	query.Set("created_at_min", start.UTC().Format(time.RFC3339Nano))
	query.Set("created_at_max", end.UTC().Format(time.RFC3339Nano))
	endpoint.RawQuery = query.Encode()

	maxPages := c.config.Shopify.OrdersMaxPages
	feed := &shopifydomain.OrdersFeed{Orders: []shopifydomain.Order{}}
	nextURL := endpoint.String()

	for nextURL != "" && feed.PagesFetched < maxPages {
		page, next, err := c.getOrdersPage(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		feed.Orders = append(feed.Orders, page.Orders...)
		feed.PagesFetched++
		nextURL = next
	}

	if feed.PagesFetched >= maxPages {
		return nil, &PaginationError{MaxPages: maxPages}
	}

	return feed, nil
}

func (c *ShopifyClient) getOrdersPage(ctx context.Context, pageURL string) (*shopifydomain.OrdersPage, string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, body, err := c.do(ctx, req)
	if err != nil {
		return nil, "", err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, "", fmt.Errorf("Shopify Orders API failed (%d): %s", resp.StatusCode, truncatedBody(body))
	}

	var page shopifydomain.OrdersPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", errors.Wrap(err, "erro ao decodificar a página de pedidos")
	}

	return &page, NextPageURL(resp.Header.Get("Link")), nil
}

// NextPageURL extrai o alvo rel="next" de um cabeçalho Link
func NextPageURL(linkHeader string) string {
	for _, part := range strings.Split(linkHeader, ",") {
		section := strings.TrimSpace(part)
		if !strings.Contains(section, `rel="next"`) {
			continue
		}
		if m := linkTarget.FindStringSubmatch(section); m != nil {
			return m[1]
		}
	}
	return ""
}

// CountOrders conta pedidos criados na janela via orders/count.json
func (c *ShopifyClient) CountOrders(ctx context.Context, start, end time.Time) (*float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint, err := c.adminURL(c.config.Shopify.APIVersion, "orders/count.json")
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("status", "any")
	query.Set("created_at_min", start.UTC().Format(time.RFC3339Nano))
	query.Set("created_at_max", end.UTC().Format(time.RFC3339Nano))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("Shopify orders count failed (%d): %s", resp.StatusCode, truncatedBody(body))
	}

	var count shopifydomain.OrdersCount
	if err := json.Unmarshal(body, &count); err != nil {
		return nil, nil
	}

	return count.Count, nil
}
