package shopifyclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
)

// GetAccessScopes lista os handles de escopo concedidos ao app
func (c *ShopifyClient) GetAccessScopes(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint, err := c.adminURL(c.config.Shopify.APIVersion, "access_scopes.json")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("Shopify access scopes failed (%d): %s", resp.StatusCode, truncatedBody(body))
	}

	var payload shopifydomain.AccessScopes
	if err := json.Unmarshal(body, &payload); err != nil {
		return []string{}, nil
	}

	scopes := make([]string, 0, len(payload.AccessScopes))
	for _, s := range payload.AccessScopes {
		if handle := strings.TrimSpace(s.Handle); handle != "" {
			scopes = append(scopes, handle)
		}
	}

	return scopes, nil
}
