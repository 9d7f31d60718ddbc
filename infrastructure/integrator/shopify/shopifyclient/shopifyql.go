package shopifyclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
)

const shopifyQLDocument = `query RunShopifyQL($query: String!) {
  shopifyqlQuery(query: $query) {
    parseErrors
    tableData {
      columns {
        name
        displayName
        dataType
        subType
      }
      rows
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// RunShopifyQL executa uma consulta ShopifyQL pela Admin GraphQL API
func (c *ShopifyClient) RunShopifyQL(ctx context.Context, query string) (*shopifydomain.ShopifyQLResult, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint, err := c.adminURL(c.config.Shopify.AnalyticsAPIVersion, "graphql.json")
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     shopifyQLDocument,
		Variables: map[string]any{"query": query},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a consulta")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("ShopifyQL request failed (%d): %s", resp.StatusCode, truncatedBody(body))
	}

	var response shopifydomain.ShopifyQLResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta ShopifyQL")
	}

	if msgs := response.ErrorMessages(); len(msgs) > 0 {
		return nil, fmt.Errorf("ShopifyQL GraphQL error: %s", strings.Join(msgs, "; "))
	}

	if msgs := response.ParseErrorMessages(); len(msgs) > 0 {
		return nil, fmt.Errorf("ShopifyQL parse error: %s", strings.Join(msgs, "; "))
	}

	return response.Table(), nil
}
