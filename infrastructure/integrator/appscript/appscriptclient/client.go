package appscriptclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Row é uma linha da planilha como publicada pelo Apps Script
type Row map[string]any

type Client interface {
	GetCleanRows(ctx context.Context) ([]Row, error)
}

type AppsScriptClient struct {
	httpClient *http.Client
	url        string
	now        func() time.Time
}

func NewClient(scriptURL string) Client {
	return &AppsScriptClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url: scriptURL,
		now: time.Now,
	}
}

func NewClientWithHTTP(scriptURL string, httpClient *http.Client) Client {
	return &AppsScriptClient{httpClient: httpClient, url: scriptURL, now: time.Now}
}

// GetCleanRows chama o script em mode=clean, com marcador de tempo para furar cache
func (c *AppsScriptClient) GetCleanRows(ctx context.Context) ([]Row, error) {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.url)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL do Apps Script")
	}

	query := endpoint.Query()
	query.Set("mode", "clean")
	query.Set("_", strconv.FormatInt(c.now().UnixMilli(), 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Apps Script mode=clean failed (%d): %s", resp.StatusCode, string(body))
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do Apps Script")
	}

	return ExtractRows(payload), nil
}

// ExtractRows aceita lista pura, {"data": [...]} ou {"rows": [...]}
func ExtractRows(payload any) []Row {
	var list []any

	switch v := payload.(type) {
	case []any:
		list = v
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			list = data
		} else if rows, ok := v["rows"].([]any); ok {
			list = rows
		}
	}

	out := make([]Row, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Row(obj))
		}
	}
	return out
}
