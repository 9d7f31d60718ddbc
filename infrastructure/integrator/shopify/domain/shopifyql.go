package shopifydomain

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

type ShopifyQLColumn struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	DataType    string `json:"dataType"`
	SubType     string `json:"subType"`
}

// ShopifyQLRow é uma linha da tabela: a API pode devolver lista posicional ou objeto por coluna.
// Apenas um dos dois campos é preenchido.
type ShopifyQLRow struct {
	Positional []any
	Named      map[string]any
}

func (r *ShopifyQLRow) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return nil
	case trimmed[0] == '[':
		return json.Unmarshal(trimmed, &r.Positional)
	case trimmed[0] == '{':
		return json.Unmarshal(trimmed, &r.Named)
	default:
		return fmt.Errorf("linha ShopifyQL inesperada: %s", utils.Truncate(trimmed, 80))
	}
}

func (r ShopifyQLRow) MarshalJSON() ([]byte, error) {
	if r.Named != nil {
		return json.Marshal(r.Named)
	}
	if r.Positional == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Positional)
}

// ShopifyQLResult é a tabela devolvida por uma consulta ShopifyQL
type ShopifyQLResult struct {
	Columns []ShopifyQLColumn `json:"columns"`
	Rows    []ShopifyQLRow    `json:"rows"`
}

// ColumnIndex retorna a posição da coluna pelo nome, ou -1
func (r *ShopifyQLResult) ColumnIndex(name string) int {
	for i, col := range r.Columns {
		if strings.TrimSpace(col.Name) == name && name != "" {
			return i
		}
	}
	return -1
}

func (r *ShopifyQLResult) HasColumn(name string) bool {
	return r.ColumnIndex(name) >= 0
}

// Cell lê uma célula da linha pelo nome da coluna, qualquer que seja o formato da linha
func (r *ShopifyQLResult) Cell(row ShopifyQLRow, column string) any {
	if row.Named != nil {
		if v, ok := row.Named[column]; ok {
			return v
		}
		return nil
	}

	idx := r.ColumnIndex(column)
	if idx < 0 || idx >= len(row.Positional) {
		return nil
	}
	return row.Positional[idx]
}

// Text lê a célula como texto
func (r *ShopifyQLResult) Text(row ShopifyQLRow, column string) string {
	v := r.Cell(row, column)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Metric lê a célula como número com 2 casas, ou nil quando não é numérica
func (r *ShopifyQLResult) Metric(row ShopifyQLRow, column string) *float64 {
	return utils.RoundPtr(utils.CleanNumber(r.Cell(row, column)), 2)
}

// PickColumn retorna o primeiro candidato presente entre as colunas, ou ""
func (r *ShopifyQLResult) PickColumn(candidates ...string) string {
	for _, c := range candidates {
		if r.HasColumn(c) {
			return c
		}
	}
	return ""
}

// FindColumn retorna a primeira coluna que satisfaz o predicado, ou ""
func (r *ShopifyQLResult) FindColumn(match func(name string) bool) string {
	for _, col := range r.Columns {
		name := strings.TrimSpace(col.Name)
		if name != "" && match(name) {
			return name
		}
	}
	return ""
}

type shopifyQLError struct {
	Message string `json:"message"`
}

// ShopifyQLResponse é o envelope GraphQL da consulta
type ShopifyQLResponse struct {
	Data struct {
		ShopifyqlQuery *struct {
			ParseErrors []any            `json:"parseErrors"`
			TableData   *ShopifyQLResult `json:"tableData"`
		} `json:"shopifyqlQuery"`
	} `json:"data"`
	Errors []shopifyQLError `json:"errors"`
}

// ErrorMessages junta as mensagens de erro GraphQL
func (r ShopifyQLResponse) ErrorMessages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}

// ParseErrorMessages normaliza parseErrors, que pode vir como texto ou objeto
func (r ShopifyQLResponse) ParseErrorMessages() []string {
	if r.Data.ShopifyqlQuery == nil {
		return nil
	}
	out := make([]string, 0, len(r.Data.ShopifyqlQuery.ParseErrors))
	for _, pe := range r.Data.ShopifyqlQuery.ParseErrors {
		switch v := pe.(type) {
		case string:
			out = append(out, v)
		case map[string]any:
			if msg, ok := v["message"].(string); ok {
				out = append(out, msg)
				continue
			}
			out = append(out, fmt.Sprint(v))
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}

// Table retorna a tabela ou uma tabela vazia quando a API não trouxe dados
func (r ShopifyQLResponse) Table() *ShopifyQLResult {
	if r.Data.ShopifyqlQuery == nil || r.Data.ShopifyqlQuery.TableData == nil {
		return &ShopifyQLResult{}
	}
	t := r.Data.ShopifyqlQuery.TableData
	if t.Rows == nil {
		t.Rows = []ShopifyQLRow{}
	}
	return t
}
