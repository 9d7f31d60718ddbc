package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var numberNoise = strings.NewReplacer(
	"\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "",
	"\u00a0", "",
	"$", "", ",", "", "%", "", "£", "", "€", "",
)

// RoundValue arredonda para a quantidade de casas informada
func RoundValue(v float64, digits int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(digits).InexactFloat64()
}

// Round retorna nil para valores não finitos
func Round(v float64, digits int32) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	r := RoundValue(v, digits)
	return &r
}

func RoundPtr(v *float64, digits int32) *float64 {
	if v == nil {
		return nil
	}
	return Round(*v, digits)
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundValue(f, 2)
}

// PctChange retorna a variação percentual com 2 casas, ou nil quando não há base
func PctChange(current, previous *float64) *float64 {
	if current == nil || previous == nil || *previous == 0 {
		return nil
	}
	return Round((*current-*previous)/math.Abs(*previous)*100, 2)
}

// Ratio retorna a/b ou nil quando b <= 0
func Ratio(a, b float64) *float64 {
	if b <= 0 {
		return nil
	}
	return Float(a / b)
}

func Float(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func Value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// CleanNumber converte valores vindos de planilhas e APIs ("$1,234.50", "12%", 3) em número.
// Retorna nil quando o valor está vazio ou não é numérico.
func CleanNumber(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return Float(v)
	case float32:
		return Float(float64(v))
	case int:
		return Float(float64(v))
	case int64:
		return Float(float64(v))
	case *float64:
		if v == nil {
			return nil
		}
		return Float(*v)
	case fmt.Stringer:
		return parseCleanString(v.String())
	case bool:
		return nil
	case string:
		return parseCleanString(v)
	default:
		return parseCleanString(fmt.Sprint(v))
	}
}

func parseCleanString(raw string) *float64 {
	if raw == "" {
		return nil
	}

	cleaned := numberNoise.Replace(raw)
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return nil
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return Float(n)
}

// FormatAmount formata sem zeros à direita (2000 -> "2000", 12.5 -> "12.5")
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
