package utils

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ParseBoundedInt lê um inteiro da query string limitado a [1, max].
// Valores ausentes usam fallback, valores inválidos também.
func ParseBoundedInt(values url.Values, key string, fallback, max int) int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		raw = strconv.Itoa(fallback)
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}

	return ClampInt(int(math.Floor(n)), 1, max)
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Truncate corta o corpo de respostas de erro antes de incluí-lo em mensagens
func Truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n])
}
