package cache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
)

// QueryCache guarda respostas de consultas externas por um tempo limitado.
// Uma entrada vencida se comporta como ausente.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// New escolhe o redis quando REDIS_URL está definido e cai para memória quando não está
// ou quando o redis não responde.
func New(cfg config.Cache, namespace string) QueryCache {
	if cfg.RedisURL == "" {
		return NewMemory()
	}

	c, err := NewRedis(cfg.RedisURL, cfg.KeyPrefix+namespace+":")
	if err != nil {
		logrus.WithError(err).Warnf("cache: redis indisponível para %s, usando memória", namespace)
		return NewMemory()
	}

	return c
}
