package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const serviceName = "dashboard-api"

func HealthcheckHandler(now func() time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": serviceName,
			"time":    utils.ISO(now()),
		})
	})
}

// EndpointsHandler lista as rotas públicas; a lista é lida no momento da requisição
func EndpointsHandler(examples func() []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"endpoints": examples()})
	})
}
