package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/scheduler"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/middleware"
)

// SyncController é a parte do agendador usada pelas rotas administrativas
type SyncController interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() scheduler.SyncStatus
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	})
}

// writeAuthError não diferencia usuário inexistente de senha errada
func writeAuthError(w http.ResponseWriter, err error) {
	if authenticating.IsCredentialsError(err) && !errors.Is(err, authenticating.ErrUserDisabled) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authErr.Code == apiErrors.ErrInternalServer || authErr.Code == apiErrors.ErrDatabaseOperation {
			logrus.WithError(err).Error("erro na autenticação")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Message(), nil)
		return
	}

	logrus.WithError(err).Error("erro inesperado na autenticação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

func Me(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.Profile(r.Context(), claims.UserID)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	})
}

func SyncRun(controller SyncController) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !controller.TriggerManualSync(r.Context()) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"started": false,
				"message": "Sync já em andamento",
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"started": true,
			"message": "Sync iniciado em background",
		})
	})
}

func SyncStatus(controller SyncController) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controller.GetStatus())
	})
}

func ListTargets(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		targets, err := reporter.ListTargets(r.Context())
		if err != nil {
			writeReportError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"targets": targets})
	})
}

func UpsertTarget(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpsertMonthlyTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		month := httprouter.ParamsFromContext(r.Context()).ByName("month")
		target, err := reporter.UpsertTarget(r.Context(), month, req.Target)
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, target)
	})
}

func writeReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		if reportErr.Code == apiErrors.ErrDatabaseOperation {
			logrus.WithError(err).Error("erro de banco nas metas")
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("erro inesperado nas metas")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
