package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	h := Cors()(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/summary", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,PUT,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthAndAdminOnly(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		validator fakeValidator
		want      int
	}{
		{"sem header", "", fakeValidator{}, http.StatusUnauthorized},
		{"sem bearer", "Basic abc", fakeValidator{}, http.StatusUnauthorized},
		{"token inválido", "Bearer abc", fakeValidator{err: errors.New("expired")}, http.StatusUnauthorized},
		{"papel sem permissão", "Bearer abc", fakeValidator{claims: &domain.Claims{UserID: 2, UserRoleID: 3}}, http.StatusForbidden},
		{"admin", "Bearer abc", fakeValidator{claims: &domain.Claims{UserID: 1, UserRoleID: RoleAdmin}}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RequireAuth(tt.validator)(AdminOnly()(okHandler()))

			req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	h := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pace", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
