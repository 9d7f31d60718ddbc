package google

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/vfg2006/retail-dashboard-api/internal/config"
)

// Margem para considerar o access token vencido antes da hora
const tokenExpiryLeeway = 30 * time.Second

var (
	ErrNotConfigured = errors.New("Google OAuth client credentials are not configured")
	ErrAuthRequired  = errors.New("google_auth_required")
)

// AuthRequiredError indica que o usuário precisa refazer o consentimento OAuth
type AuthRequiredError struct {
	Message string
}

func (e *AuthRequiredError) Error() string {
	return e.Message
}

func (e *AuthRequiredError) Unwrap() error {
	return ErrAuthRequired
}

// TokenManager guarda em memória os tokens do Google Calendar.
// O refresh token pode vir da configuração, do callback OAuth ou do cookie do navegador.
type TokenManager struct {
	mu           sync.Mutex
	oauth        oauth2.Config
	refreshToken string
	accessToken  string
	expiresAt    time.Time
	now          func() time.Time
}

func NewTokenManager(cfg config.Google) *TokenManager {
	return NewTokenManagerWithEndpoint(cfg, googleoauth.Endpoint, time.Now)
}

func NewTokenManagerWithEndpoint(cfg config.Google, endpoint oauth2.Endpoint, now func() time.Time) *TokenManager {
	return &TokenManager{
		oauth: oauth2.Config{
			ClientID:     strings.TrimSpace(cfg.ClientID),
			ClientSecret: strings.TrimSpace(cfg.ClientSecret),
			Endpoint:     endpoint,
			Scopes:       cfg.ScopeList(),
		},
		refreshToken: strings.TrimSpace(cfg.CalendarRefreshToken),
		now:          now,
	}
}

func (tm *TokenManager) IsConfigured() bool {
	return tm.oauth.ClientID != "" && tm.oauth.ClientSecret != ""
}

// AuthCodeURL monta a URL de consentimento com acesso offline
func (tm *TokenManager) AuthCodeURL(redirectURI string) string {
	cfg := tm.oauth
	cfg.RedirectURL = redirectURI

	return cfg.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// Exchange troca o código do callback por tokens e retorna o refresh token novo, se houver
func (tm *TokenManager) Exchange(ctx context.Context, code, redirectURI string) (string, error) {
	cfg := tm.oauth
	cfg.RedirectURL = redirectURI

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "Google OAuth token exchange failed")
	}

	if strings.TrimSpace(token.AccessToken) == "" {
		return "", errors.New("Google token response did not include an access token")
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	refresh := strings.TrimSpace(token.RefreshToken)
	if refresh != "" {
		tm.refreshToken = refresh
	}
	tm.storeAccessToken(token)

	logrus.WithField("new_refresh_token", refresh != "").Info("google: autorização concluída")

	return refresh, nil
}

// AdoptRefreshToken usa o token do cookie apenas quando ainda não há um em memória
func (tm *TokenManager) AdoptRefreshToken(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.refreshToken == "" {
		tm.refreshToken = token
	}
}

func (tm *TokenManager) HasRefreshToken() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.refreshToken != ""
}

// AccessToken devolve um token válido, renovando pelo refresh token quando necessário
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && tm.now().Add(tokenExpiryLeeway).Before(tm.expiresAt) {
		return tm.accessToken, nil
	}

	if !tm.IsConfigured() {
		return "", ErrNotConfigured
	}

	if tm.refreshToken == "" {
		return "", &AuthRequiredError{Message: "Google Calendar requires authorization. Visit /api/google/oauth/start first."}
	}

	token, err := tm.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: tm.refreshToken}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && strings.EqualFold(retrieveErr.ErrorCode, "invalid_grant") {
			logrus.Warn("google: refresh token revogado, limpando tokens em memória")
			tm.clear()
			return "", &AuthRequiredError{Message: "Google Calendar authorization expired. Reconnect via /api/google/oauth/start."}
		}
		return "", errors.Wrap(err, "Google OAuth refresh failed")
	}

	if strings.TrimSpace(token.AccessToken) == "" {
		return "", errors.New("Google OAuth refresh response missing access token")
	}

	if token.RefreshToken != "" {
		tm.refreshToken = token.RefreshToken
	}
	tm.storeAccessToken(token)

	return tm.accessToken, nil
}

// Invalidate descarta o access token após um 401/403 da API
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.accessToken = ""
	tm.expiresAt = time.Time{}
}

func (tm *TokenManager) storeAccessToken(token *oauth2.Token) {
	minExpiry := tm.now().Add(tokenExpiryLeeway)
	expiry := token.Expiry
	if expiry.IsZero() || expiry.Before(minExpiry) {
		expiry = minExpiry
	}

	tm.accessToken = token.AccessToken
	tm.expiresAt = expiry
}

func (tm *TokenManager) clear() {
	tm.accessToken = ""
	tm.expiresAt = time.Time{}
	tm.refreshToken = ""
}
