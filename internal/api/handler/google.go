package handler

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/retail-dashboard-api/internal/usecases/calendaring"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const (
	refreshTokenCookie       = "elave_gcal_rt"
	refreshTokenCookieMaxAge = 180 * 24 * time.Hour
)

// requestURL reconstrói a URL pública da requisição, respeitando proxies
func requestURL(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Proto"), ",")[0]); forwarded != "" {
		scheme = forwarded
	}
	host := r.Host
	if forwarded := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Host"), ",")[0]); forwarded != "" {
		host = forwarded
	}

	u := *r.URL
	u.Scheme = scheme
	u.Host = host
	return &u
}

func OAuthStart(calendar calendaring.Calendar) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !calendar.IsOAuthConfigured() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "google_oauth_not_configured",
				"error":  calendaring.ErrOAuthNotConfigured.Error(),
			})
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		http.Redirect(w, r, calendar.AuthURL(requestURL(r)), http.StatusFound)
	})
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	fmt.Fprintf(w, "<!doctype html><html><head><meta charset=\"utf-8\"><title>Google Calendar</title></head><body>%s</body></html>", body)
}

func OAuthCallback(calendar calendaring.Calendar) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !calendar.IsOAuthConfigured() {
			writeHTML(w, http.StatusServiceUnavailable, "<h1>Google Calendar OAuth not configured</h1><p>Set GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_CLIENT_SECRET on the backend.</p>")
			return
		}

		query := r.URL.Query()
		if oauthErr := strings.TrimSpace(query.Get("error")); oauthErr != "" {
			writeHTML(w, http.StatusBadRequest, "<h1>Google authorization failed</h1><p>"+html.EscapeString(oauthErr)+"</p>")
			return
		}

		conn, err := calendar.Connect(r.Context(), query.Get("code"), requestURL(r))
		if err != nil {
			if errors.Is(err, calendaring.ErrMissingCode) {
				writeHTML(w, http.StatusBadRequest, "<h1>Missing OAuth code</h1><p>Google did not return an authorization code.</p>")
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("google: falha na troca do código")
			writeHTML(w, http.StatusInternalServerError, "<h1>Google OAuth token exchange failed</h1><p>"+html.EscapeString(err.Error())+"</p>")
			return
		}

		var hint string
		switch {
		case conn.RefreshToken != "":
			http.SetCookie(w, &http.Cookie{
				Name:     refreshTokenCookie,
				Value:    url.QueryEscape(conn.RefreshToken),
				Path:     "/",
				MaxAge:   int(refreshTokenCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   true,
				SameSite: http.SameSiteLaxMode,
			})
			hint = "<p>Connected.</p><p>This browser now has a secure cookie for Calendar access. " +
				"For all devices and cold starts, set <code>GOOGLE_CALENDAR_REFRESH_TOKEN</code> to this value:</p>" +
				"<textarea readonly style=\"width:100%;min-height:88px;font-family:monospace\">" + html.EscapeString(conn.RefreshToken) + "</textarea>"
		case conn.HadRefreshToken:
			hint = "<p>Connected using an existing refresh token.</p><p>For reliable access on cold starts, set <code>GOOGLE_CALENDAR_REFRESH_TOKEN</code>.</p>"
		default:
			hint = "<p>Connected for this runtime only. Re-auth may be needed after restart.</p>"
		}

		writeHTML(w, http.StatusOK, "<h1>Google Calendar connected</h1>"+hint+"<p>You can close this tab and refresh the dashboard.</p>")
	})
}

func refreshTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		return ""
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return strings.TrimSpace(cookie.Value)
	}
	return strings.TrimSpace(value)
}

func CalendarUpcoming(calendar calendaring.Calendar) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		maxResults := utils.ParseBoundedInt(query, "max", calendaring.DefaultUpcomingLimit, calendaring.MaxUpcomingLimit)

		report, err := calendar.Upcoming(r.Context(), query.Get("calendarId"), maxResults, refreshTokenFromCookie(r))
		if err != nil {
			var calendarErr *calendaring.CalendarError
			switch {
			case errors.Is(err, calendaring.ErrOAuthNotConfigured):
				writeJSON(w, http.StatusServiceUnavailable, map[string]any{
					"status": "google_oauth_not_configured",
					"error":  err.Error(),
				})
			case errors.Is(err, calendaring.ErrAuthRequired):
				var authURL *string
				if calendar.IsOAuthConfigured() {
					u := calendar.AuthURL(requestURL(r))
					authURL = &u
				}
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"status":   "google_auth_required",
					"error":    err.Error(),
					"auth_url": authURL,
				})
			case errors.As(err, &calendarErr):
				writeJSON(w, http.StatusBadGateway, map[string]any{
					"status": "google_calendar_error",
					"error":  err.Error(),
				})
			default:
				writeErrorJSON(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
