package calendaring

import (
	"context"
	"net/url"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

type Calendar interface {
	IsOAuthConfigured() bool
	RedirectURI(requestURL *url.URL) string
	AuthURL(requestURL *url.URL) string
	Connect(ctx context.Context, code string, requestURL *url.URL) (*Connection, error)
	Upcoming(ctx context.Context, calendarID string, maxResults int, cookieToken string) (*domain.UpcomingEventsReport, error)
}
