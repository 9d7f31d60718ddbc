package google

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/calendar/v3"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google/calendarclient"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

type CalendarIntegrator interface {
	IsConfigured() bool
	HasRefreshToken() bool
	AuthURL(redirectURI string) string
	Exchange(ctx context.Context, code, redirectURI string) (string, error)
	AdoptRefreshToken(token string)
	Upcoming(ctx context.Context, calendarID string, maxResults int) (*domain.CalendarEvents, error)
}

type CalendarService struct {
	Tokens *TokenManager
	Client calendarclient.Client
	now    func() time.Time
}

func New(tokens *TokenManager, client calendarclient.Client) CalendarIntegrator {
	return &CalendarService{Tokens: tokens, Client: client, now: time.Now}
}

func (s *CalendarService) IsConfigured() bool {
	return s.Tokens.IsConfigured()
}

func (s *CalendarService) HasRefreshToken() bool {
	return s.Tokens.HasRefreshToken()
}

func (s *CalendarService) AuthURL(redirectURI string) string {
	return s.Tokens.AuthCodeURL(redirectURI)
}

func (s *CalendarService) Exchange(ctx context.Context, code, redirectURI string) (string, error) {
	return s.Tokens.Exchange(ctx, code, redirectURI)
}

func (s *CalendarService) AdoptRefreshToken(token string) {
	s.Tokens.AdoptRefreshToken(token)
}

func (s *CalendarService) Upcoming(ctx context.Context, calendarID string, maxResults int) (*domain.CalendarEvents, error) {
	accessToken, err := s.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.Client.ListUpcoming(ctx, accessToken, calendarID, s.now(), maxResults)
	if err != nil {
		if errors.Is(err, calendarclient.ErrUnauthorized) {
			s.Tokens.Invalidate()
			return nil, &AuthRequiredError{Message: err.Error()}
		}
		return nil, err
	}

	out := &domain.CalendarEvents{Events: []domain.CalendarEvent{}}
	if events == nil {
		return out, nil
	}

	if tz := strings.TrimSpace(events.TimeZone); tz != "" {
		out.TimeZone = &tz
	}

	for _, item := range events.Items {
		if item == nil || strings.EqualFold(item.Status, "cancelled") {
			continue
		}
		if event, ok := NormalizeEvent(item); ok {
			out.Events = append(out.Events, event)
		}
	}

	return out, nil
}

// NormalizeEvent converte um evento da API; eventos sem início são descartados
func NormalizeEvent(item *calendar.Event) (domain.CalendarEvent, bool) {
	startDateTime, startDate := eventTimes(item.Start)
	endDateTime, endDate := eventTimes(item.End)

	start := firstNonEmpty(startDateTime, startDate)
	if start == "" {
		return domain.CalendarEvent{}, false
	}

	title := strings.TrimSpace(item.Summary)
	if title == "" {
		title = domain.UntitledEvent
	}

	return domain.CalendarEvent{
		ID:       item.Id,
		Title:    title,
		Start:    start,
		End:      firstNonEmpty(endDateTime, endDate),
		IsAllDay: startDate != "" && startDateTime == "",
		MeetLink: optional(item.HangoutLink),
		Location: optional(item.Location),
		HTMLLink: optional(item.HtmlLink),
	}, true
}

func eventTimes(t *calendar.EventDateTime) (dateTime, date string) {
	if t == nil {
		return "", ""
	}
	return t.DateTime, t.Date
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
