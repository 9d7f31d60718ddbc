package calendarclient

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var ErrUnauthorized = errors.New("Google Calendar authorization required")

const eventFields = "timeZone,items(id,summary,status,start,end,hangoutLink,location,htmlLink)"

type Client interface {
	ListUpcoming(ctx context.Context, accessToken, calendarID string, timeMin time.Time, maxResults int) (*calendar.Events, error)
}

type GoogleCalendarClient struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient() Client {
	return &GoogleCalendarClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithEndpoint aponta a API para outro endereço (testes)
func NewClientWithEndpoint(httpClient *http.Client, endpoint string) Client {
	return &GoogleCalendarClient{httpClient: httpClient, endpoint: endpoint}
}

// ListUpcoming lista eventos a partir de timeMin, expandindo recorrências e ordenando por início
func (c *GoogleCalendarClient) ListUpcoming(ctx context.Context, accessToken, calendarID string, timeMin time.Time, maxResults int) (*calendar.Events, error) {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	authorized := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient), tokenSource)

	opts := []option.ClientOption{option.WithHTTPClient(authorized)}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Calendar")
	}

	events, err := svc.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(timeMin.UTC().Format(time.RFC3339)).
		MaxResults(int64(maxResults)).
		Fields(googleapi.Field(eventFields)).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
				return nil, ErrUnauthorized
			}
			if apiErr.Message != "" {
				return nil, errors.New(apiErr.Message)
			}
		}
		return nil, errors.Wrap(err, "Google Calendar API request failed")
	}

	return events, nil
}
