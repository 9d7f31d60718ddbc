package calendaring

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google"
	googlemocks "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google/mocks"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

func mustURL(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestSanitizeCalendarID(t *testing.T) {
	assert.Equal(t, "primary", SanitizeCalendarID("  ", ""))
	assert.Equal(t, "team@example.com", SanitizeCalendarID("", " team@example.com "))
	assert.Equal(t, "other", SanitizeCalendarID("other", "team@example.com"))
	assert.Len(t, SanitizeCalendarID(strings.Repeat("a", 300), ""), 200)
}

func TestService_RedirectURI(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		request    string
		want       string
	}{
		{"sem configuração usa a origem", "", "https://dash.example.com/api/google/oauth/start", "https://dash.example.com/api/google/oauth/callback"},
		{"configurado público", "https://api.example.com/cb", "https://dash.example.com/x", "https://api.example.com/cb"},
		{"localhost configurado com host público", "http://localhost:8787/cb", "https://dash.example.com/x", "https://dash.example.com/api/google/oauth/callback"},
		{"localhost em ambos", "http://127.0.0.1:8787/cb", "http://localhost:8787/x", "http://127.0.0.1:8787/cb"},
		{"inválido", "::nope", "http://localhost:8787/x", "http://localhost:8787/api/google/oauth/callback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(config.Google{RedirectURI: tt.configured}, nil)
			assert.Equal(t, tt.want, s.RedirectURI(mustURL(t, tt.request)))
		})
	}
}

func TestService_Connect(t *testing.T) {
	request := "https://dash.example.com/api/google/oauth/callback?code=abc"

	tests := []struct {
		name     string
		code     string
		setup    func(m *googlemocks.MockCalendarIntegrator)
		validate func(t *testing.T, got *Connection, err error)
	}{
		{
			name: "oauth não configurado",
			code: "abc",
			setup: func(m *googlemocks.MockCalendarIntegrator) {
				m.EXPECT().IsConfigured().Return(false)
			},
			validate: func(t *testing.T, got *Connection, err error) {
				assert.ErrorIs(t, err, ErrOAuthNotConfigured)
			},
		},
		{
			name: "sem código",
			code: " ",
			setup: func(m *googlemocks.MockCalendarIntegrator) {
				m.EXPECT().IsConfigured().Return(true)
			},
			validate: func(t *testing.T, got *Connection, err error) {
				assert.ErrorIs(t, err, ErrMissingCode)
			},
		},
		{
			name: "troca o código pelo refresh token",
			code: "abc",
			setup: func(m *googlemocks.MockCalendarIntegrator) {
				m.EXPECT().IsConfigured().Return(true)
				m.EXPECT().HasRefreshToken().Return(false)
				m.EXPECT().Exchange(gomock.Any(), "abc", "https://dash.example.com/api/google/oauth/callback").Return("rt-1", nil)
			},
			validate: func(t *testing.T, got *Connection, err error) {
				require.NoError(t, err)
				assert.Equal(t, &Connection{RefreshToken: "rt-1"}, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			integrator := googlemocks.NewMockCalendarIntegrator(ctrl)
			tt.setup(integrator)

			s := NewService(config.Google{}, integrator)
			got, err := s.Connect(context.Background(), tt.code, mustURL(t, request))
			tt.validate(t, got, err)
		})
	}
}

func TestService_Upcoming(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	tz := "America/Sao_Paulo"

	tests := []struct {
		name     string
		setup    func(m *googlemocks.MockCalendarIntegrator)
		validate func(t *testing.T, got *domain.UpcomingEventsReport, err error)
	}{
		{
			name: "adota o cookie e normaliza parâmetros",
			setup: func(m *googlemocks.MockCalendarIntegrator) {
				m.EXPECT().HasRefreshToken().Return(false)
				m.EXPECT().AdoptRefreshToken("cookie-rt")
				m.EXPECT().Upcoming(gomock.Any(), "team@example.com", 10).Return(&domain.CalendarEvents{
					TimeZone: &tz,
					Events:   []domain.CalendarEvent{{ID: "e1", Title: "Reunião", Start: "2026-03-16T09:00:00-03:00"}},
				}, nil)
			},
			validate: func(t *testing.T, got *domain.UpcomingEventsReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2026-03-15T10:00:00.000Z", got.UpdatedAt)
				assert.Equal(t, "team@example.com", got.CalendarID)
				assert.Equal(t, &tz, got.TimeZone)
				assert.Len(t, got.Events, 1)
			},
		},
		{
			name: "autorização expirada",
			setup: func(m *googlemocks.MockCalendarIntegrator) {
				m.EXPECT().HasRefreshToken().Return(true)
				m.EXPECT().Upcoming(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &google.AuthRequiredError{Message: "Google Calendar authorization expired."})
			},
			validate: func(t *testing.T, got *domain.UpcomingEventsReport, err error) {
				assert.ErrorIs(t, err, ErrAuthRequired)
				assert.Equal(t, "Google Calendar authorization expired.", err.Error())
			},
		},
		{
			name: "oauth não configurado",
			setup: func(m *googlemocks.MockCalendarIntegrator) {
				m.EXPECT().HasRefreshToken().Return(true)
				m.EXPECT().Upcoming(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, google.ErrNotConfigured)
			},
			validate: func(t *testing.T, got *domain.UpcomingEventsReport, err error) {
				assert.ErrorIs(t, err, ErrOAuthNotConfigured)
			},
		},
		{
			name: "falha da API vira CalendarError",
			setup: func(m *googlemocks.MockCalendarIntegrator) {
				m.EXPECT().HasRefreshToken().Return(true)
				m.EXPECT().Upcoming(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("googleapi: 500"))
			},
			validate: func(t *testing.T, got *domain.UpcomingEventsReport, err error) {
				var calendarErr *CalendarError
				assert.ErrorAs(t, err, &calendarErr)
				assert.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			integrator := googlemocks.NewMockCalendarIntegrator(ctrl)
			tt.setup(integrator)

			s := NewService(config.Google{CalendarID: "team@example.com"}, integrator)
			s.now = func() time.Time { return now }

			got, err := s.Upcoming(context.Background(), "", 25, "cookie-rt")
			tt.validate(t, got, err)
		})
	}
}
