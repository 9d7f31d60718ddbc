package google

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google/calendarclient"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google/mocks"
)

// tokenManagerWithAccess devolve um gerenciador que já tem access token válido
func tokenManagerWithAccess(now time.Time) *TokenManager {
	tm := NewTokenManagerWithEndpoint(googleConfig("rt"), oauth2.Endpoint{}, func() time.Time { return now })
	tm.storeAccessToken(&oauth2.Token{AccessToken: "at", Expiry: now.Add(time.Hour)})
	return tm
}

func TestCalendarService_Upcoming(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListUpcoming(gomock.Any(), "at", "primary", gomock.Any(), 4).Return(&calendar.Events{
		TimeZone: "America/Sao_Paulo",
		Items: []*calendar.Event{
			{Id: "1", Summary: "Reunião", Start: &calendar.EventDateTime{DateTime: "2026-03-10T14:00:00-03:00"}, End: &calendar.EventDateTime{DateTime: "2026-03-10T15:00:00-03:00"}, HangoutLink: "https://meet.google.com/x"},
			{Id: "2", Status: "cancelled", Start: &calendar.EventDateTime{Date: "2026-03-11"}},
			{Id: "3", Summary: "  ", Start: &calendar.EventDateTime{Date: "2026-03-12"}, End: &calendar.EventDateTime{Date: "2026-03-13"}},
			{Id: "4", Summary: "Sem início"},
		},
	}, nil)

	svc := &CalendarService{Tokens: tokenManagerWithAccess(now), Client: client, now: func() time.Time { return now }}

	out, err := svc.Upcoming(context.Background(), "primary", 4)
	require.NoError(t, err)
	require.NotNil(t, out.TimeZone)
	assert.Equal(t, "America/Sao_Paulo", *out.TimeZone)
	require.Len(t, out.Events, 2)

	assert.Equal(t, "Reunião", out.Events[0].Title)
	assert.False(t, out.Events[0].IsAllDay)
	assert.Equal(t, "https://meet.google.com/x", *out.Events[0].MeetLink)
	assert.Nil(t, out.Events[0].Location)

	assert.Equal(t, "(Untitled)", out.Events[1].Title)
	assert.True(t, out.Events[1].IsAllDay)
	assert.Equal(t, "2026-03-13", out.Events[1].End)
}

func TestCalendarService_UnauthorizedInvalidatesToken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListUpcoming(gomock.Any(), "at", "primary", gomock.Any(), 4).Return(nil, calendarclient.ErrUnauthorized)

	tm := tokenManagerWithAccess(now)
	svc := &CalendarService{Tokens: tm, Client: client, now: func() time.Time { return now }}

	_, err := svc.Upcoming(context.Background(), "primary", 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAuthRequired))
	assert.Equal(t, "", tm.accessToken)
}
