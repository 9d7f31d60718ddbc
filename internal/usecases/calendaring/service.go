package calendaring

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const (
	DefaultCalendarID    = "primary"
	maxCalendarIDLength  = 200
	callbackPath         = "/api/google/oauth/callback"
	DefaultUpcomingLimit = 4
	MaxUpcomingLimit     = 10
)

var _ Calendar = (*Service)(nil)

// Connection é o resultado do callback OAuth
type Connection struct {
	// RefreshToken vem preenchido só quando o Google emitiu um novo
	RefreshToken string
	// HadRefreshToken indica que já existia um refresh token em memória
	HadRefreshToken bool
}

type Service struct {
	cfg      config.Google
	calendar google.CalendarIntegrator
	now      func() time.Time
}

func NewService(cfg config.Google, calendar google.CalendarIntegrator) *Service {
	return &Service{cfg: cfg, calendar: calendar, now: time.Now}
}

func (s *Service) IsOAuthConfigured() bool {
	return s.calendar.IsConfigured()
}

// RedirectURI usa o redirect configurado, a não ser que ele aponte para localhost
// enquanto a requisição chegou por um host público
func (s *Service) RedirectURI(requestURL *url.URL) string {
	fallback := requestURL.Scheme + "://" + requestURL.Host + callbackPath

	raw := strings.TrimSpace(s.cfg.RedirectURI)
	if raw == "" {
		return fallback
	}
	configured, err := url.Parse(raw)
	if err != nil || configured.Host == "" {
		return fallback
	}
	if !isLocalHost(requestURL.Hostname()) && isLocalHost(configured.Hostname()) {
		return fallback
	}
	return configured.String()
}

func (s *Service) AuthURL(requestURL *url.URL) string {
	return s.calendar.AuthURL(s.RedirectURI(requestURL))
}

func (s *Service) Connect(ctx context.Context, code string, requestURL *url.URL) (*Connection, error) {
	if !s.calendar.IsConfigured() {
		return nil, ErrOAuthNotConfigured
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMissingCode
	}

	hadRefresh := s.calendar.HasRefreshToken()
	refresh, err := s.calendar.Exchange(ctx, code, s.RedirectURI(requestURL))
	if err != nil {
		return nil, err
	}

	return &Connection{RefreshToken: refresh, HadRefreshToken: hadRefresh}, nil
}

// Upcoming lista os próximos eventos. O refresh token do cookie só é usado quando
// o servidor ainda não tem um.
func (s *Service) Upcoming(ctx context.Context, calendarID string, maxResults int, cookieToken string) (*domain.UpcomingEventsReport, error) {
	if !s.calendar.HasRefreshToken() {
		s.calendar.AdoptRefreshToken(cookieToken)
	}

	calendarID = SanitizeCalendarID(calendarID, s.cfg.CalendarID)
	maxResults = utils.ClampInt(maxResults, 1, MaxUpcomingLimit)

	events, err := s.calendar.Upcoming(ctx, calendarID, maxResults)
	if err != nil {
		switch {
		case errors.Is(err, google.ErrNotConfigured):
			return nil, ErrOAuthNotConfigured
		case errors.Is(err, ErrAuthRequired):
			return nil, err
		}
		logrus.WithError(err).WithField("calendar_id", calendarID).Warn("calendar: falha ao listar eventos")
		return nil, &CalendarError{Err: err}
	}

	report := &domain.UpcomingEventsReport{
		UpdatedAt:  utils.ISO(s.now()),
		CalendarID: calendarID,
		Events:     []domain.CalendarEvent{},
	}
	if events != nil {
		report.TimeZone = events.TimeZone
		if events.Events != nil {
			report.Events = events.Events
		}
	}
	return report, nil
}

// SanitizeCalendarID cai no padrão configurado (ou "primary") e limita o tamanho
func SanitizeCalendarID(value, fallback string) string {
	id := strings.TrimSpace(value)
	if id == "" {
		id = strings.TrimSpace(fallback)
	}
	if id == "" {
		return DefaultCalendarID
	}
	if len(id) > maxCalendarIDLength {
		id = id[:maxCalendarIDLength]
	}
	return id
}

func isLocalHost(host string) bool {
	host = strings.ToLower(host)
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
