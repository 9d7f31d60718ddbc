package calendaring

import (
	"errors"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/google"
)

var (
	ErrOAuthNotConfigured = errors.New("Google OAuth client id/secret not configured on backend")
	ErrMissingCode        = errors.New("Google did not return an authorization code")
)

// ErrAuthRequired é o mesmo sentinel do integrador, a mensagem vem do erro original
var ErrAuthRequired = google.ErrAuthRequired

// CalendarError embrulha falhas da API do Google Calendar (HTTP 502)
type CalendarError struct {
	Err error
}

func (e *CalendarError) Error() string {
	return e.Err.Error()
}

func (e *CalendarError) Unwrap() error {
	return e.Err
}
