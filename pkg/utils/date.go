package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Número máximo de correções de offset ao converter horário local para UTC
const maxOffsetIterations = 3

// ZonedParts representa um instante decomposto no fuso de relatório
type ZonedParts struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Calendar faz aritmética de calendário no fuso de relatório.
// Todos os retornos são instantes absolutos em UTC.
type Calendar struct {
	loc *time.Location
}

// NewCalendar cria um calendário para o fuso informado. Fusos inválidos caem para UTC.
func NewCalendar(timezone string) *Calendar {
	name := strings.TrimSpace(timezone)
	if name == "" {
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.WithError(err).Warnf("REPORTING_TIMEZONE inválido %q, usando UTC", name)
		loc = time.UTC
	}

	return &Calendar{loc: loc}
}

// Location retorna o fuso efetivo do calendário
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Timezone retorna o nome do fuso efetivo
func (c *Calendar) Timezone() string {
	return c.loc.String()
}

func (c *Calendar) ZonedParts(t time.Time) ZonedParts {
	local := t.In(c.loc)
	return ZonedParts{
		Year:   local.Year(),
		Month:  int(local.Month()),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
	}
}

func (c *Calendar) offset(t time.Time) time.Duration {
	_, seconds := t.In(c.loc).Zone()
	return time.Duration(seconds) * time.Second
}

// ZonedDateTimeToUTC converte um horário de parede no fuso de relatório para UTC.
// Campos fora do intervalo são normalizados (mês 13 vira janeiro do ano seguinte).
// O offset é recalculado até convergir, no máximo maxOffsetIterations vezes.
func (c *Calendar) ZonedDateTimeToUTC(p ZonedParts) time.Time {
	naive := time.Date(p.Year, time.Month(p.Month), p.Day, p.Hour, p.Minute, p.Second, 0, time.UTC)

	utc := naive
	for i := 0; i < maxOffsetIterations; i++ {
		adjusted := naive.Add(-c.offset(utc))
		if adjusted.Equal(utc) {
			break
		}
		utc = adjusted
	}

	return utc
}

func (c *Calendar) StartOfMonth(t time.Time) time.Time {
	p := c.ZonedParts(t)
	return c.ZonedDateTimeToUTC(ZonedParts{Year: p.Year, Month: p.Month, Day: 1})
}

func (c *Calendar) StartOfYear(t time.Time) time.Time {
	p := c.ZonedParts(t)
	return c.ZonedDateTimeToUTC(ZonedParts{Year: p.Year, Month: 1, Day: 1})
}

func (c *Calendar) StartOfDay(t time.Time) time.Time {
	p := c.ZonedParts(t)
	return c.ZonedDateTimeToUTC(ZonedParts{Year: p.Year, Month: p.Month, Day: p.Day})
}

// AddMonths sempre cai no dia 1 do mês de destino
func (c *Calendar) AddMonths(t time.Time, delta int) time.Time {
	p := c.ZonedParts(t)
	return c.ZonedDateTimeToUTC(ZonedParts{Year: p.Year, Month: p.Month + delta, Day: 1})
}

// AddYears sempre cai em 1º de janeiro do ano de destino
func (c *Calendar) AddYears(t time.Time, delta int) time.Time {
	p := c.ZonedParts(t)
	return c.ZonedDateTimeToUTC(ZonedParts{Year: p.Year + delta, Month: 1, Day: 1})
}

// AddDays retorna o início do dia local deslocado em delta dias
func (c *Calendar) AddDays(t time.Time, delta int) time.Time {
	p := c.ZonedParts(t)
	return c.ZonedDateTimeToUTC(ZonedParts{Year: p.Year, Month: p.Month, Day: p.Day + delta})
}

func (c *Calendar) DaysInMonth(t time.Time) int {
	p := c.ZonedParts(t)
	return DaysInYearMonth(p.Year, p.Month)
}

func (c *Calendar) DayOfMonth(t time.Time) int {
	return c.ZonedParts(t).Day
}

// PreviousMTDComparableEnd retorna o último milissegundo do dia equivalente no mês anterior,
// limitado ao tamanho do mês anterior (31/03 -> 28/02 ou 29/02).
func (c *Calendar) PreviousMTDComparableEnd(now, monthStart time.Time) time.Time {
	prevMonthStart := c.AddMonths(monthStart, -1)
	comparableDay := min(c.DayOfMonth(now), c.DaysInMonth(prevMonthStart))

	prev := c.ZonedParts(prevMonthStart)
	comparableDayStart := c.ZonedDateTimeToUTC(ZonedParts{Year: prev.Year, Month: prev.Month, Day: comparableDay})

	return c.AddDays(comparableDayStart, 1).Add(-time.Millisecond)
}

// PreviousYTDComparableEnd retorna o mesmo mês, dia (limitado) e horário local do ano anterior
func (c *Calendar) PreviousYTDComparableEnd(now time.Time) time.Time {
	cur := c.ZonedParts(now)
	previousYear := cur.Year - 1
	comparableDay := min(cur.Day, DaysInYearMonth(previousYear, cur.Month))

	return c.ZonedDateTimeToUTC(ZonedParts{
		Year:   previousYear,
		Month:  cur.Month,
		Day:    comparableDay,
		Hour:   cur.Hour,
		Minute: cur.Minute,
		Second: cur.Second,
	})
}

// ToYMD formata a data local como YYYY-MM-DD
func (c *Calendar) ToYMD(t time.Time) string {
	p := c.ZonedParts(t)
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
}

func DaysInYearMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ISO formata um instante como o toISOString do navegador (UTC, milissegundos)
func ISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
