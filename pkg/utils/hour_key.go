package utils

import (
	"fmt"
	"regexp"
	"time"
)

var (
	hourKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(\d{2})$`)
	hourKeyPrefix  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}-\d{2})`)
)

// HourKeyFromDate gera a chave de bucket horário YYYY-MM-DD-HH em UTC
func HourKeyFromDate(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%04d-%02d-%02d-%02d", u.Year(), int(u.Month()), u.Day(), u.Hour())
}

// UTCFromHourKey faz o caminho inverso de HourKeyFromDate
func UTCFromHourKey(key string) (time.Time, bool) {
	m := hourKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return time.Time{}, false
	}

	var year, month, day, hour int
	fmt.Sscanf(m[1], "%d", &year)
	fmt.Sscanf(m[2], "%d", &month)
	fmt.Sscanf(m[3], "%d", &day)
	fmt.Sscanf(m[4], "%d", &hour)

	return time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC), true
}

// HourKeyPrefix extrai o bucket horário do início de uma row_key ("2026-03-01-10-tw")
func HourKeyPrefix(rowKey string) string {
	m := hourKeyPrefix.FindStringSubmatch(rowKey)
	if m == nil {
		return ""
	}
	return m[1]
}
