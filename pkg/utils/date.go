package utils

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ParseDate aceita datas ISO (2006-01-02), RFC3339 e os demais formatos conhecidos pelo cast.
// Datas sem fuso são interpretadas em UTC.
func ParseDate(dateStr string) (time.Time, error) {
	date, err := cast.StringToDate(strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, err
	}

	return date.UTC(), nil
}

// StartOfDay trunca a data para meia-noite no mesmo fuso
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth retorna o primeiro dia do mês à meia-noite
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
