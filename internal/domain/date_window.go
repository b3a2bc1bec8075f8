package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-range-proxy/pkg/utils"
)

const (
	maxDayRange   = 999
	maxMonthRange = 36
)

var (
	dayRangePattern   = regexp.MustCompile(`^-?\d{1,3}$`)
	monthRangePattern = regexp.MustCompile(`^-?\d{1,2}$`)
)

// SalesQuery reúne os parâmetros de período recebidos na query
type SalesQuery struct {
	Start string
	End   string
	Day   string
	Range string
	Month string
}

// DateWindow é o período resolvido da requisição. End é um limite exclusivo e pode ser
// anterior a Start, caso em que os dias são percorridos para trás.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// DayBucket é um dia do período, mapeado para exatamente uma chamada ao upstream
type DayBucket struct {
	Index int
	Start time.Time
	End   time.Time
}

func (w DateWindow) IsForward() bool {
	return w.Start.Before(w.End)
}

// Days retorna a quantidade de dias inteiros entre Start e End, independente da direção
func (w DateWindow) Days() int {
	diff := w.End.Sub(w.Start)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}

// Buckets gera os dias do período em ordem, a partir de Start, na direção da janela.
// Dias sem vendas não são pulados.
func (w DateWindow) Buckets() []DayBucket {
	days := w.Days()
	step := 1
	if !w.IsForward() {
		step = -1
	}

	buckets := make([]DayBucket, 0, days)
	for i := range days {
		start := w.Start.AddDate(0, 0, i*step)
		buckets = append(buckets, DayBucket{
			Index: i,
			Start: start,
			End:   start.AddDate(0, 0, step),
		})
	}

	return buckets
}

// Day retorna o início do dia coberto pelo bucket
func (b DayBucket) Day() time.Time {
	if b.End.Before(b.Start) {
		return b.End
	}
	return b.Start
}

// Bounds retorna o sub-período do bucket em ordem cronológica
func (b DayBucket) Bounds() (time.Time, time.Time) {
	if b.End.Before(b.Start) {
		return b.End, b.Start
	}
	return b.Start, b.End
}

// ResolveDateWindow transforma os parâmetros de período em uma DateWindow.
// Prioridade: start/end, depois day+range, depois month(+range). O ano do mês é sempre o ano de now.
func ResolveDateWindow(q SalesQuery, now time.Time) (DateWindow, error) {
	switch {
	case q.Start != "" || q.End != "":
		return resolveExplicit(q)
	case q.Day != "":
		return resolveDay(q)
	case q.Month != "":
		return resolveMonth(q, now)
	default:
		return DateWindow{}, NewValidationError(ErrMissingParameter, "start", "start/end or month required")
	}
}

func resolveExplicit(q SalesQuery) (DateWindow, error) {
	if q.Start == "" {
		return DateWindow{}, NewValidationError(ErrMissingParameter, "start", "start date is required when end is given")
	}

	if q.End == "" {
		return DateWindow{}, NewValidationError(ErrMissingParameter, "end", "end date is required when start is given")
	}

	start, err := utils.ParseDate(q.Start)
	if err != nil {
		return DateWindow{}, NewValidationError(ErrInvalidDate, "start", q.Start)
	}

	end, err := utils.ParseDate(q.End)
	if err != nil {
		return DateWindow{}, NewValidationError(ErrInvalidDate, "end", q.End)
	}

	return DateWindow{Start: start, End: end}, nil
}

func resolveDay(q SalesQuery) (DateWindow, error) {
	if q.Range == "" {
		return DateWindow{}, NewValidationError(ErrMissingParameter, "range", "range is required when day is given")
	}

	day, err := utils.ParseDate(q.Day)
	if err != nil {
		return DateWindow{}, NewValidationError(ErrInvalidDate, "day", q.Day)
	}
	day = utils.StartOfDay(day)

	n, err := parseRange(q.Range, dayRangePattern, maxDayRange)
	if err != nil {
		return DateWindow{}, err
	}

	if n > 0 {
		return DateWindow{Start: day, End: day.AddDate(0, 0, n)}, nil
	}

	// Intervalo negativo: os |n| dias terminando em day, percorridos para trás
	next := day.AddDate(0, 0, 1)
	return DateWindow{Start: next, End: next.AddDate(0, 0, n)}, nil
}

func resolveMonth(q SalesQuery, now time.Time) (DateWindow, error) {
	month, err := ParseMonth(q.Month)
	if err != nil {
		return DateWindow{}, NewValidationError(ErrInvalidDate, "month", q.Month)
	}

	first := time.Date(now.Year(), month, 1, 0, 0, 0, 0, time.UTC)

	if q.Range == "" {
		return DateWindow{Start: first, End: first.AddDate(0, 1, 0)}, nil
	}

	n, err := parseRange(q.Range, monthRangePattern, maxMonthRange)
	if err != nil {
		return DateWindow{}, err
	}

	if n > 0 {
		return DateWindow{Start: first, End: first.AddDate(0, n, 0)}, nil
	}

	next := first.AddDate(0, 1, 0)
	return DateWindow{Start: next, End: next.AddDate(0, n, 0)}, nil
}

func parseRange(raw string, pattern *regexp.Regexp, limit int) (int, error) {
	raw = strings.TrimSpace(raw)
	if !pattern.MatchString(raw) {
		return 0, NewValidationError(ErrInvalidRange, "range", raw)
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 || n > limit || n < -limit {
		return 0, NewValidationError(ErrInvalidRange, "range", fmt.Sprintf("%s (expected ±1..%d)", raw, limit))
	}

	return n, nil
}

// ParseMonth aceita o número do mês (1-12) ou o nome em inglês, completo ou abreviado, sem diferenciar maiúsculas
func ParseMonth(raw string) (time.Month, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return 0, ErrInvalidDate
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 12 {
			return 0, ErrInvalidDate
		}
		return time.Month(n), nil
	}

	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if value == name || value == name[:3] {
			return m, nil
		}
	}

	return 0, ErrInvalidDate
}
