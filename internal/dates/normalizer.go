package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeDaysPattern = regexp.MustCompile(`(\d+)\s*일\s*뒤`)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "월요일",
	time.Tuesday:   "화요일",
	time.Wednesday: "수요일",
	time.Thursday:  "목요일",
	time.Friday:    "금요일",
	time.Saturday:  "토요일",
	time.Sunday:    "일요일",
}

// Normalizer rewrites relative Korean date expressions into absolute calendar
// dates with weekday names, so the generation prompt never asks the model to
// do date arithmetic. Idempotent once no relative tokens remain.
type Normalizer struct {
	now func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewNormalizerAt fixes the clock, mainly for tests.
func NewNormalizerAt(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// Normalize replaces 내일, 글피 and "N일 뒤" with dates in the literal format
// "YYYY년 MM월 DD일(요일)". Each "N일 뒤" occurrence is resolved independently
// with its own N.
func (n *Normalizer) Normalize(query string) string {
	today := n.now()

	if strings.Contains(query, "내일") {
		query = strings.ReplaceAll(query, "내일", formatDate(today.AddDate(0, 0, 1)))
	}
	if strings.Contains(query, "글피") {
		query = strings.ReplaceAll(query, "글피", formatDate(today.AddDate(0, 0, 2)))
	}

	query = relativeDaysPattern.ReplaceAllStringFunc(query, func(match string) string {
		sub := relativeDaysPattern.FindStringSubmatch(match)
		days, err := strconv.Atoi(sub[1])
		if err != nil {
			return match
		}
		return formatDate(today.AddDate(0, 0, days))
	})

	return query
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%04d년 %02d월 %02d일(%s)", t.Year(), int(t.Month()), t.Day(), weekdayNames[t.Weekday()])
}
