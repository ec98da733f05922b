package fleet

// dates.go provides the due-date classification primitives.
//
// Calendar dates arrive as YYYY-MM-DD strings. Parsing is deliberately
// strict and non-throwing: a value that does not split on "-" into exactly
// three numeric parts is treated as invalid, and every classifier degrades
// to false rather than returning an error.

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date encoding used throughout.
const DateLayout = "2006-01-02"

// parseCalendarDate splits s on "-" into exactly three numeric components
// and returns the date at local midnight. ok is false for anything else.
func parseCalendarDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local), true
}

// localMidnight truncates t to midnight in the local time zone.
func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// IsWithinDays reports whether date falls within the next days calendar days.
//
// The elapsed time between today's midnight and the target midnight is
// rounded up to whole days, so a date later today counts as 0 days away.
// Dates already in the past yield a non-positive difference and therefore
// also report true: "within N days" includes "overdue". Callers that want
// only overdue records use IsDatePast instead.
//
// Empty or malformed input reports false.
func IsWithinDays(date string, days int) bool {
	if date == "" {
		return false
	}

	target, ok := parseCalendarDate(date)
	if !ok {
		return false
	}

	today := localMidnight(time.Now())
	diff := int(math.Ceil(target.Sub(today).Hours() / 24))
	return diff <= days
}

// IsDatePast reports whether date is strictly before today.
// Empty or malformed input reports false.
func IsDatePast(date string) bool {
	if date == "" {
		return false
	}

	target, ok := parseCalendarDate(date)
	if !ok {
		return false
	}

	return target.Before(localMidnight(time.Now()))
}

// IsToday reports whether the instant t falls on the current calendar day,
// compared by UTC year/month/day. The zero time reports false.
func IsToday(t time.Time) bool {
	if t.IsZero() {
		return false
	}

	now := time.Now().UTC()
	tu := t.UTC()
	return tu.Year() == now.Year() && tu.Month() == now.Month() && tu.Day() == now.Day()
}

// FormatDueIn renders date relative to today for list display:
// "in Nd" for future dates, "Today" for today, the date itself once past,
// and "N/A" / "Invalid Date" for empty or malformed input.
func FormatDueIn(date string) string {
	if date == "" {
		return "N/A"
	}

	target, ok := parseCalendarDate(date)
	if !ok {
		return "Invalid Date"
	}

	today := localMidnight(time.Now())
	diff := int(math.Ceil(target.Sub(today).Hours() / 24))

	switch {
	case diff > 0:
		return fmt.Sprintf("in %dd", diff)
	case diff == 0:
		return "Today"
	default:
		return target.Format(DateLayout)
	}
}
