package dateformatter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/nickromney-org/date-formatter/internal/data"
	"github.com/nickromney-org/date-formatter/pkg/types"
)

var (
	tokenPattern = regexp.MustCompile(`YYYY|MM|DD|HH|mm|ss`)

	months = mustLoadMonths()
)

// Relative-time bucket boundaries, in seconds
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	monthThreshold   = 2592000
	monthDivisor     = 2692000
	secondsPerYear   = 31536000
)

func mustLoadMonths() types.MonthTable {
	table, err := data.LoadEmbeddedMonths()
	if err != nil {
		panic(fmt.Sprintf("dateformatter: embedded month table: %v", err))
	}
	return table
}

// FormatDate replaces every YYYY, MM, DD, HH, mm and ss token in pattern with
// the matching zero-padded field. Other text is copied unchanged.
func (f *Formatter) FormatDate(pattern string) string {
	d := f.date
	return tokenPattern.ReplaceAllStringFunc(pattern, func(token string) string {
		switch token {
		case "YYYY":
			return strconv.Itoa(d.Year())
		case "MM":
			return pad2(int(d.Month()))
		case "DD":
			return pad2(d.Day())
		case "HH":
			return pad2(d.Hour())
		case "mm":
			return pad2(d.Minute())
		case "ss":
			return pad2(d.Second())
		default:
			return token
		}
	})
}

// HasTokens reports whether pattern contains at least one recognised token
func HasTokens(pattern string) bool {
	return tokenPattern.MatchString(pattern)
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// RelativeTime describes the instant relative to the current time,
// e.g. "just now", "in 5 minutes" or "3 days ago"
func (f *Formatter) RelativeTime() string {
	return f.RelativeTimeFrom(time.Now())
}

// RelativeTimeFrom describes the instant relative to now.
// Hours, days and years are always phrased in the past tense.
func (f *Formatter) RelativeTimeFrom(now time.Time) string {
	isFuture := !f.date.Before(now)

	gapMillis := now.UnixMilli() - f.date.UnixMilli()
	if isFuture {
		gapMillis = -gapMillis
	}
	diff := float64(gapMillis) / 1000

	switch {
	case diff < 10:
		return "just now"
	case diff < secondsPerMinute:
		return fmt.Sprintf("%s few seconds ago", roundQuotient(diff, 1))
	case diff < secondsPerHour && isFuture:
		return fmt.Sprintf("in %s minutes", roundQuotient(diff, secondsPerMinute))
	case diff < secondsPerHour:
		return fmt.Sprintf("%s minutes ago", roundQuotient(diff, secondsPerMinute))
	case diff < secondsPerDay:
		return fmt.Sprintf("%s hours ago", roundQuotient(diff, secondsPerHour))
	case diff < monthThreshold:
		return fmt.Sprintf("%s days ago", roundQuotient(diff, secondsPerDay))
	case diff < secondsPerYear && isFuture:
		return fmt.Sprintf("in %s months", roundQuotient(diff, monthDivisor))
	case diff < secondsPerYear:
		return fmt.Sprintf("%s months ago", roundQuotient(diff, monthDivisor))
	default:
		return fmt.Sprintf("%s years ago", roundQuotient(diff, secondsPerYear))
	}
}

func roundQuotient(diff, divisor float64) string {
	return strconv.FormatFloat(math.Round(diff/divisor), 'f', 0, 64)
}

// LongDate renders the instant as "December 1, 2024". The boolean is false
// when the month is missing from the month table, in which case the month
// name is left empty.
func (f *Formatter) LongDate() (string, bool) {
	return longDate(f.date, months)
}

func longDate(t time.Time, table types.MonthTable) (string, bool) {
	name, ok := table.Name(int(t.Month()))
	return fmt.Sprintf("%s %d, %d", name, t.Day(), t.Year()), ok
}
