// Package dateformatter normalises dates supplied as time values, epoch
// timestamps or strings, and renders them as pattern strings, relative-time
// phrases or long-form calendar dates.
//
// All calendar fields are read in the process's local time zone.
package dateformatter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/araddon/dateparse"
	"golang.org/x/text/unicode/norm"
)

// maxMillis bounds valid instants to ±100,000,000 days around the epoch
const maxMillis = 8_640_000_000_000_000

var (
	minInstant = time.UnixMilli(-maxMillis)
	maxInstant = time.UnixMilli(maxMillis)

	// timestampPattern matches strings that are a bare, optionally signed,
	// epoch value in seconds or milliseconds
	timestampPattern = regexp.MustCompile(`^[-+]?\d{10,13}$`)
)

// Formatter holds a single normalised instant and renders it in several forms
type Formatter struct {
	date time.Time
}

// New normalises input into a Formatter.
//
// Accepted inputs are time.Time, *time.Time, any Go integer or float type
// (epoch seconds when the value has exactly 10 digits, milliseconds otherwise)
// and strings (bare, optionally signed 10-13 digit timestamps, or any common
// date layout).
// Other types fail with ErrInvalidInputType; values that do not describe a
// representable instant fail with ErrInvalidDateValue.
func New(input any) (*Formatter, error) {
	date, err := normalize(input)
	if err != nil {
		return nil, err
	}
	return &Formatter{date: date.Local()}, nil
}

// Time returns the normalised instant in local time
func (f *Formatter) Time() time.Time {
	return f.date
}

func normalize(input any) (time.Time, error) {
	switch v := input.(type) {
	case time.Time:
		return validate(v)
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: got nil *time.Time", ErrInvalidInputType)
		}
		return validate(*v)
	case int:
		return fromInteger(int64(v))
	case int8:
		return fromInteger(int64(v))
	case int16:
		return fromInteger(int64(v))
	case int32:
		return fromInteger(int64(v))
	case int64:
		return fromInteger(v)
	case uint:
		return fromUnsigned(v)
	case uint8:
		return fromInteger(int64(v))
	case uint16:
		return fromInteger(int64(v))
	case uint32:
		return fromInteger(int64(v))
	case uint64:
		return fromUnsigned(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		return fromString(v)
	default:
		return time.Time{}, fmt.Errorf("%w: got %T", ErrInvalidInputType, input)
	}
}

// isSeconds reports whether an integral epoch value has exactly ten decimal digits
func isSeconds(v int64) bool {
	abs := uint64(v)
	if v < 0 {
		abs = uint64(-(v + 1)) + 1
	}
	return abs >= 1_000_000_000 && abs <= 9_999_999_999
}

func fromInteger(v int64) (time.Time, error) {
	ms := v
	if isSeconds(v) {
		ms = v * 1000
	}
	return fromMillis(ms)
}

func fromUnsigned[T uint | uint64](v T) (time.Time, error) {
	n, err := safecast.Conv[int64](v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %d is out of range", ErrInvalidDateValue, v)
	}
	return fromInteger(n)
}

func fromFloat(v float64) (time.Time, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateValue, v)
	}

	ms := v
	if v == math.Trunc(v) && math.Abs(v) < 1e10 && isSeconds(int64(v)) {
		ms = v * 1000
	}
	if math.Abs(ms) > maxMillis {
		return time.Time{}, fmt.Errorf("%w: %v is out of range", ErrInvalidDateValue, v)
	}

	n, err := safecast.Truncate[int64](ms)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v: %w", ErrInvalidDateValue, v, err)
	}
	return fromMillis(n)
}

func fromMillis(ms int64) (time.Time, error) {
	if ms > maxMillis || ms < -maxMillis {
		return time.Time{}, fmt.Errorf("%w: %d ms is out of range", ErrInvalidDateValue, ms)
	}
	return time.UnixMilli(ms), nil
}

func fromString(s string) (time.Time, error) {
	// NFKC folds full-width digits and separators to ASCII
	cleaned := strings.TrimSpace(norm.NFKC.String(s))
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDateValue)
	}

	if timestampPattern.MatchString(cleaned) {
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidDateValue, s, err)
		}
		return fromInteger(n)
	}

	t, err := dateparse.ParseLocal(cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateValue, s)
	}
	return validate(t)
}

func validate(t time.Time) (time.Time, error) {
	if t.Before(minInstant) || t.After(maxInstant) {
		return time.Time{}, fmt.Errorf("%w: %s is out of range", ErrInvalidDateValue, t.Format(time.RFC3339))
	}
	return t, nil
}
