package ingest

import (
	"errors"

	"github.com/ngrash/go-rfc3339/rfc3339"
)

// Record is a flat view of a parsed timestamp. Fields finer than the
// value's granularity are left nil.
type Record struct {
	Granularity    string `json:"granularity"`
	Year           int    `json:"year"`
	Month          *int   `json:"month,omitempty"`
	Day            *int   `json:"day,omitempty"`
	Hour           *int   `json:"hour,omitempty"`
	Minute         *int   `json:"minute,omitempty"`
	Second         *int   `json:"second,omitempty"`
	Nanosecond     *int   `json:"nanosecond,omitempty"`
	FractionDigits int    `json:"fraction_digits,omitempty"`
	Offset         string `json:"offset,omitempty"`
	Unix           *int64 `json:"unix,omitempty"`
}

// Describe flattens dt into a Record.
func Describe(dt rfc3339.DateTime) Record {
	r := Record{
		Granularity: dt.Granularity().String(),
		Year:        dt.YearOnly().Year,
	}
	if ym, err := dt.YearMonth(); err == nil {
		r.Month = ptr(int(ym.Month))
	}
	if d, err := dt.Date(); err == nil {
		r.Day = ptr(d.Day)
	}

	switch v := dt.(type) {
	case rfc3339.DateHourMinute:
		r.Hour, r.Minute = ptr(v.Hour), ptr(v.Minute)
	case rfc3339.DateTimeSecond:
		r.Hour, r.Minute, r.Second = ptr(v.Hour), ptr(v.Minute), ptr(v.Second)
	case rfc3339.DateTimeNano:
		r.Hour, r.Minute, r.Second = ptr(v.Hour), ptr(v.Minute), ptr(v.Second)
		r.Nanosecond = ptr(v.Nanosecond)
		r.FractionDigits = v.FractionDigits
	}

	if off, ok := dt.ZoneOffset(); ok {
		r.Offset = off.String()
	}
	if unix, err := dt.Unix(); err == nil {
		r.Unix = &unix
	}
	return r
}

// Category names the error category of a parse failure: one of
// "structural", "lexical", "range", "trailing", or "other".
func Category(err error) string {
	switch {
	case errors.Is(err, rfc3339.ErrStructural):
		return "structural"
	case errors.Is(err, rfc3339.ErrLexical):
		return "lexical"
	case errors.Is(err, rfc3339.ErrRange):
		return "range"
	case errors.Is(err, rfc3339.ErrTrailing):
		return "trailing"
	default:
		return "other"
	}
}

func ptr[T any](v T) *T { return &v }
