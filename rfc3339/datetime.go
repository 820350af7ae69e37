package rfc3339

import (
	"fmt"
	"time"

	"github.com/ngrash/go-rfc3339/internal/unixtime"
)

// DateTime is the result of a successful parse.
//
// It is one of YearOnly, YearMonth, Date, DateHourMinute, DateTimeSecond and DateTimeNano,
// each carrying only the fields present in the input. Use a type switch to read the fields
// of a specific variant, or the conversion methods to ask for a given precision.
// Conversions to a finer precision than the value holds fail with a *GranularityError.
type DateTime interface {
	// Granularity returns the finest field present in the value.
	Granularity() Granularity
	// Includes reports whether the value carries the field f.
	Includes(f Granularity) bool
	// ZoneOffset returns the UTC offset, if the input had one.
	ZoneOffset() (Offset, bool)

	// YearOnly discards every field finer than the year.
	YearOnly() YearOnly
	// YearMonth discards every field finer than the month.
	YearMonth() (YearMonth, error)
	// Date discards the time of day and offset.
	Date() (Date, error)
	// Local returns the wall clock time interpreted in loc, ignoring any parsed offset.
	// A nil loc means UTC.
	Local(loc *time.Location) (time.Time, error)
	// Time returns the instant described by the value and its offset.
	Time() (time.Time, error)
	// Unix returns the instant as seconds since 1970-01-01T00:00:00Z.
	Unix() (int64, error)

	fields() fields
}

// YearOnly is a value with year granularity, e.g. "2023".
type YearOnly struct {
	Year int
}

// YearMonth is a value with month granularity, e.g. "2023-01".
type YearMonth struct {
	Year  int
	Month time.Month
}

// Date is a value with day granularity, e.g. "2023-01-01".
// Day is in 1..31 and is not checked against the length of the month.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateHourMinute is a value with minute granularity, e.g. "2023-01-01T10:15" or "2023-01-01T10:15+02:00".
type DateHourMinute struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Offset *Offset // nil if the input had no offset
}

// DateTimeSecond is a value with second granularity, e.g. "2023-01-01T23:38:34Z".
// Second is in 0..60; 60 is the leap second numeral.
type DateTimeSecond struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Offset *Offset // nil if the input had no offset
}

// DateTimeNano is a value with sub-second granularity, e.g. "2023-01-01T23:38:34.123Z".
// The grammar requires an offset after a fraction, so Offset is always set.
type DateTimeNano struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	// FractionDigits is the number of digits after the decimal point in the input (1..9).
	// ".5" and ".500" have the same Nanosecond but different FractionDigits.
	FractionDigits int
	Offset         Offset
}

var (
	_ DateTime = YearOnly{}
	_ DateTime = YearMonth{}
	_ DateTime = Date{}
	_ DateTime = DateHourMinute{}
	_ DateTime = DateTimeSecond{}
	_ DateTime = DateTimeNano{}
)

func (d YearOnly) Granularity() Granularity { return GranularityYear }
func (d YearOnly) Includes(f Granularity) bool { return GranularityYear.Includes(f) }
func (d YearOnly) ZoneOffset() (Offset, bool) { return Offset{}, false }
func (d YearOnly) YearOnly() YearOnly { return d }
func (d YearOnly) YearMonth() (YearMonth, error) { return d.fields().yearMonth() }
func (d YearOnly) Date() (Date, error) { return d.fields().date() }
func (d YearOnly) Local(loc *time.Location) (time.Time, error) { return d.fields().local(loc) }
func (d YearOnly) Time() (time.Time, error) { return d.fields().time() }
func (d YearOnly) Unix() (int64, error) { return d.fields().unix() }
func (d YearOnly) fields() fields {
	return fields{granularity: GranularityYear, year: d.Year}
}

func (d YearMonth) Granularity() Granularity { return GranularityMonth }
func (d YearMonth) Includes(f Granularity) bool { return GranularityMonth.Includes(f) }
func (d YearMonth) ZoneOffset() (Offset, bool) { return Offset{}, false }
func (d YearMonth) YearOnly() YearOnly { return YearOnly{Year: d.Year} }
func (d YearMonth) YearMonth() (YearMonth, error) { return d, nil }
func (d YearMonth) Date() (Date, error) { return d.fields().date() }
func (d YearMonth) Local(loc *time.Location) (time.Time, error) { return d.fields().local(loc) }
func (d YearMonth) Time() (time.Time, error) { return d.fields().time() }
func (d YearMonth) Unix() (int64, error) { return d.fields().unix() }
func (d YearMonth) fields() fields {
	return fields{granularity: GranularityMonth, year: d.Year, month: d.Month}
}

func (d Date) Granularity() Granularity { return GranularityDay }
func (d Date) Includes(f Granularity) bool { return GranularityDay.Includes(f) }
func (d Date) ZoneOffset() (Offset, bool) { return Offset{}, false }
func (d Date) YearOnly() YearOnly { return YearOnly{Year: d.Year} }
func (d Date) YearMonth() (YearMonth, error) { return YearMonth{Year: d.Year, Month: d.Month}, nil }
func (d Date) Date() (Date, error) { return d, nil }
func (d Date) Local(loc *time.Location) (time.Time, error) { return d.fields().local(loc) }
func (d Date) Time() (time.Time, error) { return d.fields().time() }
func (d Date) Unix() (int64, error) { return d.fields().unix() }
func (d Date) fields() fields {
	return fields{granularity: GranularityDay, year: d.Year, month: d.Month, day: d.Day}
}

func (d DateHourMinute) Granularity() Granularity { return GranularityMinute }
func (d DateHourMinute) Includes(f Granularity) bool { return GranularityMinute.Includes(f) }
func (d DateHourMinute) ZoneOffset() (Offset, bool) { return d.fields().zoneOffset() }
func (d DateHourMinute) YearOnly() YearOnly { return YearOnly{Year: d.Year} }
func (d DateHourMinute) YearMonth() (YearMonth, error) { return d.fields().yearMonth() }
func (d DateHourMinute) Date() (Date, error) { return d.fields().date() }
func (d DateHourMinute) Local(loc *time.Location) (time.Time, error) { return d.fields().local(loc) }
func (d DateHourMinute) Time() (time.Time, error) { return d.fields().time() }
func (d DateHourMinute) Unix() (int64, error) { return d.fields().unix() }
func (d DateHourMinute) fields() fields {
	return fields{
		granularity: GranularityMinute,
		year:        d.Year,
		month:       d.Month,
		day:         d.Day,
		hour:        d.Hour,
		minute:      d.Minute,
		offset:      d.Offset,
	}
}

func (d DateTimeSecond) Granularity() Granularity { return GranularitySecond }
func (d DateTimeSecond) Includes(f Granularity) bool { return GranularitySecond.Includes(f) }
func (d DateTimeSecond) ZoneOffset() (Offset, bool) { return d.fields().zoneOffset() }
func (d DateTimeSecond) YearOnly() YearOnly { return YearOnly{Year: d.Year} }
func (d DateTimeSecond) YearMonth() (YearMonth, error) { return d.fields().yearMonth() }
func (d DateTimeSecond) Date() (Date, error) { return d.fields().date() }
func (d DateTimeSecond) Local(loc *time.Location) (time.Time, error) { return d.fields().local(loc) }
func (d DateTimeSecond) Time() (time.Time, error) { return d.fields().time() }
func (d DateTimeSecond) Unix() (int64, error) { return d.fields().unix() }
func (d DateTimeSecond) fields() fields {
	return fields{
		granularity: GranularitySecond,
		year:        d.Year,
		month:       d.Month,
		day:         d.Day,
		hour:        d.Hour,
		minute:      d.Minute,
		second:      d.Second,
		offset:      d.Offset,
	}
}

func (d DateTimeNano) Granularity() Granularity { return GranularityNano }
func (d DateTimeNano) Includes(f Granularity) bool { return GranularityNano.Includes(f) }
func (d DateTimeNano) ZoneOffset() (Offset, bool) { return d.Offset, true }
func (d DateTimeNano) YearOnly() YearOnly { return YearOnly{Year: d.Year} }
func (d DateTimeNano) YearMonth() (YearMonth, error) { return d.fields().yearMonth() }
func (d DateTimeNano) Date() (Date, error) { return d.fields().date() }
func (d DateTimeNano) Local(loc *time.Location) (time.Time, error) { return d.fields().local(loc) }
func (d DateTimeNano) Time() (time.Time, error) { return d.fields().time() }
func (d DateTimeNano) Unix() (int64, error) { return d.fields().unix() }
func (d DateTimeNano) fields() fields {
	off := d.Offset
	return fields{
		granularity:    GranularityNano,
		year:           d.Year,
		month:          d.Month,
		day:            d.Day,
		hour:           d.Hour,
		minute:         d.Minute,
		second:         d.Second,
		nano:           d.Nanosecond,
		fractionDigits: d.FractionDigits,
		offset:         &off,
	}
}

// fields is the flat form shared by the conversions.
// Fields finer than granularity are zero and must not be read.
type fields struct {
	granularity    Granularity
	year           int
	month          time.Month
	day            int
	hour           int
	minute         int
	second         int
	nano           int
	fractionDigits int
	offset         *Offset
}

// dateTime returns the variant for f.granularity.
func (f fields) dateTime() DateTime {
	switch f.granularity {
	case GranularityYear:
		return YearOnly{Year: f.year}
	case GranularityMonth:
		return YearMonth{Year: f.year, Month: f.month}
	case GranularityDay:
		return Date{Year: f.year, Month: f.month, Day: f.day}
	case GranularityMinute:
		return DateHourMinute{Year: f.year, Month: f.month, Day: f.day, Hour: f.hour, Minute: f.minute, Offset: f.offset}
	case GranularitySecond:
		return DateTimeSecond{Year: f.year, Month: f.month, Day: f.day, Hour: f.hour, Minute: f.minute, Second: f.second, Offset: f.offset}
	case GranularityNano:
		return DateTimeNano{
			Year: f.year, Month: f.month, Day: f.day,
			Hour: f.hour, Minute: f.minute, Second: f.second,
			Nanosecond: f.nano, FractionDigits: f.fractionDigits,
			Offset: *f.offset,
		}
	}
	panic(fmt.Errorf("no variant for granularity %v", f.granularity))
}

func (f fields) require(g Granularity) error {
	if !f.granularity.Includes(g) {
		return &GranularityError{Have: f.granularity, Need: g}
	}
	return nil
}

func (f fields) zoneOffset() (Offset, bool) {
	if f.offset == nil {
		return Offset{}, false
	}
	return *f.offset, true
}

func (f fields) yearMonth() (YearMonth, error) {
	if err := f.require(GranularityMonth); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{Year: f.year, Month: f.month}, nil
}

func (f fields) date() (Date, error) {
	if err := f.require(GranularityDay); err != nil {
		return Date{}, err
	}
	return Date{Year: f.year, Month: f.month, Day: f.day}, nil
}

// representable checks what time.Date would otherwise silently normalize.
func (f fields) representable() error {
	if !unixtime.ValidDate(f.year, int(f.month), f.day) {
		return fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrNotRepresentable, f.day, f.year, int(f.month))
	}
	if f.second == 60 {
		return fmt.Errorf("%w: leap second numeral at %02d:%02d:60", ErrNotRepresentable, f.hour, f.minute)
	}
	return nil
}

func (f fields) local(loc *time.Location) (time.Time, error) {
	if err := f.require(GranularityMinute); err != nil {
		return time.Time{}, err
	}
	if err := f.representable(); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(f.year, f.month, f.day, f.hour, f.minute, f.second, f.nano, loc), nil
}

func (f fields) time() (time.Time, error) {
	if err := f.require(GranularityMinute); err != nil {
		return time.Time{}, err
	}
	if f.offset == nil {
		return time.Time{}, ErrNoOffset
	}
	return f.local(f.offset.Location())
}

func (f fields) unix() (int64, error) {
	if err := f.require(GranularityMinute); err != nil {
		return 0, err
	}
	if f.offset == nil {
		return 0, ErrNoOffset
	}
	if err := f.representable(); err != nil {
		return 0, err
	}
	return unixtime.FromDateTime(f.year, int(f.month), f.day, f.hour, f.minute, f.second, f.offset.TotalSeconds()), nil
}
