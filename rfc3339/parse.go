// Package rfc3339 parses RFC 3339 timestamps and their ISO 8601 date prefixes
// into granularity-aware values, without going through time.Parse.
//
// The accepted grammar is:
//
//	YYYY
//	YYYY-MM
//	YYYY-MM-DD
//	YYYY-MM-DD{T|t|<space>}HH:MM[{Z|z|(+|-)HH:MM}]
//	YYYY-MM-DD{T|t|<space>}HH:MM:SS[.F{1,9}]{Z|z|(+|-)HH:MM}
//
// Fields are fixed width. A fraction must be followed by an offset. The offset
// -00:00 is rejected because RFC 3339 reserves it for an unknown local offset.
// The leap second numeral 60 is accepted in the seconds field.
//
// Parse is safe for concurrent use; no state is shared between calls.
package rfc3339

import (
	"time"
)

// Character classes of the grammar.
const (
	dateSeparator     = '-'
	timeSeparator     = ':'
	fractionSeparator = '.'
	// dateTimeSeparators separate the date from the time of day.
	dateTimeSeparators = "Tt "
)

// Input lengths at which a date or date-time is complete.
const (
	lenYear   = 4
	lenMonth  = 7
	lenDay    = 10
	lenMinute = 16
)

// Indices of the fixed-position fields, used for range errors.
const (
	posMonth  = 5
	posDay    = 8
	posHour   = 11
	posMinute = 14
	posSecond = 17
)

// maxFractionDigits is the finest sub-second precision, nanoseconds.
const maxFractionDigits = 9

// fractionScale[n] scales an n-digit fraction to nanoseconds.
var fractionScale = [maxFractionDigits + 1]int{0, 100_000_000, 10_000_000, 1_000_000, 100_000, 10_000, 1_000, 100, 10, 1}

// Parse parses s and returns the value with the granularity of the finest field present.
// On failure the error is a *ParseError.
func Parse(s string) (DateTime, error) {
	if dt, ok := parseFixed(s); ok {
		return dt, nil
	}
	return parseGrammar(s)
}

// ParseBytes is like Parse but reads from a byte slice.
// The slice is not retained.
func ParseBytes(b []byte) (DateTime, error) {
	if dt, ok := parseFixed(b); ok {
		return dt, nil
	}
	return parseGrammar(b)
}

// ParseTime parses a full date-time with an offset and returns it as a time.Time.
// Inputs coarser than minutes or without an offset are rejected.
func ParseTime(s string) (time.Time, error) {
	dt, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time()
}

// parseGrammar drives the cursor through the grammar, stopping at the first
// length at which the input is complete.
func parseGrammar[T input](in T) (DateTime, error) {
	var (
		c   = newCursor(in)
		f   fields
		err error
		n   = len(in)
	)

	// YEAR
	if f.year, err = c.readInt(4); err != nil {
		return nil, err
	}
	if n == lenYear {
		f.granularity = GranularityYear
		return c.build(f)
	}

	// MONTH
	if err := c.consume(dateSeparator); err != nil {
		return nil, err
	}
	month, err := c.readInt(2)
	if err != nil {
		return nil, err
	}
	f.month = time.Month(month)
	if n == lenMonth {
		f.granularity = GranularityMonth
		return c.build(f)
	}

	// DAY
	if err := c.consume(dateSeparator); err != nil {
		return nil, err
	}
	if f.day, err = c.readInt(2); err != nil {
		return nil, err
	}
	if n == lenDay {
		f.granularity = GranularityDay
		return c.build(f)
	}

	// HOUR and MINUTE
	if err := c.consumeOneOf(dateTimeSeparators); err != nil {
		return nil, err
	}
	if f.hour, err = c.readInt(2); err != nil {
		return nil, err
	}
	if err := c.consume(timeSeparator); err != nil {
		return nil, err
	}
	if f.minute, err = c.readInt(2); err != nil {
		return nil, err
	}
	f.granularity = GranularityMinute
	if n == lenMinute {
		return c.build(f)
	}

	// SECONDS or OFFSET
	switch ch := c.in[c.pos]; ch {
	case timeSeparator:
		c.pos++
		return c.parseSeconds(f)
	case '+', '-', 'Z', 'z':
		off, err := c.parseOffset()
		if err != nil {
			return nil, err
		}
		f.offset = &off
		return c.build(f)
	default:
		return nil, c.fail(c.pos, ErrStructural, "expected %q or zone offset, got %q", timeSeparator, ch)
	}
}

// parseSeconds reads the seconds and whatever follows them: nothing, a zone
// indicator, a fraction and offset, or an offset.
func (c *cursor[T]) parseSeconds(f fields) (DateTime, error) {
	var err error
	if f.second, err = c.readInt(2); err != nil {
		return nil, err
	}
	f.granularity = GranularitySecond
	if c.remaining() == 0 {
		return c.build(f)
	}

	switch ch := c.in[c.pos]; ch {
	case fractionSeparator:
		c.pos++
		start := c.pos
		end := c.digitRun()
		digits := end - start
		if digits == 0 {
			if start == len(c.in) {
				return nil, c.fail(start, ErrStructural, "unexpected end of input, expected fraction digits")
			}
			return nil, c.fail(start, ErrStructural, "expected fraction digits, got %q", c.in[start])
		}
		if digits > maxFractionDigits {
			return nil, c.fail(start+maxFractionDigits, ErrStructural, "too many fraction digits, at most %d allowed", maxFractionDigits)
		}
		f.nano = c.readIntUnchecked(digits) * fractionScale[digits]
		f.fractionDigits = digits
		f.granularity = GranularityNano
		if c.remaining() == 0 {
			return nil, c.fail(c.pos, ErrStructural, "no zone offset after fraction")
		}
	case '+', '-', 'Z', 'z':
	default:
		return nil, c.fail(c.pos, ErrStructural, "expected %q or zone offset, got %q", fractionSeparator, ch)
	}

	off, err := c.parseOffset()
	if err != nil {
		return nil, err
	}
	f.offset = &off
	return c.build(f)
}

// parseOffset reads a zone offset, which must end the input.
func (c *cursor[T]) parseOffset() (Offset, error) {
	start := c.pos
	if start >= len(c.in) {
		return Offset{}, c.fail(start, ErrStructural, "unexpected end of input, expected zone offset")
	}
	sign := c.in[start]
	switch sign {
	case 'Z', 'z':
		c.pos++
		if err := c.expectEnd(); err != nil {
			return Offset{}, err
		}
		return UTC, nil
	case '+', '-':
	default:
		return Offset{}, c.fail(start, ErrStructural, "expected zone offset, got %q", sign)
	}

	if c.remaining() < len("+hh:mm") {
		return Offset{}, c.fail(len(c.in), ErrStructural, "unexpected end of input, expected zone offset of the form ±hh:mm")
	}
	c.pos++
	hours, err := c.readInt(2)
	if err != nil {
		return Offset{}, err
	}
	if err := c.consume(timeSeparator); err != nil {
		return Offset{}, err
	}
	minutes, err := c.readInt(2)
	if err != nil {
		return Offset{}, err
	}
	if err := c.expectEnd(); err != nil {
		return Offset{}, err
	}

	if hours > 23 {
		return Offset{}, c.fail(start+1, ErrRange, "zone offset hours out of bounds: expected 0-23, got %d", hours)
	}
	if minutes > 59 {
		return Offset{}, c.fail(start+4, ErrRange, "zone offset minutes out of bounds: expected 0-59, got %d", minutes)
	}
	if sign == '-' {
		if hours == 0 && minutes == 0 {
			return Offset{}, c.fail(start, ErrRange, "unknown local offset convention (-00:00) not allowed")
		}
		hours, minutes = -hours, -minutes
	}
	off, err := NewOffset(hours, minutes)
	if err != nil {
		return Offset{}, c.fail(start, ErrRange, "%v", err)
	}
	return off, nil
}

// build range-checks the fields present at f.granularity, coarsest first,
// and returns the matching variant.
func (c *cursor[T]) build(f fields) (DateTime, error) {
	g := f.granularity
	if g.Includes(GranularityMonth) && (f.month < 1 || f.month > 12) {
		return nil, c.fail(posMonth, ErrRange, "month out of bounds: expected 1-12, got %d", int(f.month))
	}
	if g.Includes(GranularityDay) && (f.day < 1 || f.day > 31) {
		return nil, c.fail(posDay, ErrRange, "day out of bounds: expected 1-31, got %d", f.day)
	}
	if g.Includes(GranularityMinute) {
		if f.hour > 23 {
			return nil, c.fail(posHour, ErrRange, "hour out of bounds: expected 0-23, got %d", f.hour)
		}
		if f.minute > 59 {
			return nil, c.fail(posMinute, ErrRange, "minute out of bounds: expected 0-59, got %d", f.minute)
		}
	}
	if g.Includes(GranularitySecond) && f.second > 60 {
		return nil, c.fail(posSecond, ErrRange, "second out of bounds: expected 0-60, got %d", f.second)
	}
	return f.dateTime(), nil
}
