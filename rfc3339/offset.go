package rfc3339

import (
	"fmt"
	"time"
)

// Offset is a fixed signed displacement from UTC, denoted by hours and minutes.
// It is not a named time zone.
//
// Hours and minutes always have the same sign, or one of them is zero.
// The zero value is UTC. Offsets are comparable and can be used as map keys.
type Offset struct {
	hours   int
	minutes int
}

// UTC is the zero offset.
var UTC = Offset{}

// NewOffset returns the offset of the given hours and minutes.
// It fails if the signs of hours and minutes disagree, or if |hours| > 23 or |minutes| > 59.
func NewOffset(hours, minutes int) (Offset, error) {
	if hours > 0 && minutes < 0 {
		return Offset{}, fmt.Errorf("zone offset minutes must be positive because hours is positive: %+d:%+d", hours, minutes)
	}
	if hours < 0 && minutes > 0 {
		return Offset{}, fmt.Errorf("zone offset minutes must be negative because hours is negative: %+d:%+d", hours, minutes)
	}
	if hours < -23 || hours > 23 {
		return Offset{}, fmt.Errorf("zone offset hours out of bounds: expected -23..23, got %d", hours)
	}
	if minutes < -59 || minutes > 59 {
		return Offset{}, fmt.Errorf("zone offset minutes out of bounds: expected -59..59, got %d", minutes)
	}
	if hours == 0 && minutes == 0 {
		return UTC, nil
	}
	return Offset{hours: hours, minutes: minutes}, nil
}

// OffsetFromSeconds returns the offset equivalent to a total displacement in seconds.
// The displacement must be a whole number of minutes.
func OffsetFromSeconds(seconds int) (Offset, error) {
	if seconds%60 != 0 {
		return Offset{}, fmt.Errorf("zone offset of %ds is not a whole number of minutes", seconds)
	}
	return NewOffset(seconds/3600, (seconds%3600)/60)
}

// OffsetOf returns the offset in effect for t in t's location.
func OffsetOf(t time.Time) (Offset, error) {
	_, seconds := t.Zone()
	return OffsetFromSeconds(seconds)
}

// Hours returns the signed hour component.
func (o Offset) Hours() int { return o.hours }

// Minutes returns the signed minute component.
func (o Offset) Minutes() int { return o.minutes }

// TotalSeconds returns the total displacement from UTC in seconds.
func (o Offset) TotalSeconds() int {
	return o.hours*60*60 + o.minutes*60
}

// IsUTC reports whether o is the zero offset.
func (o Offset) IsUTC() bool {
	return o == UTC
}

// Equal reports whether o and other denote the same displacement.
func (o Offset) Equal(other Offset) bool {
	return o == other
}

// Location returns a fixed time.Location for o.
// For UTC it returns time.UTC.
func (o Offset) Location() *time.Location {
	if o.IsUTC() {
		return time.UTC
	}
	return time.FixedZone("", o.TotalSeconds())
}

// String returns "Z" for UTC and "+hh:mm" or "-hh:mm" otherwise.
func (o Offset) String() string {
	if o.IsUTC() {
		return "Z"
	}
	sign, h, m := byte('+'), o.hours, o.minutes
	if h < 0 || m < 0 {
		sign, h, m = '-', -h, -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}
