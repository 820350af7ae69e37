package rfc3339

import "strings"

// Granularity is the finest field explicitly present in a parsed timestamp.
// Values are ordered from coarsest to finest.
type Granularity int

const (
	GranularityYear Granularity = iota
	GranularityMonth
	GranularityDay
	// GranularityHour completes the ordering. The grammar has no form that ends at the hour.
	GranularityHour
	GranularityMinute
	GranularitySecond
	GranularityNano
)

func (g Granularity) String() string {
	switch g {
	case GranularityYear:
		return "Year"
	case GranularityMonth:
		return "Month"
	case GranularityDay:
		return "Day"
	case GranularityHour:
		return "Hour"
	case GranularityMinute:
		return "Minute"
	case GranularitySecond:
		return "Second"
	case GranularityNano:
		return "Nano"
	default:
		return "<UNDEFINED>"
	}
}

// field returns the lower-case field name for messages.
func (g Granularity) field() string {
	switch g {
	case GranularityNano:
		return "nanosecond"
	case GranularityYear, GranularityMonth, GranularityDay, GranularityHour, GranularityMinute, GranularitySecond:
		return strings.ToLower(g.String())
	default:
		return g.String()
	}
}

// Includes reports whether a value with granularity g carries the field f.
func (g Granularity) Includes(f Granularity) bool {
	return f <= g
}

