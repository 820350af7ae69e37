package rfc3339

import "time"

// parseFixed decodes the common full form YYYY-MM-DDTHH:MM:SS[.F{1,9}](Z|±HH:MM)
// by fixed index, without walking the grammar.
//
// It reports ok=false on any mismatch, including out of range fields, in which
// case the grammar parser produces the definitive result or error. Whenever it
// reports ok=true, the result equals what the grammar parser returns.
func parseFixed[T input](in T) (dt DateTime, ok bool) {
	n := len(in)
	if n < 20 ||
		in[4] != dateSeparator ||
		in[7] != dateSeparator ||
		(in[10] != 'T' && in[10] != 't' && in[10] != ' ') ||
		in[13] != timeSeparator ||
		in[16] != timeSeparator {
		return nil, false
	}
	if !allDigits(in, 0, 4) || !allDigits(in, 5, 7) || !allDigits(in, 8, 10) ||
		!allDigits(in, 11, 13) || !allDigits(in, 14, 16) || !allDigits(in, 17, 19) {
		return nil, false
	}
	year := read4(in, 0)
	month := read2(in, 5)
	day := read2(in, 8)
	hour := read2(in, 11)
	minute := read2(in, 14)
	second := read2(in, 17)
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 60 {
		return nil, false
	}

	// Offset, and the end of the fraction run if there is one.
	var (
		off Offset
		end int
	)
	switch last := in[n-1]; {
	case last == 'Z' || last == 'z':
		off, end = UTC, n-1
	case n >= 25 && in[n-3] == timeSeparator && (in[n-6] == '+' || in[n-6] == '-') &&
		allDigits(in, n-5, n-3) && allDigits(in, n-2, n):
		hh, mm := read2(in, n-5), read2(in, n-2)
		if hh > 23 || mm > 59 {
			return nil, false
		}
		if in[n-6] == '-' {
			if hh == 0 && mm == 0 {
				return nil, false
			}
			hh, mm = -hh, -mm
		}
		off, end = Offset{hours: hh, minutes: mm}, n-6
	default:
		return nil, false
	}

	if end == 19 {
		return DateTimeSecond{
			Year: year, Month: time.Month(month), Day: day,
			Hour: hour, Minute: minute, Second: second,
			Offset: &off,
		}, true
	}
	digits := end - 20
	if in[19] != fractionSeparator || digits < 1 || digits > maxFractionDigits || !allDigits(in, 20, end) {
		return nil, false
	}
	nano := 0
	for i := 20; i < end; i++ {
		nano = nano*10 + int(in[i]-'0')
	}
	return DateTimeNano{
		Year: year, Month: time.Month(month), Day: day,
		Hour: hour, Minute: minute, Second: second,
		Nanosecond:     nano * fractionScale[digits],
		FractionDigits: digits,
		Offset:         off,
	}, true
}

func allDigits[T input](in T, start, end int) bool {
	for i := start; i < end; i++ {
		if !isDigit(in[i]) {
			return false
		}
	}
	return true
}

func read2[T input](in T, i int) int {
	return int(in[i]-'0')*10 + int(in[i+1]-'0')
}

func read4[T input](in T, i int) int {
	return read2(in, i)*100 + read2(in, i+2)
}
