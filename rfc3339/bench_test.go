package rfc3339

import (
	"testing"
	"time"
)

var benchInputs = []string{
	"2023-01-01T23:38:34Z",
	"2023-01-01T23:38:34.123456789+05:30",
	"2023-01-01T23:38-08:00",
}

func BenchmarkParse(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Parse(in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseBytes(b *testing.B) {
	in := []byte(benchInputs[1])
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseBytes(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseGrammar(b *testing.B) {
	in := benchInputs[1]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := parseGrammar(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseTime(b *testing.B) {
	in := benchInputs[1]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseTime(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTimeParse(b *testing.B) {
	in := benchInputs[1]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := time.Parse(time.RFC3339Nano, in); err != nil {
			b.Fatal(err)
		}
	}
}
