// Package ingest parses streams of newline-separated timestamps, as found in
// log files, and reports on each line.
package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/itchio/headway/counter"
	"github.com/ngrash/go-rfc3339/rfc3339"
)

// categories lists the error categories in report order.
var categories = []string{"structural", "lexical", "range", "trailing", "other"}

// Stats summarises a scan.
type Stats struct {
	Lines         int            `json:"lines"`
	Blank         int            `json:"blank"`
	OK            int            `json:"ok"`
	Failed        int            `json:"failed"`
	ByGranularity map[string]int `json:"by_granularity"`
	ByCategory    map[string]int `json:"by_category"`
	// Written is the number of report bytes written.
	Written int64 `json:"written"`
}

func newStats() Stats {
	return Stats{
		ByGranularity: make(map[string]int),
		ByCategory:    make(map[string]int),
	}
}

// Scan parses every line of r and writes one report line per non-blank input
// line to w. Successful lines are reported as
//
//	<line>\tok\t<granularity>\t<input>
//
// and failures as
//
//	<line>\terror\t<category>\t<column>\t<message>
//
// A parse failure does not stop the scan. Read and write errors do.
func Scan(r io.Reader, w io.Writer) (Stats, error) {
	stats := newStats()
	cw := counter.NewWriter(w)

	s := bufio.NewScanner(r)
	for s.Scan() {
		stats.Lines++
		line := bytes.TrimSuffix(s.Bytes(), []byte{'\r'})
		if len(bytes.TrimSpace(line)) == 0 {
			stats.Blank++
			continue
		}

		dt, err := rfc3339.ParseBytes(line)
		if err != nil {
			stats.Failed++
			cat := Category(err)
			stats.ByCategory[cat]++
			column := 0
			var perr *rfc3339.ParseError
			if errors.As(err, &perr) {
				column = perr.Column
			}
			_, err = fmt.Fprintf(cw, "%d\terror\t%s\t%d\t%v\n", stats.Lines, cat, column, err)
		} else {
			stats.OK++
			g := dt.Granularity().String()
			stats.ByGranularity[g]++
			_, err = fmt.Fprintf(cw, "%d\tok\t%s\t%s\n", stats.Lines, g, line)
		}
		if err != nil {
			stats.Written = cw.Count()
			return stats, fmt.Errorf("writing report for line %d: %w", stats.Lines, err)
		}
	}
	stats.Written = cw.Count()
	if err := s.Err(); err != nil {
		return stats, fmt.Errorf("reading line %d: %w", stats.Lines+1, err)
	}
	return stats, nil
}

// WriteTo writes a human-readable summary of s to w.
func (s Stats) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)

	if _, err := fmt.Fprintf(cw, "lines: %d (blank %d)\nok: %d\nfailed: %d\n", s.Lines, s.Blank, s.OK, s.Failed); err != nil {
		return cw.Count(), fmt.Errorf("could not write totals: %w", err)
	}
	for g := rfc3339.GranularityYear; g <= rfc3339.GranularityNano; g++ {
		n := s.ByGranularity[g.String()]
		if n == 0 {
			continue
		}
		if _, err := fmt.Fprintf(cw, "  %s: %d\n", g, n); err != nil {
			return cw.Count(), fmt.Errorf("could not write granularity counts: %w", err)
		}
	}
	for _, cat := range categories {
		n := s.ByCategory[cat]
		if n == 0 {
			continue
		}
		if _, err := fmt.Fprintf(cw, "  %s errors: %d\n", cat, n); err != nil {
			return cw.Count(), fmt.Errorf("could not write error counts: %w", err)
		}
	}

	return cw.Count(), nil
}
