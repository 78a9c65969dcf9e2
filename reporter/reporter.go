package reporter

import (
	"fmt"
	"time"

	"github.com/RedTeamPentesting/drizzle/cli"
	"github.com/RedTeamPentesting/drizzle/producer"
)

// Reporter prints rows to a terminal.
type Reporter struct {
	term   cli.Terminal
	format Format
	names  []string
}

// New returns a new reporter for rows with the fields names.
func New(term cli.Terminal, format Format, names []string) *Reporter {
	return &Reporter{term: term, format: format, names: names}
}

// RowStats collects statistics about the printed rows.
type RowStats struct {
	Start  time.Time
	Rows   int
	Count  int
	Errors int

	lastRPS time.Time
	rps     float64
}

func formatSeconds(secs float64) string {
	sec := int(secs)
	hours := sec / 3600
	sec -= hours * 3600
	min := sec / 60
	sec -= min * 60

	if hours > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", hours, min, sec)
	}

	return fmt.Sprintf("%dm%02ds", min, sec)
}

// Report returns the status lines for the rows printed so far.
func (s *RowStats) Report() (res []string) {
	res = append(res, "")
	status := fmt.Sprintf("%v of %v rows", s.Rows, s.Count)
	dur := time.Since(s.Start) / time.Second

	if dur > 0 && time.Since(s.lastRPS) > time.Second {
		s.rps = float64(s.Rows) / float64(dur)
		s.lastRPS = time.Now()
	}

	if s.rps > 0 {
		status += fmt.Sprintf(", %.0f rows/s", s.rps)
	}

	todo := s.Count - s.Rows
	if todo > 0 && s.rps > 0 {
		rem := float64(todo) / s.rps
		status += fmt.Sprintf(", %s remaining", formatSeconds(rem))
	}

	res = append(res, status)

	if s.Errors > 0 {
		res = append(res, colored(red, fmt.Sprintf("%d rows could not be formatted", s.Errors)))
	}

	return res
}

// FieldResolved returns a callback which shows the progress of resolving
// the fields in the status line.
func (r *Reporter) FieldResolved() func(position int) {
	return func(position int) {
		r.term.SetStatus([]string{"", fmt.Sprintf("resolved field %d of %d: %v",
			position+1, len(r.names), Bold(r.names[position]))})
	}
}

// Display prints the rows received from ch. count is the number of rows
// expected.
func (r *Reporter) Display(ch <-chan producer.Row, count int) error {
	header, err := FormatHeader(r.format, r.names)
	if err != nil {
		return err
	}

	if header != "" {
		r.term.Print(header)
	}

	stats := &RowStats{
		Start: time.Now(),
		Count: count,
	}

	// make sure we update the status at least once per second
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

next_row:
	for {
		var (
			row producer.Row
			ok  bool
		)

		select {
		case row, ok = <-ch:
			if !ok {
				break next_row
			}
		case <-ticker.C:
			r.term.SetStatus(stats.Report())
			continue next_row
		}

		stats.Rows++

		line, err := FormatRow(r.format, row)
		if err != nil {
			stats.Errors++
			r.term.Printf("%v %v\n", colored(red, "error:"), err)
			continue
		}

		r.term.Print(line)
		r.term.SetStatus(stats.Report())
	}

	r.term.SetStatus(nil)

	if r.format == FormatText {
		r.term.Print("\n")
		r.term.Printf("%v %d rows in %v\n", Dim("generated"), stats.Rows, formatSeconds(time.Since(stats.Start).Seconds()))
	}

	return nil
}
