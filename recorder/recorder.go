package recorder

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/RedTeamPentesting/drizzle/producer"
	"github.com/google/uuid"
)

// Recorder records the rows of a run in a JSON file.
type Recorder struct {
	filename string
	Data
}

// Data is the data structure written to the file by a Recorder.
type Data struct {
	ID        string    `json:"id"`
	Command   string    `json:"command,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Items     int       `json:"items"`
	Generated int       `json:"generated"`
	Cancelled bool      `json:"cancelled"`

	Blueprint string         `json:"blueprint,omitempty"`
	Fields    []string       `json:"fields"`
	Rows      []producer.Row `json:"rows"`
}

// New creates a new recorder writing to filename for a run with the given
// field rules and number of items.
func New(filename string, fields []string, items int) *Recorder {
	return &Recorder{
		filename: filename,
		Data: Data{
			ID:     uuid.NewString(),
			Items:  items,
			Fields: fields,
		},
	}
}

const statusInterval = time.Second

// Run reads rows from in and forwards them to out, recording them on the
// way. When in is closed or the context is cancelled, the file is written a
// last time, processing stops, and out is closed.
func (r *Recorder) Run(ctx context.Context, in <-chan producer.Row, out chan<- producer.Row) error {
	defer close(out)

	data := r.Data
	data.Start = time.Now()
	data.End = time.Now()

	lastStatus := time.Now()

loop:
	for {
		var row producer.Row
		var ok bool

		select {
		case <-ctx.Done():
			data.Cancelled = true
			break loop

		case row, ok = <-in:
			if !ok {
				// we're done, exit
				break loop
			}
		}

		data.Generated++
		data.Rows = append(data.Rows, row)
		data.End = time.Now()

		if time.Since(lastStatus) > statusInterval {
			lastStatus = time.Now()

			err := r.dump(data)
			if err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			data.Cancelled = true
			break loop
		case out <- row:
		}
	}

	if data.Generated < data.Items {
		data.Cancelled = true
	}

	data.End = time.Now()
	return r.dump(data)
}

// dump writes the current status to the file.
func (r *Recorder) dump(data Data) error {
	if data.Rows == nil {
		data.Rows = []producer.Row{}
	}

	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')

	return os.WriteFile(r.filename, buf, 0644)
}
