package reporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/RedTeamPentesting/drizzle/producer"
)

const (
	_ int = iota + 30 // black
	red
	green
	yellow
	blue
	_ // magenta
	cyan
	_ // white
)

func colored(color int, s string) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}

func Bold(s string) string {
	return "\033[1m" + s + "\033[0m"
}

func Dim(s string) string {
	return "\033[2m" + s + "\033[0m"
}

// Format selects how rows are printed.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat returns the format with the name s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q, valid formats: text, json, csv", s)
}

// FormatValue returns the text representation of a single value.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = FormatValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		if buf, err := json.Marshal(v); err == nil {
			return string(buf)
		}
	}

	return fmt.Sprint(v)
}

func formatText(row producer.Row) string {
	values := make([]string, len(row.Values))
	for i, v := range row.Values {
		values[i] = FormatValue(v)
	}
	return strings.Join(values, "\t")
}

func formatCSV(records ...[]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	err := w.WriteAll(records)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func csvRecord(row producer.Row) []string {
	rec := make([]string, len(row.Values))
	for i, v := range row.Values {
		rec[i] = FormatValue(v)
	}
	return rec
}

// FormatHeader returns the header line for names, or the empty string if the
// format has none.
func FormatHeader(f Format, names []string) (string, error) {
	switch f {
	case FormatText:
		return Bold(strings.Join(names, "\t")), nil
	case FormatCSV:
		return formatCSV(names)
	}
	return "", nil
}

// FormatRow returns row as a single line.
func FormatRow(f Format, row producer.Row) (string, error) {
	switch f {
	case FormatJSON:
		buf, err := json.Marshal(row)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	case FormatCSV:
		return formatCSV(csvRecord(row))
	}
	return formatText(row), nil
}
