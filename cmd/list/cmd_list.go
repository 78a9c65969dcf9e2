package list

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/RedTeamPentesting/drizzle/producer"
	"github.com/RedTeamPentesting/drizzle/recorder"
	"github.com/RedTeamPentesting/drizzle/reporter"
	"github.com/spf13/cobra"
)

var cmdList = &cobra.Command{
	Use:                   "list [options]",
	DisableFlagsInUseLine: true,

	Short:   helpShort,
	Long:    helpLong,
	Example: helpExamples,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(opts)
	},
}

func hasField(run recorder.Run, s string) bool {
	for _, name := range run.FieldNames() {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

func filterRuns(list []recorder.Run, opts ListOptions) (res []recorder.Run) {
	for _, run := range list {
		if run.Data.Cancelled && !opts.ShowIncomplete {
			continue
		}

		if opts.Field != "" && !hasField(run, opts.Field) {
			continue
		}

		res = append(res, run)
	}

	return res
}

const RunTemplate = `{{ .ID }}
{{- $opt := .ListOptions }}
    Time:      {{ .Start.Format "2006-01-02 15:04:05" }}
{{- if $opt.ShowLogfile }}
    Log:       {{ .Logfile -}}
{{ end }}
    Duration:  {{ duration .Start .End }}
    Rows:      {{ .Generated }} of {{ .Items }}
{{- if .Cancelled }} (cancelled){{ end }}
{{- if ne .Blueprint "" }}
    Blueprint: {{ .Blueprint }}
{{- end }}
    Fields:
{{- range .Fields }}
      {{ . }}
{{- end }}
{{- if $opt.ShowRows }}
    Data:
{{- range .Rows }}
      {{ row . }}
{{- end }}
{{- end }}

`

var FuncMap = map[string]any{
	"contains": strings.Contains,
	"duration": func(t1, t2 time.Time) (s string) {
		sec := uint64(t2.Sub(t1).Seconds())
		if sec > 3600 {
			s += fmt.Sprintf("%dh", sec/3600)
			sec = sec % 3600
		}

		if sec > 60 {
			s += fmt.Sprintf("%dm", sec/60)
			sec = sec % 60
		}
		s += fmt.Sprintf("%ds", sec)
		return s
	},
	"join": strings.Join,
	"row": func(row producer.Row) (string, error) {
		return reporter.FormatRow(reporter.FormatJSON, row)
	},
}

// Entry is the data passed to RunTemplate.
type Entry struct {
	ListOptions
	recorder.Run
}

func runList(opts ListOptions) error {
	dir, err := logdir(opts)
	if err != nil {
		return err
	}

	if dir == "" {
		return errors.New("no log directory specified")
	}

	list, err := recorder.LoadRuns(dir)
	if err != nil {
		return err
	}

	tmpl, err := template.New("").Funcs(FuncMap).Parse(RunTemplate)
	if err != nil {
		return err
	}

	recorder.SortRuns(list)
	list = filterRuns(list, opts)

	for _, run := range list {
		err := tmpl.Execute(os.Stdout, Entry{
			ListOptions: opts,
			Run:         run,
		})
		if err != nil {
			return err
		}
	}

	fmt.Printf("%v %d runs\n", reporter.Dim("found"), len(list))

	return nil
}
