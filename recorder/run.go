package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func findJSONFiles(dir string) (files []string, err error) {
	err = filepath.Walk(dir, func(name string, fi os.FileInfo, err error) error {
		if err != nil {
			// try to continue despite error
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return nil
		}

		if fi == nil {
			return nil
		}

		if !fi.Mode().IsRegular() {
			return nil
		}

		if filepath.Ext(name) == ".json" {
			files = append(files, name)
		}

		return nil
	})

	return files, err
}

// Run describes one run of the 'rows' command.
type Run struct {
	Logfile  string
	JSONFile string
	Data
}

// LoadRuns parses all JSON files in dir and returns a list of runs. Files
// which do not contain a run record are skipped.
func LoadRuns(dir string) (runs []Run, err error) {
	files, err := findJSONFiles(dir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		buf, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to read file, skipping: %v\n", file)
			continue
		}

		run := Run{
			JSONFile: file,
			Logfile:  strings.TrimSuffix(file, filepath.Ext(file)) + ".log",
		}
		err = json.Unmarshal(buf, &run.Data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to read JSON data from file %v, skipping: %v\n", file, err)
			continue
		}

		if run.ID == "" {
			continue
		}

		runs = append(runs, run)
	}

	return runs, nil
}

// SortRuns sorts the list by start timestamp.
func SortRuns(list []Run) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.Before(list[j].Start)
	})
}

// FieldNames returns the names of the fields of the run.
func (r Run) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		name, _, _ := strings.Cut(f, ":")
		names = append(names, name)
	}
	return names
}
