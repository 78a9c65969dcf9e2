package blueprint

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/RedTeamPentesting/drizzle/wordlist"
	"gopkg.in/yaml.v3"
)

// File is a blueprint file.
//
//	items: 20
//	lists:
//	  fruit: fruit.txt
//	fields:
//	  - name: id
//	    type: ids
//	    length: 8-12
//	  - name: role
//	    type: set
//	    items: [admin, user]
type File struct {
	// Items is the number of rows, zero leaves the choice to the caller.
	Items int `yaml:"items"`

	// Lists maps names of custom word lists to files, relative paths are
	// resolved against the directory of the blueprint file.
	Lists map[string]string `yaml:"lists"`

	Fields []Field `yaml:"fields"`
}

// Read decodes a blueprint file from rd.
func Read(rd io.Reader) (File, error) {
	var f File

	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	err := dec.Decode(&f)
	if err == io.EOF {
		return File{}, fmt.Errorf("blueprint is empty")
	}
	if err != nil {
		return File{}, fmt.Errorf("decode blueprint: %w", err)
	}

	if f.Items < 0 {
		return File{}, fmt.Errorf("invalid number of items %d", f.Items)
	}

	for i, field := range f.Fields {
		if field.Name == "" {
			return File{}, fmt.Errorf("field %d has no name", i+1)
		}
		if field.Type == "" {
			return File{}, fmt.Errorf("field %v has no type", field.Name)
		}
	}

	return f, nil
}

// Load reads the blueprint file filename and the word lists it references.
func Load(filename string) (File, map[string]wordlist.List, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return File{}, nil, err
	}
	defer fd.Close()

	f, err := Read(fd)
	if err != nil {
		return File{}, nil, fmt.Errorf("%v: %w", filename, err)
	}

	lists := make(map[string]wordlist.List, len(f.Lists))
	for name, path := range f.Lists {
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(filename), path)
		}

		l, err := wordlist.Load(name, path)
		if err != nil {
			return File{}, nil, fmt.Errorf("%v: %w", filename, err)
		}
		lists[name] = l
	}

	return f, lists, nil
}
