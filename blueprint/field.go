package blueprint

import (
	"fmt"
	"sort"
	"strings"
)

// Field describes one column of a blueprint.
type Field struct {
	Name    string         `yaml:"name"`
	Type    string         `yaml:"type"`
	Options map[string]any `yaml:",inline"`
}

// restOptions take the remainder of the option string as their value, so
// they may contain commas.
var restOptions = []string{"cmd", "value"}

// ParseField parses a field rule. The format is NAME:type or
// NAME:type:options, where options is a comma-separated list of key=value
// pairs and bare flags.
func ParseField(s string) (Field, error) {
	data := strings.SplitN(s, ":", 3)

	if len(data) < 2 {
		return Field{}, fmt.Errorf("invalid format for field %q, want NAME:type:options", s)
	}

	f := Field{
		Name: data[0],
		Type: data[1],
	}

	if f.Name == "" {
		return Field{}, fmt.Errorf("field %q has no name", s)
	}

	if f.Type == "" {
		return Field{}, fmt.Errorf("field %q has no type", s)
	}

	if len(data) == 3 {
		opts, err := parseOptions(data[2])
		if err != nil {
			return Field{}, fmt.Errorf("field %v: %w", f.Name, err)
		}
		f.Options = opts
	}

	return f, nil
}

func parseOptions(s string) (map[string]any, error) {
	opts := make(map[string]any)

	for s != "" {
		var part string

		rest := false
		for _, key := range restOptions {
			if strings.HasPrefix(s, key+"=") {
				rest = true
			}
		}

		if rest {
			part, s = s, ""
		} else {
			part, s, _ = strings.Cut(s, ",")
		}

		key, value, found := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid option %q", part)
		}

		if _, ok := opts[key]; ok {
			return nil, fmt.Errorf("option %v given more than once", key)
		}

		if !found {
			opts[key] = true
			continue
		}
		opts[key] = value
	}

	return opts, nil
}

// String returns the field as a rule.
func (f Field) String() string {
	s := f.Name + ":" + f.Type
	if len(f.Options) == 0 {
		return s
	}

	keys := make([]string, 0, len(f.Options))
	for k := range f.Options {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		// rest options must come last
		ri, rj := isRestOption(keys[i]), isRestOption(keys[j])
		if ri != rj {
			return rj
		}
		return keys[i] < keys[j]
	})

	var opts []string
	for _, k := range keys {
		switch v := f.Options[k].(type) {
		case bool:
			if v {
				opts = append(opts, k)
			} else {
				opts = append(opts, k+"=false")
			}
		case []any:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = fmt.Sprint(item)
			}
			opts = append(opts, k+"="+strings.Join(items, "|"))
		default:
			opts = append(opts, fmt.Sprintf("%v=%v", k, v))
		}
	}

	return s + ":" + strings.Join(opts, ",")
}

func isRestOption(key string) bool {
	for _, k := range restOptions {
		if k == key {
			return true
		}
	}
	return false
}
