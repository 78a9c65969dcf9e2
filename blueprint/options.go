package blueprint

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/RedTeamPentesting/drizzle/producer"
)

// options gives typed access to the options of a field and tracks which of
// them were used.
type options struct {
	field Field
	used  map[string]bool
}

func newOptions(f Field) *options {
	return &options{field: f, used: make(map[string]bool)}
}

func (o *options) errorf(key, format string, args ...any) error {
	return fmt.Errorf("field %v: option %v: %v", o.field.Name, key, fmt.Sprintf(format, args...))
}

func (o *options) value(key string) (any, bool) {
	o.used[key] = true
	v, ok := o.field.Options[key]
	return v, ok
}

// String returns the option as a string, or def if it is not set.
func (o *options) String(key, def string) (string, error) {
	v, ok := o.value(key)
	if !ok {
		return def, nil
	}

	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return "", o.errorf(key, "needs a value")
	case []any, map[string]any:
		return "", o.errorf(key, "invalid value %v", v)
	}
	return fmt.Sprint(v), nil
}

// Bool returns the option as a boolean. Bare flags are true.
func (o *options) Bool(key string) (bool, error) {
	v, ok := o.value(key)
	if !ok {
		return false, nil
	}

	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, o.errorf(key, "invalid boolean %q", v)
		}
		return b, nil
	}
	return false, o.errorf(key, "invalid boolean %v", v)
}

// Float returns the option as a number, or def if it is not set.
func (o *options) Float(key string, def float64) (float64, error) {
	v, ok := o.value(key)
	if !ok {
		return def, nil
	}

	switch v := v.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, o.errorf(key, "invalid number %q", v)
		}
		return f, nil
	}
	return 0, o.errorf(key, "invalid number %v", v)
}

// Int returns the option as an integer, or def if it is not set.
func (o *options) Int(key string, def int) (int, error) {
	f, err := o.Float(key, float64(def))
	if err != nil {
		return 0, err
	}

	if f != math.Trunc(f) {
		return 0, o.errorf(key, "%v is not an integer", f)
	}
	return int(f), nil
}

// Range returns the option as a range. It reports false if the option is not
// set.
func (o *options) Range(key string) (producer.Range, bool, error) {
	v, ok := o.value(key)
	if !ok {
		return producer.Range{}, false, nil
	}

	switch v := v.(type) {
	case int:
		return producer.Range{First: float64(v), Last: float64(v)}, true, nil
	case float64:
		return producer.Range{First: v, Last: v}, true, nil
	case string:
		r, err := producer.ParseRange(v)
		if err != nil {
			return producer.Range{}, false, o.errorf(key, "%v", err)
		}
		return r, true, nil
	}
	return producer.Range{}, false, o.errorf(key, "invalid range %v", v)
}

// IntRange returns the option as a range of integers. It reports false if
// the option is not set.
func (o *options) IntRange(key string) (first, last int, ok bool, err error) {
	r, ok, err := o.Range(key)
	if err != nil || !ok {
		return 0, 0, ok, err
	}

	first, last, err = r.Ints()
	if err != nil {
		return 0, 0, false, o.errorf(key, "%v", err)
	}
	return first, last, true, nil
}

// List returns the option as a list. A string is split at sep.
func (o *options) List(key, sep string) ([]any, bool, error) {
	v, ok := o.value(key)
	if !ok {
		return nil, false, nil
	}

	switch v := v.(type) {
	case []any:
		return v, true, nil
	case string:
		var items []any
		for _, s := range strings.Split(v, sep) {
			items = append(items, s)
		}
		return items, true, nil
	case bool:
		return nil, false, o.errorf(key, "needs a value")
	}
	return []any{v}, true, nil
}

// Strings returns the option as a list of strings.
func (o *options) Strings(key, sep string) ([]string, bool, error) {
	items, ok, err := o.List(key, sep)
	if err != nil || !ok {
		return nil, ok, err
	}

	res := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.TrimSpace(fmt.Sprint(item))
		if s == "" {
			continue
		}
		res = append(res, s)
	}
	return res, true, nil
}

// Check returns an error for options which have not been used.
func (o *options) Check() error {
	var unknown []string
	for key := range o.field.Options {
		if !o.used[key] {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return fmt.Errorf("field %v: unknown options for type %v: %v",
		o.field.Name, o.field.Type, strings.Join(unknown, ", "))
}
