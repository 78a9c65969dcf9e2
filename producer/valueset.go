package producer

import "reflect"

// valueSet records values by exact equality. Values of comparable dynamic
// type are kept in a map; slices, maps and structs containing them are
// compared with reflect.DeepEqual.
type valueSet struct {
	hashed map[any]struct{}
	other  []any
}

func newValueSet() *valueSet {
	return &valueSet{hashed: make(map[any]struct{})}
}

func hashable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable() && comparableValue(reflect.ValueOf(v))
}

// comparableValue reports whether v can be used as a map key without a
// runtime panic. A comparable type may still hold an interface field whose
// dynamic value is not comparable.
func comparableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return comparableValue(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !comparableValue(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !comparableValue(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	}
	return true
}

// Contains reports whether an equal value has been added.
func (s *valueSet) Contains(v any) bool {
	if hashable(v) {
		_, ok := s.hashed[v]
		return ok
	}

	for _, o := range s.other {
		if reflect.DeepEqual(o, v) {
			return true
		}
	}
	return false
}

// Add records v. It reports false if an equal value was already present.
func (s *valueSet) Add(v any) bool {
	if s.Contains(v) {
		return false
	}

	if hashable(v) {
		s.hashed[v] = struct{}{}
	} else {
		s.other = append(s.other, v)
	}
	return true
}

// Len returns the number of distinct values.
func (s *valueSet) Len() int {
	return len(s.hashed) + len(s.other)
}

// distinct returns items with later duplicates removed, keeping the order of
// first occurrence.
func distinct(items []any) []any {
	set := newValueSet()
	res := make([]any, 0, len(items))
	for _, item := range items {
		if set.Add(item) {
			res = append(res, item)
		}
	}
	return res
}
