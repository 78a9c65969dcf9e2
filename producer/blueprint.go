package producer

// Blueprint maps field names to values in insertion order. A value is either
// a *Generator, which Compose runs once per composition, or a literal which
// is copied into every row.
type Blueprint struct {
	names  []string
	values []any
}

// Set adds the field name. Setting an existing field replaces its value and
// keeps its position.
func (b *Blueprint) Set(name string, value any) {
	for i, n := range b.names {
		if n == name {
			b.values[i] = value
			return
		}
	}

	b.names = append(b.names, name)
	b.values = append(b.values, value)
}

// Get returns the value of the field name.
func (b *Blueprint) Get(name string) (any, bool) {
	for i, n := range b.names {
		if n == name {
			return b.values[i], true
		}
	}
	return nil, false
}

// Names returns the field names in insertion order.
func (b *Blueprint) Names() []string {
	return append([]string(nil), b.names...)
}

// Len returns the number of fields.
func (b *Blueprint) Len() int {
	return len(b.names)
}
