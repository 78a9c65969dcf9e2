package blueprint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RedTeamPentesting/drizzle/producer"
	"github.com/RedTeamPentesting/drizzle/wordlist"
)

// Types lists the field types in addition to the generator kinds: exec
// fields run a command, value fields are static literals.
var Types = []string{
	"numbers", "set", "ids", "sequence", "strings", "emails", "hexcolors",
	"sample", "exec", "value",
}

// commonOptions are accepted by all types except value.
var commonOptions = []string{"unique", "retries"}

// typeOptions lists the option keys of each type.
var typeOptions = map[string][]string{
	"numbers":   {"range", "fractional", "digits"},
	"set":       {"items", "ordered", "distinct"},
	"ids":       {"length", "chars"},
	"sequence":  {"start", "step"},
	"strings":   {"words", "lists", "sep"},
	"emails":    {"local", "domain", "lists", "domains", "tlds"},
	"hexcolors": nil,
	"sample":    {"items", "length", "ordered", "duplicates"},
	"exec":      {"cmd"},
	"value":     {"value"},
}

// TypeKind returns the generator kind of fields of type typ. It reports
// false for value fields, which have no generator.
func TypeKind(typ string) (producer.Kind, bool) {
	switch typ {
	case "value":
		return 0, false
	case "exec":
		return producer.KindCustom, true
	}

	k, err := producer.ParseKind(typ)
	if err != nil {
		return 0, false
	}
	return k, true
}

// TypeOptions returns the option keys accepted by fields of type typ.
func TypeOptions(typ string) ([]string, error) {
	keys, ok := typeOptions[typ]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", typ)
	}

	res := append([]string(nil), keys...)
	if typ != "value" {
		res = append(res, commonOptions...)
	}
	return res, nil
}

// Builder resolves fields into generators.
type Builder struct {
	// Lists holds custom word lists, they take precedence over the
	// built-in lists with the same name.
	Lists map[string]wordlist.List

	// Shell runs the commands of exec fields when set, e.g. "/bin/sh -c".
	Shell string

	Logger   *slog.Logger
	Observer producer.Observer
}

// Build returns a blueprint with one entry per field, in order. Field names
// must be unique.
func (b *Builder) Build(ctx context.Context, fields []Field) (*producer.Blueprint, error) {
	bp := &producer.Blueprint{}
	for _, f := range fields {
		if _, ok := bp.Get(f.Name); ok {
			return nil, fmt.Errorf("field %v defined more than once", f.Name)
		}

		v, err := b.Field(ctx, f)
		if err != nil {
			return nil, err
		}

		bp.Set(f.Name, v)
	}

	return bp, nil
}

// Field returns the blueprint value for f, which is a *producer.Generator
// for all types except value.
func (b *Builder) Field(ctx context.Context, f Field) (any, error) {
	o := newOptions(f)

	if f.Type == "value" {
		v, ok := o.value("value")
		if !ok {
			return nil, fmt.Errorf("field %v: missing option value", f.Name)
		}
		return v, o.Check()
	}

	params, err := b.params(ctx, f, o)
	if err != nil {
		return nil, err
	}

	genOpts, err := b.generatorOptions(o)
	if err != nil {
		return nil, err
	}

	if err := o.Check(); err != nil {
		return nil, err
	}

	g, err := producer.New(params, genOpts...)
	if err != nil {
		return nil, fmt.Errorf("field %v: %w", f.Name, err)
	}

	return g, nil
}

func (b *Builder) generatorOptions(o *options) ([]producer.Option, error) {
	var opts []producer.Option

	unique, err := o.Bool("unique")
	if err != nil {
		return nil, err
	}
	opts = append(opts, producer.Unique(unique))

	retries, err := o.Int("retries", producer.DefaultRetryLimit)
	if err != nil {
		return nil, err
	}
	if retries < 0 {
		return nil, o.errorf("retries", "must not be negative")
	}
	opts = append(opts, producer.RetryLimit(retries))

	if b.Logger != nil {
		opts = append(opts, producer.Logger(b.Logger))
	}

	if b.Observer != nil {
		opts = append(opts, producer.Observe(b.Observer))
	}

	return opts, nil
}

func (b *Builder) params(ctx context.Context, f Field, o *options) (producer.Params, error) {
	switch f.Type {
	case "numbers":
		return numbersParams(o)
	case "set":
		return setParams(o)
	case "ids":
		return idsParams(o)
	case "sequence":
		return sequenceParams(o)
	case "strings":
		return b.wordsParams(o)
	case "emails":
		return b.emailsParams(o)
	case "hexcolors":
		return producer.HexColors{}, nil
	case "sample":
		return sampleParams(o)
	case "exec":
		cmd, err := o.String("cmd", "")
		if err != nil {
			return nil, err
		}
		if cmd == "" {
			return nil, fmt.Errorf("field %v: missing option cmd", f.Name)
		}

		if b.Shell == "" {
			if err := CheckCommand(cmd); err != nil {
				return nil, fmt.Errorf("field %v: %w", f.Name, err)
			}
		}

		return producer.Custom{Func: commandFunc(ctx, cmd, b.Shell)}, nil
	}

	return nil, fmt.Errorf("field %v: unknown type %q", f.Name, f.Type)
}

func numbersParams(o *options) (producer.Params, error) {
	var p producer.NumberRange

	r, ok, err := o.Range("range")
	if err != nil {
		return nil, err
	}
	if ok {
		p.Starting, p.Ending = r.First, r.Last
	}

	fractional, err := o.Bool("fractional")
	if err != nil {
		return nil, err
	}

	_, hasDigits := o.field.Options["digits"]
	if hasDigits {
		fractional = true
	}

	digits, err := o.Int("digits", 0)
	if err != nil {
		return nil, err
	}

	switch {
	case digits < 0:
		return nil, o.errorf("digits", "must not be negative, got %d", digits)
	case digits == 0 && hasDigits:
		digits = producer.ZeroDigits
	}

	p.Fractional = fractional
	p.Digits = digits

	return p, nil
}

func setParams(o *options) (producer.Params, error) {
	var (
		p   producer.FromSet
		err error
	)

	p.Items, _, err = o.List("items", "|")
	if err != nil {
		return nil, err
	}

	p.KeepOrder, err = o.Bool("ordered")
	if err != nil {
		return nil, err
	}

	p.Distinct, err = o.Bool("distinct")
	if err != nil {
		return nil, err
	}

	return p, nil
}

func idsParams(o *options) (producer.Params, error) {
	var p producer.IDs

	first, last, ok, err := o.IntRange("length")
	if err != nil {
		return nil, err
	}
	if ok {
		p.MinLength, p.MaxLength = first, last
	}

	chars, _, err := o.Strings("chars", "+")
	if err != nil {
		return nil, err
	}
	for _, c := range chars {
		p.Charsets = append(p.Charsets, producer.Charset(c))
	}

	return p, nil
}

func sequenceParams(o *options) (producer.Params, error) {
	var (
		p   producer.Sequence
		err error
	)

	p.Starting, err = o.Float("start", 0)
	if err != nil {
		return nil, err
	}

	p.Increment, err = o.Float("step", producer.DefaultIncrement)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (b *Builder) wordsParams(o *options) (producer.Params, error) {
	var p producer.Words

	first, last, ok, err := o.IntRange("words")
	if err != nil {
		return nil, err
	}
	if ok {
		p.MinWords, p.MaxWords = first, last
	}

	p.Lists, err = b.lists(o, "lists")
	if err != nil {
		return nil, err
	}

	p.Separator, err = o.String("sep", "")
	if err != nil {
		return nil, err
	}
	if _, ok := o.field.Options["sep"]; ok && p.Separator == "" {
		p.NoSeparator = true
	}

	return p, nil
}

func (b *Builder) emailsParams(o *options) (producer.Params, error) {
	var p producer.Emails

	first, last, ok, err := o.IntRange("local")
	if err != nil {
		return nil, err
	}
	if ok {
		p.MinLocalWords, p.MaxLocalWords = first, last
	}

	first, last, ok, err = o.IntRange("domain")
	if err != nil {
		return nil, err
	}
	if ok {
		p.MinDomainWords, p.MaxDomainWords = first, last
	}

	p.LocalLists, err = b.lists(o, "lists")
	if err != nil {
		return nil, err
	}

	p.DomainLists, err = b.lists(o, "domains")
	if err != nil {
		return nil, err
	}

	p.TLDs, _, err = o.Strings("tlds", "|")
	if err != nil {
		return nil, err
	}

	return p, nil
}

func sampleParams(o *options) (producer.Params, error) {
	var p producer.Sample

	items, _, err := o.List("items", "|")
	if err != nil {
		return nil, err
	}
	p.Items = items

	first, last, ok, err := o.IntRange("length")
	if err != nil {
		return nil, err
	}
	if ok {
		p.MinLength, p.MaxLength = first, last
	}

	p.KeepOrder, err = o.Bool("ordered")
	if err != nil {
		return nil, err
	}

	p.AllowDuplicates, err = o.Bool("duplicates")
	if err != nil {
		return nil, err
	}

	return p, nil
}

// lists resolves the word list names of the option key.
func (b *Builder) lists(o *options, key string) ([]wordlist.List, error) {
	names, _, err := o.Strings(key, "+")
	if err != nil {
		return nil, err
	}

	var lists []wordlist.List
	for _, name := range names {
		if l, ok := b.Lists[name]; ok {
			lists = append(lists, l)
			continue
		}

		l, err := wordlist.Lookup(name)
		if err != nil {
			return nil, o.errorf(key, "%v", err)
		}
		lists = append(lists, l)
	}

	return lists, nil
}
