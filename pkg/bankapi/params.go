package bankapi

import (
	"time"
)

// Opt is an optional value. The zero value is absent.
type Opt[T any] struct {
	value   T
	present bool
}

// Some returns a present optional holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, present: true}
}

// None returns an absent optional.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsSet reports whether the value is present.
func (o Opt[T]) IsSet() bool {
	return o.present
}

// OrElse returns the value when present, otherwise fallback.
func (o Opt[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// WireValue implements Valuer.
func (o Opt[T]) WireValue() (any, bool) {
	if !o.present {
		return nil, false
	}

	return o.value, true
}

// Valuer is implemented by every parameter value that may be absent.
type Valuer interface {
	WireValue() (any, bool)
}

// TimeRange filters a timestamp attribute. Bounds that are not set are omitted.
type TimeRange struct {
	After      Opt[time.Time]
	Before     Opt[time.Time]
	OnOrAfter  Opt[time.Time]
	OnOrBefore Opt[time.Time]
}

// WireValue implements Valuer. A range without any bound is absent.
func (r TimeRange) WireValue() (any, bool) {
	out := make(map[string]any, 4)

	for key, bound := range map[string]Opt[time.Time]{
		"after":        r.After,
		"before":       r.Before,
		"on_or_after":  r.OnOrAfter,
		"on_or_before": r.OnOrBefore,
	} {
		if v, ok := bound.Get(); ok {
			out[key] = v
		}
	}

	if len(out) == 0 {
		return nil, false
	}

	return out, true
}

// EnumFilter restricts an enum-valued attribute to a set of values.
type EnumFilter[E ~string] struct {
	In []E
}

// In builds an EnumFilter matching any of values.
func In[E ~string](values ...E) EnumFilter[E] {
	return EnumFilter[E]{In: values}
}

// WireValue implements Valuer. An empty filter is absent.
func (f EnumFilter[E]) WireValue() (any, bool) {
	if len(f.In) == 0 {
		return nil, false
	}

	values := make([]string, len(f.In))
	for i, v := range f.In {
		values[i] = string(v)
	}

	return map[string]any{"in": values}, true
}

// Field is one named convenience parameter.
type Field struct {
	Name  string
	Value Valuer
}

// NewField pairs a convenience name with its value.
func NewField(name string, value Valuer) Field {
	return Field{Name: name, Value: value}
}

// Fielder is implemented by every parameter struct.
type Fielder interface {
	Fields() []Field
}

// KeyMap maps convenience parameter names to wire-format keys.
type KeyMap map[string]string

// WireName returns the wire key for name. Unmapped names pass through verbatim.
func (m KeyMap) WireName(name string) string {
	if wire, ok := m[name]; ok {
		return wire
	}

	return name
}

// Normalize returns the present fields of src keyed by their wire names.
// A nil src yields an empty mapping.
func (m KeyMap) Normalize(src Fielder) Params {
	out := Params{}
	if src == nil {
		return out
	}

	for _, field := range src.Fields() {
		if field.Value == nil {
			continue
		}

		value, ok := field.Value.WireValue()
		if !ok {
			continue
		}

		out[m.WireName(field.Name)] = value
	}

	return out
}

// NoParams is used by operations that take no parameters.
type NoParams struct{}

// Fields implements Fielder.
func (*NoParams) Fields() []Field {
	return nil
}
