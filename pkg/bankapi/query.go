package bankapi

import (
	"fmt"
	"maps"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Params is a normalized request mapping keyed by wire names. Values are
// scalars, string slices or nested Params-like maps for range and enum filters.
type Params map[string]any

// NewParams creates an empty Params.
func NewParams() Params {
	return Params{}
}

// With sets key to value and returns p for chaining.
func (p Params) With(key string, value any) Params {
	p[key] = value

	return p
}

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)

	return out
}

// ToValues serializes p into query values. Nested keys are joined with a dot
// (created_at.after), slices are comma separated and times use RFC 3339.
func (p Params) ToValues() url.Values {
	values := url.Values{}

	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		encodeQueryValue(values, key, p[key])
	}

	return values
}

func encodeQueryValue(values url.Values, key string, value any) {
	switch typed := value.(type) {
	case nil:
		return
	case Params:
		encodeNested(values, key, typed)
	case map[string]any:
		encodeNested(values, key, typed)
	case []string:
		if len(typed) > 0 {
			values.Set(key, strings.Join(typed, ","))
		}
	default:
		values.Set(key, formatScalar(typed))
	}
}

func encodeNested(values url.Values, prefix string, nested map[string]any) {
	keys := make([]string, 0, len(nested))
	for key := range nested {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		encodeQueryValue(values, prefix+"."+key, nested[key])
	}
}

func formatScalar(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case time.Time:
		return typed.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
