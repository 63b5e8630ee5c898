package document

import (
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
)

// Converter moves values between the document model and the plain
// map[string]any form used by the query engine. It remembers which plain
// maps it produced from which objects, so objects that come back
// unchanged keep their original key order.
type Converter struct {
	origins map[uintptr]*Object
	// keeps produced maps reachable so their addresses stay unique
	produced []map[string]any
	rank     map[string]int
}

// NewConverter returns a converter with no remembered objects
func NewConverter() *Converter {
	return &Converter{origins: map[uintptr]*Object{}}
}

// WithKeyOrder sets the order used for keys of maps that did not come
// from a known object. Listed keys come first in the given order and the
// rest follow sorted.
func (c *Converter) WithKeyOrder(keys []string) *Converter {
	c.rank = make(map[string]int, len(keys))
	for i, k := range keys {
		if _, dup := c.rank[k]; !dup {
			c.rank[k] = i
		}
	}
	return c
}

// ToPlain converts with a fresh converter
func ToPlain(v any) any {
	return NewConverter().ToPlain(v)
}

// FromPlain converts with a fresh converter. Map keys come out sorted.
func FromPlain(v any) any {
	return NewConverter().FromPlain(v)
}

// ToPlain converts objects to map[string]any recursively. Undefined
// becomes nil.
func (c *Converter) ToPlain(v any) any {
	switch t := v.(type) {
	case *Object:
		m := make(map[string]any, t.Len())
		t.Range(func(k string, val any) bool {
			m[k] = c.ToPlain(val)
			return true
		})
		c.origins[reflect.ValueOf(m).Pointer()] = t
		c.produced = append(c.produced, m)
		return m
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = c.ToPlain(e)
		}
		return out
	default:
		if IsUndefined(v) {
			return nil
		}
		return v
	}
}

// FromPlain converts plain Go values back into the document model. Maps
// become objects, all numeric kinds become float64 and values with no
// JSON form, such as functions, become Undefined.
func (c *Converter) FromPlain(v any) any {
	switch t := v.(type) {
	case nil, bool, string, float64:
		return v
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return Undefined
		}
		return f
	case *Object:
		out := NewObject()
		t.Range(func(k string, val any) bool {
			out.Set(k, c.FromPlain(val))
			return true
		})
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = c.FromPlain(e)
		}
		return out
	case map[string]any:
		return c.objectFromMap(t)
	}

	if IsUndefined(v) {
		return v
	}
	if f, ok := toFloat(v); ok {
		return f
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = c.FromPlain(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Undefined
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return c.objectFromMap(m)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return c.FromPlain(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}
	return Undefined
}

func (c *Converter) objectFromMap(m map[string]any) *Object {
	var keys []string
	if origin, ok := c.origins[reflect.ValueOf(m).Pointer()]; ok {
		seen := make(map[string]bool, len(m))
		for _, k := range origin.Keys() {
			if _, present := m[k]; present {
				keys = append(keys, k)
				seen[k] = true
			}
		}
		var extra []string
		for k := range m {
			if !seen[k] {
				extra = append(extra, k)
			}
		}
		c.sortKeys(extra)
		keys = append(keys, extra...)
	} else {
		keys = make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		c.sortKeys(keys)
	}

	out := NewObject()
	for _, k := range keys {
		out.Set(k, c.FromPlain(m[k]))
	}
	return out
}

func (c *Converter) sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := c.rank[keys[i]]
		rj, jok := c.rank[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		}
		return keys[i] < keys[j]
	})
}
