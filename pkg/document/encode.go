package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Decorator wraps serialized tokens as they are written. Every method
// receives the exact token text and must return it with at most some
// added decoration.
type Decorator interface {
	Key(token string) string
	String(token string) string
	Number(token string) string
	Bool(token string) string
	Null(token string) string
}

type plain struct{}

func (plain) Key(s string) string    { return s }
func (plain) String(s string) string { return s }
func (plain) Number(s string) string { return s }
func (plain) Bool(s string) string   { return s }
func (plain) Null(s string) string   { return s }

// Stringify serializes v as JSON. An empty indent gives compact output,
// otherwise each nesting level is indented by indent and members are
// written one per line. Undefined object members are left out, Undefined
// array elements become null and a top-level Undefined yields "".
func Stringify(v any, indent string) (string, error) {
	return StringifyWith(v, indent, plain{})
}

// StringifyWith is Stringify with every token passed through d
func StringifyWith(v any, indent string, d Decorator) (string, error) {
	if IsUndefined(v) {
		return "", nil
	}
	w := &writer{indent: indent, dec: d}
	if err := w.value(v, 0); err != nil {
		return "", err
	}
	return w.buf.String(), nil
}

// Quote returns s as a JSON string literal. HTML characters are not
// escaped.
func Quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

type writer struct {
	buf    strings.Builder
	indent string
	dec    Decorator
}

func (w *writer) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		w.buf.WriteString(w.indent)
	}
}

func (w *writer) value(v any, depth int) error {
	switch t := v.(type) {
	case nil:
		w.buf.WriteString(w.dec.Null("null"))
	case bool:
		if t {
			w.buf.WriteString(w.dec.Bool("true"))
		} else {
			w.buf.WriteString(w.dec.Bool("false"))
		}
	case string:
		w.buf.WriteString(w.dec.String(Quote(t)))
	case *Object:
		return w.object(t, depth)
	case []any:
		return w.array(t, depth)
	case map[string]any:
		return w.object(objectFromMap(t), depth)
	default:
		if IsUndefined(v) {
			w.buf.WriteString(w.dec.Null("null"))
			return nil
		}
		if f, ok := toFloat(v); ok {
			text := FormatNumber(f)
			if text == "null" {
				w.buf.WriteString(w.dec.Null(text))
			} else {
				w.buf.WriteString(w.dec.Number(text))
			}
			return nil
		}
		return fmt.Errorf("cannot serialize value of type %s", reflect.TypeOf(v))
	}
	return nil
}

func (w *writer) object(o *Object, depth int) error {
	first := true
	var err error
	w.buf.WriteByte('{')
	o.Range(func(k string, v any) bool {
		if IsUndefined(v) {
			return true
		}
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		w.newline(depth + 1)
		w.buf.WriteString(w.dec.Key(Quote(k)))
		w.buf.WriteByte(':')
		if w.indent != "" {
			w.buf.WriteByte(' ')
		}
		err = w.value(v, depth+1)
		return err == nil
	})
	if err != nil {
		return err
	}
	if !first {
		w.newline(depth)
	}
	w.buf.WriteByte('}')
	return nil
}

func (w *writer) array(a []any, depth int) error {
	w.buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		w.newline(depth + 1)
		if err := w.value(v, depth+1); err != nil {
			return err
		}
	}
	if len(a) > 0 {
		w.newline(depth)
	}
	w.buf.WriteByte(']')
	return nil
}

func objectFromMap(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := NewObject()
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}
