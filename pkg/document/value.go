package document

type undefinedType struct{}

// Undefined is the absent value
var Undefined any = undefinedType{}

// IsUndefined reports whether v is Undefined
func IsUndefined(v any) bool {
	_, ok := v.(undefinedType)
	return ok
}

// IsScalar reports whether v is null, a boolean, a number or a string
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, bool, float64, string:
		return true
	}
	return false
}

// Object is a string keyed map that remembers insertion order
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object
func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// Set stores v under key. A new key is appended, an existing key keeps
// its position.
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the keys in order
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys
func (o *Object) Len() int {
	return len(o.keys)
}

// Range calls fn for each entry in order until fn returns false
func (o *Object) Range(fn func(key string, v any) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}
