package query

import (
	"reflect"

	"github.com/blues/jsonata-go/jparse"
)

var (
	objectNodeType = reflect.TypeOf(&jparse.ObjectNode{})
	stringNodeType = reflect.TypeOf(&jparse.StringNode{})
)

// constructorKeys lists the literal keys of every object constructor in
// query, in the order they are written. The engine returns constructed
// objects as Go maps, so this order is the only record of how the query
// laid them out. Keys computed at runtime are not included.
func constructorKeys(query string) []string {
	root, err := jparse.Parse(query)
	if err != nil {
		return nil
	}
	var keys []string
	seen := map[string]bool{}
	walkNodes(reflect.ValueOf(root), map[uintptr]bool{}, func(v reflect.Value) {
		if v.Type() != objectNodeType {
			return
		}
		pairs := v.Elem().FieldByName("Pairs")
		for i := 0; i < pairs.Len(); i++ {
			key := pairs.Index(i).Index(0)
			if key.Kind() == reflect.Interface {
				key = key.Elem()
			}
			if !key.IsValid() || key.Type() != stringNodeType {
				continue
			}
			name := key.Elem().FieldByName("Value").String()
			if !seen[name] {
				seen[name] = true
				keys = append(keys, name)
			}
		}
	})
	return keys
}

// walkNodes visits every pointer reachable from v once, parents first
func walkNodes(v reflect.Value, seen map[uintptr]bool, visit func(reflect.Value)) {
	switch v.Kind() {
	case reflect.Interface:
		if !v.IsNil() {
			walkNodes(v.Elem(), seen, visit)
		}
	case reflect.Pointer:
		if v.IsNil() || seen[v.Pointer()] {
			return
		}
		seen[v.Pointer()] = true
		visit(v)
		walkNodes(v.Elem(), seen, visit)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			walkNodes(v.Field(i), seen, visit)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkNodes(v.Index(i), seen, visit)
		}
	}
}
