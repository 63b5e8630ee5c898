package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONKeepsKeyOrder(t *testing.T) {
	v, err := ParseJSON(`{"zeta":1,"alpha":{"y":true,"x":null},"mid":[1,"two",3.5]}`)
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	alpha, _ := obj.Get("alpha")
	assert.Equal(t, []string{"y", "x"}, alpha.(*Object).Keys())

	mid, _ := obj.Get("mid")
	assert.Equal(t, []any{1.0, "two", 3.5}, mid)
}

func TestParseJSONScalars(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`"hello"`, "hello"},
		{`42`, 42.0},
		{` -1.5e3 `, -1500.0},
		{`true`, true},
		{`null`, nil},
		{`[]`, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantOffset int64
	}{
		{name: "missing comma", in: `{"a":1 "b":2}`, wantOffset: 7},
		{name: "trailing value", in: `{"a":1} {"b":2}`, wantOffset: 8},
		{name: "truncated", in: `{"a":`, wantOffset: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(tt.in)
			require.Error(t, err)

			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr))
			assert.Equal(t, tt.wantOffset, synErr.Offset)
			assert.NotEmpty(t, synErr.Msg)
		})
	}

	_, err := ParseJSON(`[1, 2`)
	assert.EqualError(t, err, "unexpected end of JSON input")
}

func TestStringify(t *testing.T) {
	doc, err := ParseJSON(`{"name":"Alice","tags":["a","b"],"empty":{},"none":[],"n":null,"ok":true,"age":30}`)
	require.NoError(t, err)

	compact, err := Stringify(doc, "")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Alice","tags":["a","b"],"empty":{},"none":[],"n":null,"ok":true,"age":30}`, compact)

	pretty, err := Stringify(doc, "  ")
	require.NoError(t, err)
	want := `{
  "name": "Alice",
  "tags": [
    "a",
    "b"
  ],
  "empty": {},
  "none": [],
  "n": null,
  "ok": true,
  "age": 30
}`
	assert.Equal(t, want, pretty)
}

func TestStringifyUndefined(t *testing.T) {
	out, err := Stringify(Undefined, "  ")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	obj := NewObject()
	obj.Set("gone", Undefined)
	obj.Set("kept", 1.0)
	out, err = Stringify(obj, "")
	require.NoError(t, err)
	assert.Equal(t, `{"kept":1}`, out)

	only := NewObject()
	only.Set("gone", Undefined)
	out, err = Stringify(only, "  ")
	require.NoError(t, err)
	assert.Equal(t, `{}`, out)

	out, err = Stringify([]any{1.0, Undefined}, "")
	require.NoError(t, err)
	assert.Equal(t, `[1,null]`, out)
}

func TestStringifyEscaping(t *testing.T) {
	out, err := Stringify("<a href=\"x\">&\n\t", "")
	require.NoError(t, err)
	assert.Equal(t, `"<a href=\"x\">&\n\t"`, out)
}

func TestStringifyPlainMapSortsKeys(t *testing.T) {
	out, err := Stringify(map[string]any{"b": 1, "a": int64(2)}, "")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1}`, out)
}

func TestStringifyRejectsUnknownTypes(t *testing.T) {
	_, err := Stringify(struct{}{}, "")
	assert.Error(t, err)
}

func TestStringifyRoundTrip(t *testing.T) {
	inputs := []string{
		`{"b":1,"a":[true,false,null],"c":{"z":"x","y":-0.5}}`,
		`[{"id":1},{"id":2}]`,
		`"just a string"`,
		`1e+21`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v, err := ParseJSON(in)
			require.NoError(t, err)
			out, err := Stringify(v, "")
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}
