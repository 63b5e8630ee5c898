// pkg/formats/output/output_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify each serializer, raw and color modes, and error cases

package output

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
	"github.com/arthur-debert/jt/pkg/formats/input"
	"github.com/arthur-debert/jt/pkg/types"
)

func mustJSON(t *testing.T, s string) any {
	t.Helper()
	v, err := document.ParseJSON(s)
	require.NoError(t, err)
	return v
}

func colored() Options {
	return Options{Color: true, Palette: colorize.DefaultPalette()}
}

func TestUndefinedIsEmptyForEveryFormat(t *testing.T) {
	for _, f := range types.OutputFormats {
		for _, opts := range []Options{{}, {Compact: true, RawString: true}, colored()} {
			t.Run(f.String(), func(t *testing.T) {
				got, err := Format(document.Undefined, f, opts)
				require.NoError(t, err)
				assert.Equal(t, "", got)
			})
		}
	}
}

func TestFormatRejectsUnknownFormat(t *testing.T) {
	_, err := Format(1.0, types.OutputFormat("xml"), Options{})
	require.Error(t, err)
	jtErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidOutputFormat, jtErr.Code)
	assert.Equal(t, "Format: xml", jtErr.Detail)
}

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts Options
		want string
	}{
		{name: "pretty", data: `{"name":"Alice","age":30}`, want: "{\n  \"name\": \"Alice\",\n  \"age\": 30\n}"},
		{name: "compact", data: `{"name":"Alice","age":30}`, opts: Options{Compact: true}, want: `{"name":"Alice","age":30}`},
		{name: "string", data: `"Alice"`, want: `"Alice"`},
		{name: "raw string", data: `"Alice"`, opts: Options{RawString: true}, want: `Alice`},
		{name: "raw number", data: `42`, opts: Options{RawString: true}, want: `42`},
		{name: "raw boolean", data: `true`, opts: Options{RawString: true}, want: `true`},
		{name: "raw null", data: `null`, opts: Options{RawString: true}, want: `null`},
		{name: "raw has no effect on objects", data: `{"a":"b"}`, opts: Options{RawString: true, Compact: true}, want: `{"a":"b"}`},
		{name: "raw keeps newlines", data: `"line1\nline2"`, opts: Options{RawString: true}, want: "line1\nline2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatJSON(mustJSON(t, tt.data), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatJSONColorOnlyAddsEscapes(t *testing.T) {
	data := mustJSON(t, `{"name":"Alice","tags":["a",1,true,null]}`)
	for _, compact := range []bool{false, true} {
		plainOpts := Options{Compact: compact}
		colorOpts := colored()
		colorOpts.Compact = compact

		plain, err := FormatJSON(data, plainOpts)
		require.NoError(t, err)
		withColor, err := FormatJSON(data, colorOpts)
		require.NoError(t, err)

		assert.NotEqual(t, plain, withColor)
		assert.Equal(t, plain, ansi.Strip(withColor))
	}
}

func TestFormatJSONRawColored(t *testing.T) {
	opts := colored()
	opts.RawString = true
	got, err := FormatJSON("hello", opts)
	require.NoError(t, err)
	assert.Equal(t, "hello", ansi.Strip(got))
	assert.Contains(t, got, "\x1b[32m")
}

func TestFormatJSONLines(t *testing.T) {
	tests := []struct {
		name string
		data any
		opts Options
		want string
	}{
		{name: "array elements per line", data: mustJSON(t, `[{"id":1},{"id":2}]`), want: "{\"id\":1}\n{\"id\":2}"},
		{name: "single object", data: mustJSON(t, `{"id":1}`), want: `{"id":1}`},
		{name: "undefined elements skipped", data: []any{1.0, document.Undefined, 2.0}, want: "1\n2"},
		{name: "empty array", data: []any{}, want: ""},
		{name: "raw strings per element", data: []any{"a", "b", 3.0}, opts: Options{RawString: true}, want: "a\nb\n3"},
		{name: "raw leaves objects alone", data: mustJSON(t, `[{"a":"x"},"y"]`), opts: Options{RawString: true}, want: "{\"a\":\"x\"}\ny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatJSONLines(tt.data, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatJSONLinesColored(t *testing.T) {
	got, err := FormatJSONLines(mustJSON(t, `[{"id":1},{"id":2}]`), colored())
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":1}\n{\"id\":2}", ansi.Strip(got))
}

func TestFormatYAML(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "mapping keeps order", data: `{"name":"Alice","age":30}`, want: "name: Alice\nage: 30\n"},
		{name: "nested list", data: `{"items":["a","b"]}`, want: "items:\n  - a\n  - b\n"},
		{name: "nested mapping", data: `{"user":{"id":1,"ok":true,"none":null}}`, want: "user:\n  id: 1\n  ok: true\n  none: null\n"},
		{name: "empty collections", data: `{"a":{},"b":[]}`, want: "a: {}\nb: []\n"},
		{name: "scalar", data: `"hello"`, want: "hello\n"},
		{name: "float", data: `{"pi":3.14}`, want: "pi: 3.14\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatYAML(mustJSON(t, tt.data), Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatYAMLKeepsStringTyping(t *testing.T) {
	data := mustJSON(t, `{"age":"30","flag":"true","empty":"","multi":"a\nb"}`)
	got, err := FormatYAML(data, Options{})
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(got), &back))
	assert.Equal(t, map[string]any{"age": "30", "flag": "true", "empty": "", "multi": "a\nb"}, back)
}

func TestFormatYAMLColored(t *testing.T) {
	data := mustJSON(t, `{"name":"Alice","list":[1,2],"nested":{"x":null}}`)
	plain, err := FormatYAML(data, Options{})
	require.NoError(t, err)
	withColor, err := FormatYAML(data, colored())
	require.NoError(t, err)
	assert.Equal(t, plain, ansi.Strip(withColor))
	assert.NotEqual(t, plain, withColor)
}

func TestFormatCSV(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "simple", data: `[{"name":"Alice","age":30}]`, want: "name,age\nAlice,30"},
		{name: "union of keys", data: `[{"a":1},{"b":2,"a":3}]`, want: "a,b\n1,\n3,2"},
		{name: "quoting", data: `[{"v":"x, y"},{"v":"say \"hi\""},{"v":"two words"},{"v":"tab\there"}]`, want: "v\n\"x, y\"\n\"say \"\"hi\"\"\"\n\"two words\"\n\"tab\there\""},
		{name: "types", data: `[{"s":"x","n":1.5,"b":false,"z":null,"o":{"k":[1]}}]`, want: "s,n,b,z,o\nx,1.5,false,,\"{\"\"k\"\":[1]}\""},
		{name: "empty array", data: `[]`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatCSV(mustJSON(t, tt.data), Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		message string
	}{
		{name: "not an array", data: `{"a":1}`, message: "CSV output requires an array"},
		{name: "scalar", data: `"x"`, message: "CSV output requires an array"},
		{name: "array of scalars", data: `[1,2]`, message: "CSV output requires an array of objects"},
		{name: "nested arrays", data: `[[1]]`, message: "CSV output requires an array of objects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatCSV(mustJSON(t, tt.data), Options{})
			require.Error(t, err)
			jtErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrInvalidOutputFormat, jtErr.Code)
			assert.Equal(t, tt.message, jtErr.Message)
		})
	}
}

func TestFormatCSVColored(t *testing.T) {
	data := mustJSON(t, `[{"name":"Alice Smith","age":30}]`)
	plain, err := FormatCSV(data, Options{})
	require.NoError(t, err)
	withColor, err := FormatCSV(data, colored())
	require.NoError(t, err)
	assert.Equal(t, plain, ansi.Strip(withColor))
	assert.Contains(t, withColor, "\x1b[36;1mname")
}

// Parsing then writing in the same format gives back equivalent data.
func TestIdentityRoundTrip(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		in := "{\n  \"z\": 1,\n  \"a\": [\n    true,\n    null\n  ],\n  \"m\": {\n    \"k\": \"v\"\n  }\n}"
		v, err := input.ParseJSON(in)
		require.NoError(t, err)
		out, err := Format(v, types.OutputJSON, Options{})
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("csv", func(t *testing.T) {
		in := "id,name,score\n2,Bob,007\n1,\"Smith, Alice\",10"
		v, err := input.ParseCSV(in, false)
		require.NoError(t, err)
		out, err := Format(v, types.OutputCSV, Options{})
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("jsonl", func(t *testing.T) {
		in := "{\"id\":1,\"tags\":[\"a\"]}\n{\"id\":2}"
		v, err := input.ParseJSONLines(in)
		require.NoError(t, err)
		out, err := Format(v, types.OutputJSONL, Options{})
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("yaml", func(t *testing.T) {
		in := "name: Alice\nroles:\n  - admin\n  - dev\nactive: true\n"
		v, err := input.ParseYAML(in)
		require.NoError(t, err)
		out, err := Format(v, types.OutputYAML, Options{})
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
