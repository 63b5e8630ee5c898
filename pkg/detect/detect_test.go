// pkg/detect/detect_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify format detection order, determinism and extension priority

package detect

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/jt/pkg/types"
)

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		path string
		want types.InputFormat
	}{
		{"data.json", types.InputJSON},
		{"data.yaml", types.InputYAML},
		{"data.yml", types.InputYAML},
		{"data.jsonl", types.InputJSONL},
		{"data.ndjson", types.InputJSONL},
		{"data.csv", types.InputCSV},
		{"DATA.CSV", types.InputCSV},
		{"dir.v2/data.yml", types.InputYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(`{"not":"relevant"}`, tt.path))
		})
	}
}

func TestDetectUnknownExtensionFallsBackToContent(t *testing.T) {
	assert.Equal(t, types.InputYAML, Detect("a: 1", "data.txt"))
	assert.Equal(t, types.InputCSV, Detect("a,b\n1,2", "noext"))
}

func TestDetectByContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    types.InputFormat
	}{
		{name: "json object", content: `{"name":"Alice"}`, want: types.InputJSON},
		{name: "json array", content: `[1,2,3]`, want: types.InputJSON},
		{name: "pretty json", content: "{\n  \"a\": 1,\n  \"b\": 2\n}", want: types.InputJSON},
		{name: "surrounding whitespace", content: "\n\n  {\"a\":1}  \n", want: types.InputJSON},
		{name: "json lines", content: "{\"id\":1}\n{\"id\":2}", want: types.InputJSONL},
		{name: "json lines with arrays and blanks", content: "[1]\n\n  {\"a\":2}\n", want: types.InputJSONL},
		{name: "json lines crlf", content: "{\"id\":1}\r\n{\"id\":2}\r\n", want: types.InputJSONL},
		{name: "csv", content: "name,age\nAlice,30\nBob,25", want: types.InputCSV},
		{name: "csv quoted commas ignored", content: "name,note\nAlice,\"x, y\"", want: types.InputCSV},
		{name: "ragged commas are not csv", content: "a,b\n1,2,3", want: types.InputJSON},
		{name: "yaml mapping", content: "name: Alice\nage: 30", want: types.InputYAML},
		{name: "yaml single pair", content: "name: Alice", want: types.InputYAML},
		{name: "yaml list", content: "- a\n- b", want: types.InputYAML},
		{name: "yaml indentation", content: "root:\n  child", want: types.InputYAML},
		{name: "single line csv", content: "Alice,30", want: types.InputCSV},
		{name: "plain word defaults to json", content: "hello", want: types.InputJSON},
		{name: "empty defaults to json", content: "", want: types.InputJSON},
		{name: "number defaults to json", content: "42", want: types.InputJSON},
		{name: "yaml flow mapping looks like json", content: "{a: 1}", want: types.InputJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.content, ""))
		})
	}
}

func TestFromExtension(t *testing.T) {
	f, ok := FromExtension("x.ndjson")
	assert.True(t, ok)
	assert.Equal(t, types.InputJSONL, f)

	_, ok = FromExtension("x.txt")
	assert.False(t, ok)
	_, ok = FromExtension("")
	assert.False(t, ok)
}

// generateContents builds a mix of well formed and random inputs
func generateContents(n int) []string {
	r := rand.New(rand.NewSource(42))
	alphabet := []string{"{", "}", "[", "]", ",", ":", " ", "\n", "-", "\"", "a", "1", "  ", ": ", "- "}
	contents := []string{
		`{"a":1}`, "a: 1", "a,b\n1,2", "{\"x\":1}\n{\"x\":2}", "", "plain",
	}
	for i := 0; i < n; i++ {
		var b strings.Builder
		for j := 0; j < r.Intn(40); j++ {
			b.WriteString(alphabet[r.Intn(len(alphabet))])
		}
		contents = append(contents, b.String())
	}
	return contents
}

func TestDetectIsDeterministic(t *testing.T) {
	paths := []string{"", "x.json", "x.txt", "x.csv"}
	for _, content := range generateContents(200) {
		for _, path := range paths {
			first := Detect(content, path)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, Detect(content, path), "content %q path %q", content, path)
			}
			assert.True(t, first.IsValid())
		}
	}
}

func TestExtensionAlwaysWins(t *testing.T) {
	canonical := map[types.InputFormat]string{
		types.InputJSON:  ".json",
		types.InputYAML:  ".yaml",
		types.InputJSONL: ".jsonl",
		types.InputCSV:   ".csv",
	}
	for f, ext := range canonical {
		for i, content := range generateContents(100) {
			path := fmt.Sprintf("file%d%s", i, ext)
			assert.Equal(t, f, Detect(content, path), "content %q", content)
		}
	}
}
