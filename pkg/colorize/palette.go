package colorize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Palette holds ANSI color indexes ("0" to "255") per token class
type Palette struct {
	Key     string
	String  string
	Number  string
	Boolean string
	Null    string
	// Columns cycle across CSV columns
	Columns []string
}

var colorNames = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"grey":           "8",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// DefaultPalette is blue keys, green strings, cyan numbers, yellow
// booleans and gray null
func DefaultPalette() Palette {
	return Palette{
		Key:     "4",
		String:  "2",
		Number:  "6",
		Boolean: "3",
		Null:    "8",
		Columns: []string{"6", "2", "3", "5", "4", "1", "14", "10", "11", "13"},
	}
}

// ParseColor resolves a color name such as "cyan" or "bright-red", or an
// index from 0 to 255, to an index string
func ParseColor(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	if idx, ok := colorNames[n]; ok {
		return idx, nil
	}
	if i, err := strconv.Atoi(n); err == nil && i >= 0 && i <= 255 {
		return strconv.Itoa(i), nil
	}
	return "", fmt.Errorf("unknown color %q", name)
}

func paint(color, s string, bold bool) string {
	if s == "" {
		return s
	}
	style := termenv.ANSI.String(s)
	if color != "" {
		style = style.Foreground(termenv.ANSI.Color(color))
	}
	if bold {
		style = style.Bold()
	}
	return style.String()
}

func (p Palette) column(i int) string {
	if len(p.Columns) == 0 {
		return ""
	}
	return p.Columns[i%len(p.Columns)]
}

// painter colors JSON tokens with a palette
type painter struct {
	p Palette
}

func (d painter) Key(token string) string    { return paint(d.p.Key, token, false) }
func (d painter) String(token string) string { return paint(d.p.String, token, false) }
func (d painter) Number(token string) string { return paint(d.p.Number, token, false) }
func (d painter) Bool(token string) string   { return paint(d.p.Boolean, token, false) }
func (d painter) Null(token string) string   { return paint(d.p.Null, token, false) }
