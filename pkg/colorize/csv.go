package colorize

import "strings"

// CSV colors serialized CSV by column, cycling through the palette
// columns, and bolds the header row. Quote state carries across lines so
// a quoted field containing a newline stays one field.
func CSV(text string, p Palette) string {
	var b strings.Builder
	b.Grow(len(text) * 2)

	row, col, start := 0, 0, 0
	inQuotes := false
	flush := func(end int) {
		b.WriteString(csvField(text[start:end], p.column(col), row == 0))
	}

	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			flush(i)
			b.WriteByte(',')
			col++
			start = i + 1
		case c == '\n' && !inQuotes:
			flush(i)
			b.WriteByte('\n')
			row++
			col = 0
			start = i + 1
		}
	}
	flush(len(text))
	return b.String()
}

func csvField(field, color string, bold bool) string {
	if len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"' {
		return `"` + paint(color, field[1:len(field)-1], bold) + `"`
	}
	return paint(color, field, bold)
}
