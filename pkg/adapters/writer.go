package adapters

import "strings"

// ErrorWriter adapts the error stream of out to an io.Writer. Each Write
// becomes one Error call with its trailing newline removed.
func ErrorWriter(out Output) *LineWriter {
	return &LineWriter{emit: out.Error}
}

// LineWriter forwards writes to a line oriented sink
type LineWriter struct {
	emit func(string)
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.emit(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
