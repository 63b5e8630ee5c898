package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError describes malformed JSON text
type SyntaxError struct {
	Msg string
	// Offset is the byte index of the offending character, or -1 when the
	// input ended early
	Offset int64
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s at position %d", e.Msg, e.Offset)
}

// ParseJSON decodes exactly one JSON value from s, keeping object key
// order. Anything but whitespace after the value is an error.
func ParseJSON(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, syntaxError(err)
	}

	offset := dec.InputOffset()
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, syntaxError(err)
		}
		return nil, &SyntaxError{Msg: "unexpected data after top-level value", Offset: skipSpace(s, offset)}
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string")
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		return f, nil
	default:
		// string, bool or nil
		return t, nil
	}
}

func syntaxError(err error) error {
	var jsonErr *json.SyntaxError
	switch {
	case errors.As(err, &jsonErr):
		return &SyntaxError{Msg: jsonErr.Error(), Offset: jsonErr.Offset}
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return &SyntaxError{Msg: "unexpected end of JSON input", Offset: -1}
	default:
		return &SyntaxError{Msg: err.Error(), Offset: -1}
	}
}

func skipSpace(s string, offset int64) int64 {
	for offset < int64(len(s)) {
		switch s[offset] {
		case ' ', '\t', '\n', '\r':
			offset++
		default:
			return offset
		}
	}
	return offset
}
