package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w     io.Writer
	entry *Entry
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(entry *Entry) error {
	e.entry = entry
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	text, err := json.MarshalIndent(e.entry, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
