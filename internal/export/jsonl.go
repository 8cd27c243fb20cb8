package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/quadsim/internal/flight"
)

type JSONLinesWriter struct {
	enc *json.Encoder
	err error
}

func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	return &JSONLinesWriter{enc: json.NewEncoder(w)}
}

func (j *JSONLinesWriter) Write(f flight.Frame) error {
	if j.err != nil {
		return j.err
	}
	j.err = j.enc.Encode(f)
	return j.err
}

func (j *JSONLinesWriter) OnFrame(f flight.Frame) {
	_ = j.Write(f)
}

// Err reports the first write error, if any.
func (j *JSONLinesWriter) Err() error {
	return j.err
}

func WriteJSONLines(w io.Writer, frames []flight.Frame) error {
	jw := NewJSONLinesWriter(w)
	for _, f := range frames {
		if err := jw.Write(f); err != nil {
			return err
		}
	}
	return nil
}

func ReadJSONLines(r io.Reader) ([]flight.Frame, error) {
	dec := json.NewDecoder(r)
	frames := make([]flight.Frame, 0)
	for {
		var f flight.Frame
		err := dec.Decode(&f)
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
}
