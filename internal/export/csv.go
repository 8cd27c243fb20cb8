package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/quadsim/internal/flight"
)

var CSVHeader = []string{
	"time",
	"lat", "lon", "alt",
	"roll", "pitch", "yaw", "thrust",
	"m1", "m2", "m3", "m4",
}

type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
	err         error
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (c *CSVWriter) Write(f flight.Frame) error {
	if c.err != nil {
		return c.err
	}
	if !c.wroteHeader {
		if err := c.w.Write(CSVHeader); err != nil {
			c.err = err
			return err
		}
		c.wroteHeader = true
	}

	row := make([]string, 0, len(CSVHeader))
	row = append(row, formatFloat(f.Time))
	for _, v := range f.Position.Array() {
		row = append(row, formatFloat(v))
	}
	for _, v := range f.ControlState.Array() {
		row = append(row, formatFloat(v))
	}
	for _, m := range f.MotorCommands {
		row = append(row, strconv.FormatInt(int64(m), 10))
	}

	if err := c.w.Write(row); err != nil {
		c.err = err
	}
	return c.err
}

// OnFrame lets the writer observe a simulator. The first write error is
// kept and reported by Flush.
func (c *CSVWriter) OnFrame(f flight.Frame) {
	_ = c.Write(f)
}

func (c *CSVWriter) Flush() error {
	c.w.Flush()
	if c.err != nil {
		return c.err
	}
	return c.w.Error()
}

func WriteCSV(w io.Writer, frames []flight.Frame) error {
	cw := NewCSVWriter(w)
	for _, f := range frames {
		if err := cw.Write(f); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// ReadCSV parses frames written by CSVWriter. The header must match
// CSVHeader exactly.
func ReadCSV(r io.Reader) ([]flight.Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return []flight.Frame{}, nil
	}
	if err != nil {
		return nil, err
	}
	for i, name := range CSVHeader {
		if header[i] != name {
			return nil, fmt.Errorf("csv header column %d: got %q, want %q", i, header[i], name)
		}
	}

	frames := make([]flight.Frame, 0)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var vals [8]float64
		for i := range vals {
			vals[i], err = strconv.ParseFloat(rec[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, CSVHeader[i], err)
			}
		}
		var motors flight.MotorCommands
		for i := range motors {
			m, err := strconv.ParseInt(rec[8+i], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, CSVHeader[8+i], err)
			}
			motors[i] = int32(m)
		}

		frames = append(frames, flight.Frame{
			Time:          vals[0],
			Position:      flight.Position{Lat: vals[1], Lon: vals[2], Alt: vals[3]},
			ControlState:  flight.ControlState{Roll: vals[4], Pitch: vals[5], Yaw: vals[6], Thrust: vals[7]},
			MotorCommands: motors,
		})
	}
	return frames, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
