package flight

import "encoding/json"

// Frame is one tick of output. It is the sole contract the display layer
// depends on.
type Frame struct {
	Time          float64
	Position      Position
	ControlState  ControlState
	MotorCommands MotorCommands
}

type frameJSON struct {
	Time          float64    `json:"time"`
	Position      [3]float64 `json:"position"`
	ControlState  [4]float64 `json:"control_state"`
	MotorCommands [4]int32   `json:"motor_commands"`
}

// MarshalJSON encodes the frame with fixed-order vectors:
// position as [lat, lon, alt], control_state as [roll, pitch, yaw, thrust]
// and motor_commands as [m1, m2, m3, m4].
func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(frameJSON{
		Time:          f.Time,
		Position:      f.Position.Array(),
		ControlState:  f.ControlState.Array(),
		MotorCommands: f.MotorCommands,
	})
}

func (f *Frame) UnmarshalJSON(data []byte) error {
	var w frameJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	f.Time = w.Time
	f.Position = Position{Lat: w.Position[0], Lon: w.Position[1], Alt: w.Position[2]}
	f.ControlState = ControlStateFrom(Axes(w.ControlState))
	f.MotorCommands = w.MotorCommands
	return nil
}
