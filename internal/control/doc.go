// Package control turns a guidance target into a desired control-state
// setpoint and drives the vehicle's internal state toward it.
//
//   - [Desired]: line-of-sight setpoint derivation from position error
//   - [PID]: four-axis PID with shared gains and optional integral clamp
//   - [YawLaw]: pluggable desired-yaw strategy ([ZeroYaw] by default)
//
// # Usage
//
//	pid := control.NewPID(flight.Gains{Kp: 1, Kd: 0.1})
//	desired := control.Desired(target.Sub(pos), losGain, yaw)
//	rate := pid.Compute(state, desired, dt)
//	// the caller integrates rate into the control state
//
// PID implements GetParams/SetParam for live tuning.
package control
