// Package flight defines the value types shared by every stage of the
// quadrotor flight-control core:
//
//   - [Position]: a 3D point (lat, lon, alt), also used for waypoints
//   - [ControlState]: the internal roll/pitch/yaw/thrust state
//   - [Gains]: PID gains applied identically to all four axes
//   - [MotorCommands]: four PWM values for an X-configuration quadrotor
//   - [Frame]: one tick of simulation output
//
// All types are plain values. They are validated once when a run starts
// and never re-checked on access.
package flight
