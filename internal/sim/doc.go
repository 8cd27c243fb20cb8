// Package sim owns the fixed-step flight-control loop.
//
// Each [Simulator.Tick] runs, in order:
//
//  1. guidance: pick the target and advance the mission
//  2. setpoint: derive desired roll/pitch/yaw/thrust from position error
//  3. PID: compute the control rate and integrate the control state
//  4. mixer: map the control state to four motor PWM commands
//  5. integrator: move the position toward the target
//
// and appends the resulting [flight.Frame] to the run's history.
//
// # Example
//
//	s := sim.New(sim.WithLogger(logger))
//	if _, err := s.Start(params); err != nil {
//		return err
//	}
//	frame, err := s.Tick()
//
// # Thread Safety
//
// Ticks on one Simulator must be serialized by the caller. History,
// Mission and Metrics may be read concurrently with a tick; they return
// snapshots. Independent Simulators share nothing and may run in
// parallel; [Ensemble] does exactly that.
package sim
