// Package analysis post-processes recorded flight frames.
//
//   - [AxisSpectrum]: power spectrum of one control axis, for spotting
//     PID ringing and its frequency
//   - [Portrait]: 2D scatter of any two frame quantities rendered as
//     text, e.g. the ground track or roll against pitch
package analysis
