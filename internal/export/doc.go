// Package export writes simulation frames for display and analysis
// tools. Both writers can be attached to a running simulator as
// observers, or fed a finished history.
//
// CSV columns:
//
//	time,lat,lon,alt,roll,pitch,yaw,thrust,m1,m2,m3,m4
//
// JSON lines, one frame per line:
//
//	{"time":0.1,"position":[lat,lon,alt],"control_state":[r,p,y,t],"motor_commands":[m1,m2,m3,m4]}
package export
