// Package logstyle demonstrates how Go programs have written log lines:
// printf prose through package log, the hand-rolled key=value folk
// convention, log/slog with swappable handlers, and the handler
// ecosystem slog opened up.
package logstyle

import "time"

// The three events every rendition logs.
const (
	eventStart    = "service starting"
	eventLookup   = "user lookup failed"
	eventShutdown = "service stopping"
)

// Fixed field values keep the renditions comparable line for line.
const (
	componentName = "directory"
	lookupUserID  = 999
	sampleUptime  = 4*time.Minute + 2*time.Second
)
