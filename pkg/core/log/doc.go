// Package log provides structured logging for the truckdef toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Implements a small structured logging system with log levels,
//              contextual fields and pluggable output formats. Parser
//              components receive a *Logger through their Options struct and
//              attach a "component" field so log output can be traced back to
//              the producing subsystem.
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelInfo).
//		WithField("component", "rig-parser")
//
//	logger.Info("parsing finished", log.Fields{
//		"file":  "mytruck.truck",
//		"lines": 1024,
//	})
package log
