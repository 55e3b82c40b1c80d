// Package runner starts external commands and reports their completion as a
// single value on a channel: exit code, captured stdout and stderr, or the
// error that kept the process from starting.
package runner
