// Package deploy runs the site's deployment script and turns its exit status
// into one of two notifications.
package deploy

import (
	"context"
	"fmt"

	"github.com/hugopost/hugopost/internal/notify"
	"github.com/hugopost/hugopost/internal/runner"
	"github.com/sirupsen/logrus"
)

// Notification texts.
const (
	MsgSuccess = "Deploy finished"
	MsgFailure = "Deploy failed, see log output"
)

// ProcessSpawnError means the script could not be started at all.
type ProcessSpawnError struct {
	Script string
	Err    error
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("running deploy script %s: %v", e.Script, e.Err)
}

func (e *ProcessSpawnError) Unwrap() error { return e.Err }

// ProcessExitError means the script ran and exited with a non-zero status.
type ProcessExitError struct {
	Script string
	Code   int
}

func (e *ProcessExitError) Error() string {
	return fmt.Sprintf("deploy script %s exited with code %d", e.Script, e.Code)
}

// Outcome is the terminal state of one deploy.
type Outcome struct {
	Output *runner.Output
	// Err is nil on success, otherwise *ProcessSpawnError or *ProcessExitError.
	Err error
}

// Invoker runs deployment scripts through a shell.
type Invoker struct {
	Runner runner.Runner
	Sink   notify.Sink
	Log    *logrus.Entry
	// Shell is the interpreter the script is handed to, e.g. "bash".
	Shell string
}

// Start runs script asynchronously. The returned channel yields one Outcome
// once the script has finished and the notification has been sent.
func (inv *Invoker) Start(ctx context.Context, script string) <-chan Outcome {
	done := make(chan Outcome, 1)
	log := inv.Log.WithField("script", script)
	log.WithField("shell", inv.Shell).Debug("starting deploy")

	result := inv.Runner.Start(ctx, inv.Shell, script)

	go func() {
		defer close(done)
		out := <-result
		done <- inv.finish(log, script, out)
	}()

	return done
}

// Deploy runs script and waits for its outcome.
func (inv *Invoker) Deploy(ctx context.Context, script string) Outcome {
	return <-inv.Start(ctx, script)
}

func (inv *Invoker) finish(log *logrus.Entry, script string, out *runner.Output) Outcome {
	switch {
	case out.Err != nil:
		err := &ProcessSpawnError{Script: script, Err: out.Err}
		log.WithError(out.Err).Error("deploy script could not be started")
		inv.Sink.Notify(notify.Failure(MsgFailure))
		return Outcome{Output: out, Err: err}

	case out.ExitCode != 0:
		err := &ProcessExitError{Script: script, Code: out.ExitCode}
		log.WithFields(logrus.Fields{
			"exit_code": out.ExitCode,
			"stdout":    out.Stdout,
			"stderr":    out.Stderr,
		}).Error("deploy script failed")
		inv.Sink.Notify(notify.Failure(MsgFailure))
		return Outcome{Output: out, Err: err}
	}

	log.WithField("stdout", out.Stdout).Info("deploy script succeeded")
	inv.Sink.Notify(notify.Success(MsgSuccess))
	return Outcome{Output: out}
}
