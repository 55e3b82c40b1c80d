package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// WaitDelay bounds how long Wait blocks on output pipes after the process
// has been killed.
const WaitDelay = 2 * time.Second

// Runner starts a process and returns a channel that receives exactly one
// Output when it has finished, then is closed.
type Runner interface {
	Start(ctx context.Context, name string, args ...string) <-chan *Output
}

// Output captures the result of a process execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// Err is set when the process could not be started or waited on.
	// A non-zero exit is reported through ExitCode only.
	Err error
}

// Success reports whether the process ran and exited with status zero.
func (o *Output) Success() bool {
	return o.Err == nil && o.ExitCode == 0
}

// Exec runs commands on the host with os/exec.
type Exec struct {
	// Dir is the working directory; empty means the current one.
	Dir string
	// Stdout and Stderr, when set, receive a live copy of the output.
	Stdout io.Writer
	Stderr io.Writer
}

// Start launches name with args. Cancelling ctx kills the process and, on
// unix, every process in its group.
func (e *Exec) Start(ctx context.Context, name string, args ...string) <-chan *Output {
	done := make(chan *Output, 1)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Running user-configured scripts is the point
	cmd.Dir = e.Dir
	cmd.WaitDelay = WaitDelay
	setProcessGroup(cmd)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(&stdoutBuf, e.Stdout)
	cmd.Stderr = tee(&stderrBuf, e.Stderr)

	if err := cmd.Start(); err != nil {
		done <- &Output{ExitCode: -1, Err: fmt.Errorf("starting %s: %w", name, err)}
		close(done)
		return done
	}

	go func() {
		defer close(done)
		err := cmd.Wait()

		out := &Output{
			Stdout: stdoutBuf.String(),
			Stderr: stderrBuf.String(),
		}
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				out.ExitCode = exitErr.ExitCode()
			} else {
				out.ExitCode = -1
				out.Err = fmt.Errorf("waiting for %s: %w", name, err)
			}
		}
		done <- out
	}()

	return done
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
