// Package notify delivers one-line status messages to whoever is watching the
// command: the terminal, the log, or both.
package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Sink accepts a human-readable message. Delivery is fire-and-forget.
type Sink interface {
	Notify(msg string)
}

// Status prefixes used by Success and Failure. Console sinks color on them.
const (
	successMark = "✓ "
	failureMark = "✗ "
)

// Success marks msg as a successful outcome.
func Success(msg string) string { return successMark + msg }

// Failure marks msg as a failed outcome.
func Failure(msg string) string { return failureMark + msg }

// Console writes messages to a terminal, coloring the status mark.
type Console struct {
	W io.Writer
}

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func (c *Console) Notify(msg string) {
	switch {
	case strings.HasPrefix(msg, successMark):
		msg = green(successMark) + strings.TrimPrefix(msg, successMark)
	case strings.HasPrefix(msg, failureMark):
		msg = red(failureMark) + strings.TrimPrefix(msg, failureMark)
	}
	fmt.Fprintln(c.W, msg)
}

// Log records messages on a logrus entry; failures are logged at error level.
type Log struct {
	Entry *logrus.Entry
}

func (l *Log) Notify(msg string) {
	if strings.HasPrefix(msg, failureMark) {
		l.Entry.Error(strings.TrimPrefix(msg, failureMark))
		return
	}
	l.Entry.Info(strings.TrimPrefix(msg, successMark))
}

// Multi fans a message out to every sink in order.
type Multi []Sink

func (m Multi) Notify(msg string) {
	for _, s := range m {
		s.Notify(msg)
	}
}

// Recorder keeps every message it receives.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
