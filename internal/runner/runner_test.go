package runner

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func requireSh(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}
	return sh
}

func TestExec_Success(t *testing.T) {
	sh := requireSh(t)

	var live bytes.Buffer
	r := &Exec{Stdout: &live}
	out := <-r.Start(context.Background(), sh, "-c", "echo hello; echo oops >&2")

	if !out.Success() {
		t.Fatalf("expected success, got exit=%d err=%v", out.ExitCode, out.Err)
	}
	if out.Stdout != "hello\n" {
		t.Errorf("Stdout = %q, want %q", out.Stdout, "hello\n")
	}
	if out.Stderr != "oops\n" {
		t.Errorf("Stderr = %q, want %q", out.Stderr, "oops\n")
	}
	if live.String() != "hello\n" {
		t.Errorf("live stdout = %q, want %q", live.String(), "hello\n")
	}
}

func TestExec_NonZeroExit(t *testing.T) {
	sh := requireSh(t)

	out := <-(&Exec{}).Start(context.Background(), sh, "-c", "echo failing >&2; exit 42")

	if out.Err != nil {
		t.Fatalf("unexpected spawn error: %v", out.Err)
	}
	if out.ExitCode != 42 {
		t.Errorf("ExitCode = %d, want 42", out.ExitCode)
	}
	if out.Success() {
		t.Error("Success() = true for exit 42")
	}
	if out.Stderr != "failing\n" {
		t.Errorf("Stderr = %q, want %q", out.Stderr, "failing\n")
	}
}

func TestExec_SpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-binary")

	ch := (&Exec{}).Start(context.Background(), missing)
	out := <-ch

	if out.Err == nil {
		t.Fatal("expected spawn error, got nil")
	}
	if out.Success() {
		t.Error("Success() = true for spawn failure")
	}

	// The channel delivers one value and is then closed.
	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed after the result")
	}
}

func TestExec_Dir(t *testing.T) {
	sh := requireSh(t)
	dir := t.TempDir()

	out := <-(&Exec{Dir: dir}).Start(context.Background(), sh, "-c", "pwd -P")
	if !out.Success() {
		t.Fatalf("expected success, got exit=%d err=%v", out.ExitCode, out.Err)
	}

	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Stdout; got != want+"\n" {
		t.Errorf("pwd = %q, want %q", got, want+"\n")
	}
}

func TestExec_ContextCancel(t *testing.T) {
	sh := requireSh(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sleep runs as a child of the shell and holds the output pipes.
	ch := (&Exec{}).Start(ctx, sh, "-c", "sleep 30; echo done")
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	select {
	case out := <-ch:
		if out.Success() {
			t.Error("expected cancelled process to fail")
		}
		if out.Stdout != "" {
			t.Errorf("Stdout = %q, want empty", out.Stdout)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("cancellation took %v to surface", elapsed)
		}
	case <-time.After(WaitDelay + time.Second):
		t.Fatal("cancelled process did not finish")
	}
}
