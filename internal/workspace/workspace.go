// Package workspace opens a freshly written vault file for editing, either in
// the terminal editor or in the Obsidian app.
package workspace

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/hugopost/hugopost/internal/runner"
)

// Workspace opens a file given as a vault-relative, slash-separated path.
type Workspace interface {
	Open(ctx context.Context, relPath string) error
}

// Supported values for the "open" setting.
const (
	KindNone     = "none"
	KindEditor   = "editor"
	KindObsidian = "obsidian"
)

// Nop ignores open requests.
type Nop struct{}

func (Nop) Open(context.Context, string) error { return nil }

// Editor opens files in $EDITOR attached to the current terminal.
type Editor struct {
	Root string
	// Command overrides $EDITOR when set.
	Command string
}

func (e *Editor) Open(ctx context.Context, relPath string) error {
	editor := e.Command
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}

	path := filepath.Join(e.Root, filepath.FromSlash(relPath))
	cmd := exec.CommandContext(ctx, editor, path) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", editor, err)
	}
	return nil
}

// Obsidian asks the desktop app to open a file through its obsidian:// URI.
type Obsidian struct {
	// Vault is the vault name as shown in Obsidian.
	Vault  string
	Runner runner.Runner
}

// URI returns the obsidian://open link for relPath.
func (o *Obsidian) URI(relPath string) string {
	q := url.Values{}
	q.Set("vault", o.Vault)
	q.Set("file", relPath)
	// Obsidian expects %20 rather than + for spaces.
	return "obsidian://open?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

func (o *Obsidian) Open(ctx context.Context, relPath string) error {
	if o.Vault == "" {
		return fmt.Errorf("obsidian vault name is not configured")
	}
	name, args := opener(o.URI(relPath))
	out := <-o.Runner.Start(ctx, name, args...)
	if out.Err != nil {
		return fmt.Errorf("launching obsidian: %w", out.Err)
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("launching obsidian: %s exited with code %d: %s", name, out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return nil
}

// opener returns the platform command that hands a URI to the desktop.
func opener(uri string) (string, []string) {
	switch goruntime.GOOS {
	case "darwin":
		return "open", []string{uri}
	case "windows":
		return "cmd", []string{"/c", "start", "", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

// New builds the workspace selected by kind.
func New(kind, root, vault string, r runner.Runner) (Workspace, error) {
	switch kind {
	case "", KindNone:
		return Nop{}, nil
	case KindEditor:
		return &Editor{Root: root}, nil
	case KindObsidian:
		return &Obsidian{Vault: vault, Runner: r}, nil
	default:
		return nil, fmt.Errorf("unknown open mode %q: supported modes are %q, %q and %q", kind, KindNone, KindEditor, KindObsidian)
	}
}
