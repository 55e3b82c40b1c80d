// Package hugo inspects the Hugo binary the blog is built with.
package hugo

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/hugopost/hugopost/internal/runner"
)

// Binary is the executable name looked up on PATH.
const Binary = "hugo"

var versionPattern = regexp.MustCompile(`v(\d+\.\d+\.\d+(?:-[0-9A-Za-z.]+)?)`)

// ParseVersion extracts the version from `hugo version` output, e.g.
// "hugo v0.125.4-cc3574ef+extended linux/amd64 BuildDate=...".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	// Hugo appends the commit hash after a dash; it is not a prerelease.
	core, _, _ := strings.Cut(m[1], "-")
	return semver.NewVersion(core)
}

// Installed runs `hugo version` and returns the parsed version.
func Installed(ctx context.Context, r runner.Runner) (*semver.Version, error) {
	bin, err := exec.LookPath(Binary)
	if err != nil {
		return nil, fmt.Errorf("hugo not found on PATH: %w", err)
	}

	out := <-r.Start(ctx, bin, "version")
	if out.Err != nil {
		return nil, out.Err
	}
	if out.ExitCode != 0 {
		return nil, fmt.Errorf("hugo version exited with code %d: %s", out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return ParseVersion(out.Stdout)
}

// SatisfiesMinimum reports whether v is at least min. A leading "v" on min is
// tolerated.
func SatisfiesMinimum(v *semver.Version, min string) (bool, error) {
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(min, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return c.Check(v), nil
}
