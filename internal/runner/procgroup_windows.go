//go:build windows

package runner

import "os/exec"

// setProcessGroup keeps the default cancellation, which kills cmd only.
// WaitDelay still bounds how long leftover children can hold the pipes.
func setProcessGroup(cmd *exec.Cmd) {}
