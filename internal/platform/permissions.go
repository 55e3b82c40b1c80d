package platform

import (
	"fmt"
	"os"
	"runtime"
)

// ScriptPerm is the mode a deploy script is given by MakeExecutable.
const ScriptPerm os.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsExecutable reports whether path is a regular file with an execute bit
// set. On Windows every existing regular file counts, since scripts are run
// through a shell there anyway.
func IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%s is not a regular file", path)
	}
	if runtime.GOOS == "windows" {
		return true, nil
	}
	return info.Mode().Perm()&0111 != 0, nil
}

// MakeExecutable adds execute permission to a script.
func MakeExecutable(path string) error {
	if err := Chmod(path, ScriptPerm); err != nil {
		return fmt.Errorf("making %s executable: %w", path, err)
	}
	return nil
}
