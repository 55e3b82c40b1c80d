// Package stamp derives the names a new post is filed under from a moment in
// time: the bundle folder name and the ISO-8601 date written to front matter.
package stamp

import (
	"fmt"
	"time"
)

// Offset is appended to every ISO date. It is a fixed publishing rule and is
// never derived from the host timezone.
const Offset = "+08:00"

const folderLayout = "2006-01-02_150405"

// Clock returns the current wall-clock time.
type Clock func() time.Time

// FolderName formats now as YYYY-MM-DD_HHMMSS.
func FolderName(now time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d_%02d%02d%02d",
		now.Year(), int(now.Month()), now.Day(),
		now.Hour(), now.Minute(), now.Second())
}

// ISODate formats the wall-clock fields of now as YYYY-MM-DDTHH:MM:SS+08:00.
// The fields are used as-is; now is not converted to UTC+8 first.
func ISODate(now time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		now.Year(), int(now.Month()), now.Day(),
		now.Hour(), now.Minute(), now.Second(), Offset)
}

// ParseFolderName reports whether name is a folder name produced by
// FolderName and, if so, the local time it encodes.
func ParseFolderName(name string) (time.Time, bool) {
	if len(name) != len(folderLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(folderLayout, name, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
