//go:build windows

package pgpass

import "io/fs"

// checkPermissions always passes: Windows has no POSIX mode bits, and the
// profile directory is treated as protected, matching libpq.
func checkPermissions(fs.FileInfo) error {
	return nil
}
