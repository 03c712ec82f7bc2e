//go:build !windows

package pgpass

import (
	"errors"
	"io/fs"
)

// checkPermissions enforces the owner-only convention: any group or world
// mode bit makes the file unusable. The error text doubles as the warning
// emitted on the diagnostic channel.
func checkPermissions(fi fs.FileInfo) error {
	if fi.Mode().Perm()&0o077 != 0 {
		return errors.New("password file has group or world access; permissions should be u=rw (0600) or less")
	}
	return nil
}
