// Package envx resolves process-environment facts (home directory, current
// username) with the fallback chains PostgreSQL tooling conventionally uses.
package envx

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"
)

// HomeDir returns the current user's home directory. The environment-provided
// value (HOME on Unix, USERPROFILE on Windows) wins; when the environment does
// not say, the OS user database is consulted.
func HomeDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}

	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if u.HomeDir == "" {
		return "", errors.New("home directory unknown")
	}
	return u.HomeDir, nil
}

// Username returns the current user's name. The OS user database is consulted
// first; when that fails (static binaries on exotic systems, stripped-down
// containers), the conventional environment variables are tried in order.
func Username() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Windows reports DOMAIN\name; matching wants the bare name.
		if i := strings.LastIndexByte(u.Username, '\\'); i >= 0 {
			return u.Username[i+1:], nil
		}
		return u.Username, nil
	}

	for _, key := range []string{"LOGNAME", "USER", "LNAME", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", errors.New("current username unknown")
}
