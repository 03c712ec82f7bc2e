package pgpass

import "errors"

// ErrNotFound reports that no password is configured for a query. Callers
// should use errors.Is to match it.
//
// A missing password file, a password file with group or world access, and a
// file with no matching entry all collapse into this one value on purpose:
// credential-consuming code must not be able to tell filesystem details
// apart from "no password configured". An empty password field in a matching
// entry is not this condition; it yields "" with a nil error.
var ErrNotFound = errors.New("password not found")
