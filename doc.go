// Package pgpass reads the PostgreSQL password file (conventionally
// ~/.pgpass) and answers one question: which password, if any, is configured
// for a given host, port, database and user.
//
// The line format, wildcard rules, first-match-wins precedence and the
// owner-only permission requirement follow the libpq convention. A lookup
// that finds nothing reports ErrNotFound; a missing file, a file with group
// or world access, and a file with no matching line are deliberately
// indistinguishable from one another:
//
//	q := pgpass.Query{Host: "localhost", Port: 5432, Database: "orders", User: "app"}
//	password, err := pgpass.GetPassword(ctx, q)
//	switch {
//	case errors.Is(err, pgpass.ErrNotFound):
//		// no password configured; fall back to other authentication
//	case err != nil:
//		// broken environment (I/O failure), not "no password"
//	}
//
// The file is re-read on every lookup; nothing is cached and nothing is ever
// written.
package pgpass
