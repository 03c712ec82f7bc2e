// Package pgxpass feeds passwords from the PostgreSQL password file into pgx
// connection configs.
//
// pgx consults the password file once, while parsing a connection string;
// pools reconnect long after that. The hook installed here re-resolves at
// connect time instead, so rotated file contents apply to every new
// connection, and it honors a caller-built resolver: a custom file location,
// an injected environment, or silenced diagnostics.
//
//	cfg, err := pgxpool.ParseConfig(dsn)
//	if err != nil {
//		return err
//	}
//	pool, err := pgxpool.NewWithConfig(ctx, pgxpass.Configure(cfg, nil))
package pgxpass

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/pgpass"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BeforeConnect returns a hook compatible with pgxpool.Config.BeforeConnect
// that fills in a missing password from the password file. An explicitly
// configured password is never overridden, and a lookup miss leaves the
// config untouched; only I/O failures abort the connection attempt. A nil
// resolver means the default configuration.
func BeforeConnect(r *pgpass.Resolver) func(ctx context.Context, cfg *pgx.ConnConfig) error {
	if r == nil {
		r = pgpass.NewResolver(nil)
	}
	return func(ctx context.Context, cfg *pgx.ConnConfig) error {
		if cfg.Password != "" {
			return nil
		}
		pw, err := r.GetPassword(ctx, queryFromConn(cfg))
		if errors.Is(err, pgpass.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		cfg.Password = pw
		return nil
	}
}

// Configure installs the lookup hook on a pgxpool configuration and returns
// the same config, for chaining with pgxpool.NewWithConfig.
func Configure(cfg *pgxpool.Config, r *pgpass.Resolver) *pgxpool.Config {
	cfg.BeforeConnect = BeforeConnect(r)
	return cfg
}

// queryFromConn maps a connection config onto a lookup query. Socket
// connections (empty, absolute-path or abstract-namespace hosts) match
// password file entries for "localhost", following libpq.
func queryFromConn(cfg *pgx.ConnConfig) pgpass.Query {
	host := cfg.Host
	if host == "" || filepath.IsAbs(host) || strings.HasPrefix(host, "@") {
		host = "localhost"
	}
	return pgpass.Query{
		Host:     host,
		Port:     int(cfg.Port),
		Database: cfg.Database,
		User:     cfg.User,
	}
}
