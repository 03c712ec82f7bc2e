package pgxpass

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/pgpass"
	"github.com/dmitrijs2005/pgpass/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func testResolver(t *testing.T, content string) *pgpass.Resolver {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pgpass")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return pgpass.NewResolver(&pgpass.Config{Path: path, Logger: logging.NewNopLogger()})
}

func connConfig(host string, port uint16, db, user string) *pgx.ConnConfig {
	return &pgx.ConnConfig{Config: pgconn.Config{Host: host, Port: port, Database: db, User: user}}
}

func TestBeforeConnect_FillsMissingPassword(t *testing.T) {
	hook := BeforeConnect(testResolver(t, "db1.example.com:5433:orders:app:s3cret\n"))

	cfg := connConfig("db1.example.com", 5433, "orders", "app")
	require.NoError(t, hook(context.Background(), cfg))
	require.Equal(t, "s3cret", cfg.Password)
}

func TestBeforeConnect_KeepsExplicitPassword(t *testing.T) {
	hook := BeforeConnect(testResolver(t, "db1.example.com:5433:orders:app:s3cret\n"))

	cfg := connConfig("db1.example.com", 5433, "orders", "app")
	cfg.Password = "explicit"
	require.NoError(t, hook(context.Background(), cfg))
	require.Equal(t, "explicit", cfg.Password)
}

func TestBeforeConnect_MissLeavesConfigUntouched(t *testing.T) {
	hook := BeforeConnect(testResolver(t, "other.example.com:5432:db:user:pw\n"))

	cfg := connConfig("db1.example.com", 5433, "orders", "app")
	require.NoError(t, hook(context.Background(), cfg))
	require.Empty(t, cfg.Password)
}

func TestBeforeConnect_SocketHostsMatchLocalhost(t *testing.T) {
	hosts := []string{"", "@pgsocket"}
	if runtime.GOOS != "windows" {
		hosts = append(hosts, "/var/run/postgresql")
	}

	for _, host := range hosts {
		hook := BeforeConnect(testResolver(t, "localhost:5432:orders:app:sockpw\n"))

		cfg := connConfig(host, 5432, "orders", "app")
		require.NoError(t, hook(context.Background(), cfg))
		require.Equal(t, "sockpw", cfg.Password, "host %q", host)
	}
}

func TestBeforeConnect_ReadFailurePropagates(t *testing.T) {
	// A directory passes the permission gate once owner-only, then fails on read.
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o700))
	r := pgpass.NewResolver(&pgpass.Config{Path: dir, Logger: logging.NewNopLogger()})
	hook := BeforeConnect(r)

	cfg := connConfig("db1.example.com", 5433, "orders", "app")
	err := hook(context.Background(), cfg)
	require.Error(t, err)
	require.NotErrorIs(t, err, pgpass.ErrNotFound)
	require.Empty(t, cfg.Password)
}

func TestBeforeConnect_NilResolverUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgpass")
	require.NoError(t, os.WriteFile(path, []byte("db9.example.com:5432:d:u:viaenv\n"), 0o600))
	t.Setenv(pgpass.EnvPassfile, path)

	hook := BeforeConnect(nil)
	cfg := connConfig("db9.example.com", 5432, "d", "u")
	require.NoError(t, hook(context.Background(), cfg))
	require.Equal(t, "viaenv", cfg.Password)
}

func TestConfigure_InstallsHookOnPoolConfig(t *testing.T) {
	r := testResolver(t, "db1.example.com:5433:orders:app:pooled\n")

	poolCfg := &pgxpool.Config{ConnConfig: connConfig("db1.example.com", 5433, "orders", "app")}
	got := Configure(poolCfg, r)
	require.Same(t, poolCfg, got)
	require.NotNil(t, poolCfg.BeforeConnect)

	require.NoError(t, poolCfg.BeforeConnect(context.Background(), poolCfg.ConnConfig))
	require.Equal(t, "pooled", poolCfg.ConnConfig.Password)
}
