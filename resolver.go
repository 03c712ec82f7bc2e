package pgpass

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/pgpass/internal/envx"
	"github.com/dmitrijs2005/pgpass/logging"
)

const (
	// EnvPassfile overrides the password file location when set and non-empty.
	EnvPassfile = "PGPASSFILE"

	// DefaultFileName is the conventional file name inside the home directory.
	DefaultFileName = ".pgpass"
)

// Environment supplies the process-level lookups used during path discovery
// and query defaulting, so a resolver is a function of an explicit
// environment snapshot rather than ambient global state. A nil func means
// that fact is unknown; tests inject stubs instead of mutating the process
// environment.
type Environment struct {
	// Getenv looks up one environment variable, os.Getenv-shaped.
	Getenv func(key string) string

	// HomeDir resolves the current user's home directory.
	HomeDir func() (string, error)

	// Username resolves the current user's name.
	Username func() (string, error)
}

// DefaultEnvironment reads the real process environment and user identity.
func DefaultEnvironment() Environment {
	return Environment{
		Getenv:   os.Getenv,
		HomeDir:  envx.HomeDir,
		Username: envx.Username,
	}
}

// Config holds resolver settings.
//
// Fields:
//   - Path: explicit password file location. When set, discovery via
//     EnvPassfile and the home directory is skipped entirely.
//   - Environment: process lookups for discovery and query defaults.
//   - Logger: diagnostic side-channel for permission warnings and skipped
//     line counts. Passwords and file contents are never logged.
type Config struct {
	Path        string
	Environment Environment
	Logger      logging.Logger
}

// LoadDefaults populates Config with conventional settings: no explicit
// path, the real process environment, and slog's default logger.
func (c *Config) LoadDefaults() {
	c.Path = ""
	c.Environment = DefaultEnvironment()
	c.Logger = logging.NewDefault()
}

// Resolver answers password lookups against the password file. It keeps no
// state between calls: every lookup re-resolves the path and re-reads the
// file, so concurrent use is safe and external edits are always picked up.
type Resolver struct {
	path string
	env  Environment
	log  logging.Logger
}

// NewResolver builds a Resolver from cfg; nil means all defaults. A Config
// with a wholly zero Environment gets the default one, and a nil Logger gets
// the default logger, so callers set only what they need. An Environment
// with some funcs set is taken as-is: its nil members stay unknown.
func NewResolver(cfg *Config) *Resolver {
	def := &Config{}
	def.LoadDefaults()
	if cfg == nil {
		cfg = def
	}

	env := cfg.Environment
	if env.Getenv == nil && env.HomeDir == nil && env.Username == nil {
		env = def.Environment
	}
	log := cfg.Logger
	if log == nil {
		log = def.Logger
	}
	return &Resolver{path: cfg.Path, env: env, log: log}
}

// GetPassword returns the password configured for q, or ErrNotFound when
// nothing is. A missing file, unusable permissions and no matching entry are
// indistinguishable in the result; only unexpected I/O failures surface as
// distinct errors.
func (r *Resolver) GetPassword(ctx context.Context, q Query) (string, error) {
	q = q.withDefaults(r.env)

	path, ok := r.passfilePath()
	if !ok {
		r.log.Debug(ctx, "no password file location could be determined")
		return "", ErrNotFound
	}

	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat password file: %w", err)
	}

	if err := checkPermissions(fi); err != nil {
		r.log.Warn(ctx, err.Error(), "path", path)
		return "", ErrNotFound
	}

	f, err := Load(path)
	if err != nil {
		return "", err
	}
	if len(f.Skipped) > 0 {
		r.log.Debug(ctx, "password file has malformed lines", "path", path, "lines", f.Skipped)
	}

	pw, ok := f.FindPassword(q)
	if !ok {
		return "", ErrNotFound
	}
	return pw, nil
}

// passfilePath picks the password file location: the explicit path wins,
// then EnvPassfile, then DefaultFileName inside the home directory. The
// boolean is false only when no candidate location can be built at all.
func (r *Resolver) passfilePath() (string, bool) {
	if r.path != "" {
		return r.path, true
	}
	if r.env.Getenv != nil {
		if p := r.env.Getenv(EnvPassfile); p != "" {
			return p, true
		}
	}
	if r.env.HomeDir == nil {
		return "", false
	}
	home, err := r.env.HomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, DefaultFileName), true
}

// GetPassword looks up the password for q using the default configuration.
// It is shorthand for NewResolver(nil).GetPassword(ctx, q).
func GetPassword(ctx context.Context, q Query) (string, error) {
	return NewResolver(nil).GetPassword(ctx, q)
}
