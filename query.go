package pgpass

// Defaults applied to zero Query fields, mirroring libpq.
const (
	DefaultHost = "localhost"
	DefaultPort = 5432
)

// Query is the connection tuple a password is looked up for. Values are
// literal; wildcards belong in the file, never in the query.
//
// Zero fields assume the conventional defaults before matching: host
// "localhost", port 5432, user the current operating-system user, database
// the (defaulted) user name.
type Query struct {
	Host     string
	Port     int
	Database string
	User     string
}

// withDefaults fills zero fields. A username that cannot be resolved stays
// empty and then matches wildcard entries only.
func (q Query) withDefaults(env Environment) Query {
	if q.Host == "" {
		q.Host = DefaultHost
	}
	if q.Port == 0 {
		q.Port = DefaultPort
	}
	if q.User == "" && env.Username != nil {
		if name, err := env.Username(); err == nil {
			q.User = name
		}
	}
	if q.Database == "" {
		q.Database = q.User
	}
	return q
}
