package pgpass

import "strconv"

// Wildcard is the field value that matches any query value. The password
// field never carries wildcard meaning; a literal "*" password is returned
// as-is.
const Wildcard = "*"

// Entry is one parsed password file line. Field values are stored with
// escape sequences already decoded; Host, Port, Database and User may hold
// Wildcard.
type Entry struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// Matches reports whether the entry applies to the query. Host, database and
// user compare exactly and case-sensitively; the port compares by integer
// value, so an entry port written "05432" still matches query port 5432.
func (e Entry) Matches(q Query) bool {
	return matchField(e.Host, q.Host) &&
		e.matchPort(q.Port) &&
		matchField(e.Database, q.Database) &&
		matchField(e.User, q.User)
}

func (e Entry) matchPort(port int) bool {
	if e.Port == Wildcard {
		return true
	}
	n, err := strconv.Atoi(e.Port)
	return err == nil && n == port
}

func matchField(field, value string) bool {
	if field == Wildcard {
		return true
	}
	return field == value
}
