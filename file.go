package pgpass

// File is a parsed password file: entries in file order plus the 1-based
// line numbers of malformed lines that were skipped during parsing.
type File struct {
	Entries []Entry
	Skipped []int
}

// FindPassword scans entries in file order and returns the password of the
// first one matching q. File order encodes priority, so a later, more
// specific entry never beats an earlier wildcard one. The boolean
// distinguishes a found empty password from no match.
func (f *File) FindPassword(q Query) (string, bool) {
	if f == nil {
		return "", false
	}
	for _, e := range f.Entries {
		if e.Matches(q) {
			return e.Password, true
		}
	}
	return "", false
}
