package pgpass

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Parse reads password file lines from r, preserving file order. Blank lines
// and lines starting with '#' are ignored. A line that does not split into
// exactly five fields, or whose port field is neither an integer nor the
// wildcard, is recorded as skipped and parsing continues; only read failures
// are errors.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		// The scanner strips the line terminator, CRLF included; anything
		// left is content.
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		e, ok := parseLine(line)
		if !ok {
			f.Skipped = append(f.Skipped, n)
			continue
		}
		f.Entries = append(f.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read password file: %w", err)
	}
	return f, nil
}

// Load parses the password file at path. A missing file yields an empty File
// and no error: an absent password file just means nothing is configured.
// Any other open or read failure is an error.
func Load(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("open password file: %w", err)
	}
	defer fp.Close()

	return Parse(fp)
}

func parseLine(line string) (Entry, bool) {
	fields := splitFields(line)
	if len(fields) != 5 {
		return Entry{}, false
	}
	e := Entry{
		Host:     fields[0],
		Port:     fields[1],
		Database: fields[2],
		User:     fields[3],
		Password: fields[4],
	}
	if e.Port != Wildcard {
		if _, err := strconv.Atoi(e.Port); err != nil {
			return Entry{}, false
		}
	}
	return e, true
}

// splitFields splits a line on unescaped ':' runes. A backslash makes the
// following rune literal, so `\:` lands inside a field and `\\` decodes to a
// single backslash. A trailing lone backslash is dropped.
func splitFields(s string) []string {
	fields := make([]string, 0, 5)
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case esc:
			b.WriteRune(r)
			esc = false
		case r == '\\':
			esc = true
		case r == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(fields, b.String())
}
