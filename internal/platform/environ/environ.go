// Package environ renders the process environment as sorted "NAME VALUE" lines.
//
// The output contains every value verbatim, secrets included.
package environ

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strings"
)

// Entry is a single environment variable.
type Entry struct {
	Name  string
	Value string
}

// Parse converts NAME=VALUE strings, as returned by os.Environ, into entries
// sorted by name. The value is everything after the first '='. Entries with
// an empty name (the Windows "=C:" drive variables) are dropped, and for a
// repeated name the first occurrence wins, matching os.Getenv.
func Parse(environ []string) []Entry {
	entries := make([]Entry, 0, len(environ))
	seen := make(map[string]struct{}, len(environ))
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		entries = append(entries, Entry{Name: name, Value: value})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// Write emits one "NAME VALUE" line per entry and flushes before returning.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.Name + " " + e.Value + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Dump writes the current process environment to w.
func Dump(w io.Writer) error {
	return Write(w, Parse(os.Environ()))
}
