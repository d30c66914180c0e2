// SPDX-License-Identifier: MIT

package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/sixdeg/builder"
)

// Separator splits the fields of one record line.
const Separator = "|"

// ErrMalformedLine marks a line without two non-empty fields.
var ErrMalformedLine = errors.New("ingest: malformed line")

// LineError describes one skipped input line.
type LineError struct {
	Source string `json:"source,omitempty"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Err    error  `json:"-"`
}

// Error implements error.
func (e LineError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %v: %q", e.Source, e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap exposes the cause for errors.Is.
func (e LineError) Unwrap() error { return e.Err }

// ReadIDNames parses "id|name" lines into an id→name map.
//
// Blank lines are ignored. Lines without two non-empty fields are skipped
// and returned as LineErrors; fields past the second are ignored. A repeated
// id keeps its last name. The error is non-nil only when r fails.
func ReadIDNames(r io.Reader) (map[string]string, []LineError, error) {
	out := make(map[string]string)
	bad, err := scanPairs(r, func(id, name string) { out[id] = name })

	return out, bad, err
}

// ReadMemberships parses "groupID|entityID" lines in input order.
// Malformed lines are skipped as in ReadIDNames.
func ReadMemberships(r io.Reader) ([]builder.Membership, []LineError, error) {
	var out []builder.Membership
	bad, err := scanPairs(r, func(group, entity string) {
		out = append(out, builder.Membership{GroupID: group, EntityID: entity})
	})

	return out, bad, err
}

// scanPairs calls emit for every well-formed line of r.
func scanPairs(r io.Reader, emit func(a, b string)) ([]LineError, error) {
	var bad []LineError
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for n := 1; sc.Scan(); n++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, Separator)
		if len(fields) < 2 {
			bad = append(bad, LineError{Line: n, Text: text, Err: ErrMalformedLine})
			continue
		}
		a, b := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if a == "" || b == "" {
			bad = append(bad, LineError{Line: n, Text: text, Err: ErrMalformedLine})
			continue
		}
		emit(a, b)
	}
	if err := sc.Err(); err != nil {
		return bad, fmt.Errorf("ingest: scan: %w", err)
	}

	return bad, nil
}

// LoadFiles reads the entity, group and membership files into Records.
// Malformed lines from all three files are returned tagged with their path.
func LoadFiles(entities, groups, memberships string) (*builder.Records, []LineError, error) {
	recs := &builder.Records{}
	var bad []LineError

	steps := []struct {
		path string
		read func(io.Reader) ([]LineError, error)
	}{
		{entities, func(r io.Reader) (lines []LineError, err error) {
			recs.Entities, lines, err = ReadIDNames(r)
			return lines, err
		}},
		{groups, func(r io.Reader) (lines []LineError, err error) {
			recs.Groups, lines, err = ReadIDNames(r)
			return lines, err
		}},
		{memberships, func(r io.Reader) (lines []LineError, err error) {
			recs.Memberships, lines, err = ReadMemberships(r)
			return lines, err
		}},
	}
	for _, s := range steps {
		lines, err := readFile(s.path, s.read)
		for i := range lines {
			lines[i].Source = s.path
		}
		bad = append(bad, lines...)
		if err != nil {
			return nil, bad, err
		}
	}

	return recs, bad, nil
}

func readFile(path string, read func(io.Reader) ([]LineError, error)) ([]LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open: %w", err)
	}
	defer f.Close()

	lines, err := read(f)
	if err != nil {
		return lines, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return lines, nil
}
