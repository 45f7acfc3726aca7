package requirements

import (
	"bufio"
	"errors"
	"io"
	"sort"
	"strings"
)

const (
	importPrefix = "import "
	fromPrefix   = "from "
)

// Candidate extracts the top-level module name from an import-like line.
// It returns false when the line is not an import statement or has no
// second token. A relative import ("from . import x") yields the empty name.
func Candidate(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, importPrefix) && !strings.HasPrefix(line, fromPrefix) {
		return "", false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", false
	}

	name, _, _ := strings.Cut(fields[1], ".")
	return name, true
}

// Scan reads r line by line and returns the sorted, deduplicated module
// names that are not in std. Lines may be of any length.
func Scan(r io.Reader, std StdlibSet) ([]string, error) {
	found := make(map[string]struct{})

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if name, ok := Candidate(strings.TrimSuffix(line, "\n")); ok && !std.Contains(name) {
				found[name] = struct{}{}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(found))
	for n := range found {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
