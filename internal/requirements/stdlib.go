package requirements

import (
	"bufio"
	"bytes"
	"regexp"
)

// identifierRegex matches a Python identifier made of ASCII characters.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// StdlibSet holds module names considered part of the interpreter distribution.
type StdlibSet map[string]struct{}

// NewStdlibSet builds a set from names.
func NewStdlibSet(names ...string) StdlibSet {
	s := make(StdlibSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is a standard module.
func (s StdlibSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s StdlibSet) Len() int {
	return len(s)
}

// ParseStdlibList parses newline-separated module names as printed by the
// interpreter. Lines that are not identifiers, such as warnings that share
// the output stream, are skipped.
func ParseStdlibList(output []byte) StdlibSet {
	s := make(StdlibSet, 512)
	sc := bufio.NewScanner(bytes.NewReader(output))
	for sc.Scan() {
		name := string(bytes.TrimSpace(sc.Bytes()))
		if identifierRegex.MatchString(name) {
			s[name] = struct{}{}
		}
	}
	return s
}
