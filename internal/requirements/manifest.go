package requirements

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
)

// FormatManifest renders names one per line, each newline terminated.
func FormatManifest(names []string) []byte {
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString(n)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// WriteManifest writes names to path, truncating previous content.
func WriteManifest(fsys system.FileSystem, path string, names []string) error {
	if err := fsys.WriteFile(path, FormatManifest(names), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadManifest returns the non-empty lines of the manifest at path.
func ReadManifest(fsys system.FileSystem, path string) ([]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}
