package requirements

import (
	"context"
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
)

// StdlibSource provides the standard module names of an interpreter.
type StdlibSource interface {
	StandardModules(ctx context.Context) (StdlibSet, error)
}

// GenerateOptions configures a manifest generation run.
type GenerateOptions struct {
	// Source is the Python file to scan. Empty or missing produces an empty manifest.
	Source string

	// Manifest is the output path.
	Manifest string
}

// Result describes a generated manifest.
type Result struct {
	Source       string
	Manifest     string
	Requirements []string

	// Empty is true when no source was scanned and an empty manifest was written.
	Empty bool
}

// Extractor scans source files through a FileSystem.
type Extractor struct {
	fs     system.FileSystem
	stdlib StdlibSource
}

// NewExtractor creates an Extractor. stdlib is queried once per Generate call.
func NewExtractor(fsys system.FileSystem, stdlib StdlibSource) *Extractor {
	return &Extractor{fs: fsys, stdlib: stdlib}
}

// Extract scans path and returns the external module names it imports.
func (e *Extractor) Extract(path string, std StdlibSet) ([]string, error) {
	f, err := e.fs.Open(path)
	if err != nil {
		return nil, errors.ScanFailed(path, err)
	}
	defer f.Close()

	names, err := Scan(f, std)
	if err != nil {
		return nil, errors.ScanFailed(path, err)
	}
	return names, nil
}

// Generate writes the manifest for opts.Source. When the source is empty or
// does not exist, an empty manifest is written and no error is returned.
func (e *Extractor) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	result := &Result{
		Source:   opts.Source,
		Manifest: opts.Manifest,
	}

	if opts.Source == "" || !e.fs.Exists(opts.Source) {
		logging.Debug("no source to scan, writing empty manifest", "source", opts.Source, "manifest", opts.Manifest)
		result.Empty = true
		if err := WriteManifest(e.fs, opts.Manifest, nil); err != nil {
			return nil, err
		}
		return result, nil
	}

	std, err := e.stdlib.StandardModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine standard modules: %w", err)
	}

	names, err := e.Extract(opts.Source, std)
	if err != nil {
		return nil, err
	}
	logging.Debug("scanned source", "source", opts.Source, "requirements", len(names))

	if err := WriteManifest(e.fs, opts.Manifest, names); err != nil {
		return nil, err
	}

	result.Requirements = names
	return result, nil
}
