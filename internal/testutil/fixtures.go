package testutil

import (
	"embed"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadConfigFixture decodes a pyforage.toml fixture through config.Load.
func LoadConfigFixture(name string) (*config.Config, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	fsys := system.NewMockFS()
	fsys.AddFile("/fixtures/"+name, data, 0644)
	return config.Load(fsys, "/fixtures/"+name)
}

// ValidConfig returns the valid config fixture.
func ValidConfig() (*config.Config, error) {
	return LoadConfigFixture("valid_config.toml")
}

// InvalidConfig returns the invalid config fixture; loading it fails validation.
func InvalidConfig() (*config.Config, error) {
	return LoadConfigFixture("invalid_config.toml")
}

// SampleSource returns a Python source file exercising the import forms
// the extractor recognizes.
func SampleSource() []byte {
	data, _ := LoadFixture("sample_app.py")
	return data
}

// StdlibListing returns interpreter module-listing output, including a
// leaked warning line.
func StdlibListing() []byte {
	data, _ := LoadFixture("stdlib_modules.txt")
	return data
}

// SampleRequirements is the manifest extracted from SampleSource against
// StdlibListing. The relative import contributes the leading empty entry.
var SampleRequirements = []string{"", "flask", "numpy", "requests", "ujson", "yaml"}
