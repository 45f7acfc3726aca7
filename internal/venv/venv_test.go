package venv

import (
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		goos       string
		dir        string
		wantPython string
		wantScript string
		wantCmd    string
	}{
		{"linux", ".venv", ".venv/bin/python", ".venv/bin/activate", "source .venv/bin/activate"},
		{"darwin", "/home/u/demo/.venv", "/home/u/demo/.venv/bin/python", "/home/u/demo/.venv/bin/activate", "source /home/u/demo/.venv/bin/activate"},
		{"windows", ".venv", `.venv\Scripts\python.exe`, `.venv\Scripts\activate`, `.venv\Scripts\activate`},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l := Layout{Dir: tt.dir, GOOS: tt.goos}

			if got := l.Python(); got != tt.wantPython {
				t.Errorf("Python() = %q, want %q", got, tt.wantPython)
			}
			if got := l.ActivateScript(); got != tt.wantScript {
				t.Errorf("ActivateScript() = %q, want %q", got, tt.wantScript)
			}
			if got := l.ActivateCommand(); got != tt.wantCmd {
				t.Errorf("ActivateCommand() = %q, want %q", got, tt.wantCmd)
			}
		})
	}
}

func TestActivateCommandQuotesSpaces(t *testing.T) {
	l := Layout{Dir: "/home/u/my project/.venv", GOOS: "linux"}
	got := l.ActivateCommand()
	if got == "source /home/u/my project/.venv/bin/activate" {
		t.Errorf("ActivateCommand() should quote paths with spaces, got %q", got)
	}
	if !strings.HasPrefix(got, "source ") {
		t.Errorf("ActivateCommand() = %q, want source prefix", got)
	}
}

func TestExistsAndReadConfig(t *testing.T) {
	fsys := system.NewMockFS()
	l := Layout{Dir: "/proj/.venv", GOOS: "linux"}

	if l.Exists(fsys) {
		t.Error("Exists() should be false before pyvenv.cfg is written")
	}

	fsys.AddFile("/proj/.venv/pyvenv.cfg", []byte("home = /usr/bin\ninclude-system-site-packages = false\nversion = 3.12.1\nprompt = demo\n"), 0644)

	if !l.Exists(fsys) {
		t.Error("Exists() should be true")
	}

	cfg, err := l.ReadConfig(fsys)
	if err != nil {
		t.Fatalf("ReadConfig error: %v", err)
	}
	if cfg["version"] != "3.12.1" {
		t.Errorf("version = %q", cfg["version"])
	}
	if cfg["prompt"] != "demo" {
		t.Errorf("prompt = %q", cfg["prompt"])
	}

	if _, err := l.Created(fsys); err != nil {
		t.Errorf("Created error: %v", err)
	}
}

func TestEnviron(t *testing.T) {
	l := Layout{Dir: "/proj/.venv", GOOS: "linux"}
	base := []string{
		"HOME=/home/u",
		"PATH=/usr/bin:/bin",
		"PYTHONHOME=/opt/python",
		"VIRTUAL_ENV=/old/.venv",
	}

	env := l.Environ(base, "demo")

	lookup := make(map[string]string)
	for _, kv := range env {
		k, v, _ := strings.Cut(kv, "=")
		if _, dup := lookup[k]; dup {
			t.Errorf("duplicate variable %s", k)
		}
		lookup[k] = v
	}

	if lookup["PATH"] != "/proj/.venv/bin:/usr/bin:/bin" {
		t.Errorf("PATH = %q", lookup["PATH"])
	}
	if lookup["VIRTUAL_ENV"] != "/proj/.venv" {
		t.Errorf("VIRTUAL_ENV = %q", lookup["VIRTUAL_ENV"])
	}
	if lookup["VIRTUAL_ENV_PROMPT"] != "demo" {
		t.Errorf("VIRTUAL_ENV_PROMPT = %q", lookup["VIRTUAL_ENV_PROMPT"])
	}
	if _, ok := lookup["PYTHONHOME"]; ok {
		t.Error("PYTHONHOME should be removed")
	}
	if lookup["HOME"] != "/home/u" {
		t.Error("unrelated variables should be kept")
	}
}

func TestEnviron_DefaultPrompt(t *testing.T) {
	l := Layout{Dir: "/proj/.venv", GOOS: "linux"}
	env := l.Environ(nil, "")

	want := map[string]bool{
		"VIRTUAL_ENV_PROMPT=.venv": false,
		"PATH=/proj/.venv/bin":     false,
	}
	for _, kv := range env {
		if _, ok := want[kv]; ok {
			want[kv] = true
		}
	}
	for kv, seen := range want {
		if !seen {
			t.Errorf("expected %s in %v", kv, env)
		}
	}
}

func TestShell(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		want  string
	}{
		{"absolute path kept", "/usr/bin/zsh", "/usr/bin/zsh"},
		{"path outside PATH kept", "/run/current-system/sw/bin/fish", "/run/current-system/sw/bin/fish"},
		{"bare name", "fish", "fish"},
		{"unset falls back to bash", "", "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shell(func(string) string { return tt.shell })
			if got != tt.want {
				t.Errorf("Shell() = %q, want %q", got, tt.want)
			}
		})
	}
}
