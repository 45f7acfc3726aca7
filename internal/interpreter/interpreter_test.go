package interpreter

import (
	"context"
	"fmt"
	goruntime "runtime"
	"strings"
	"testing"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/venv"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "python3,python"},
		{"darwin", "python3,python"},
		{"windows", "python,py"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := strings.Join(Candidates(tt.goos), ","); got != tt.want {
				t.Errorf("Candidates(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestResolve_SearchesPath(t *testing.T) {
	exec := system.NewMockExecutor()
	first := Candidates(goruntime.GOOS)[0]
	exec.AddPath(first, "/usr/bin/"+first)

	py, err := Resolve(nil, exec)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got := py.Command(); len(got) != 1 || got[0] != "/usr/bin/"+first {
		t.Errorf("Command() = %q", got)
	}
}

func TestResolve_FallsBackToSecondCandidate(t *testing.T) {
	exec := system.NewMockExecutor()
	second := Candidates(goruntime.GOOS)[1]
	exec.AddPath(second, "/opt/bin/"+second)

	py, err := Resolve(nil, exec)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got := py.Command()[0]; got != "/opt/bin/"+second {
		t.Errorf("Command()[0] = %q", got)
	}
}

func TestResolve_Configured(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddPath("py", `C:\Windows\py.exe`)
	exec.AddPath("python3", "/usr/bin/python3")

	py, err := Resolve([]string{"py", "-3"}, exec)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got := strings.Join(py.Command(), " "); got != `C:\Windows\py.exe -3` {
		t.Errorf("Command() = %q", got)
	}
}

func TestResolve_NotFound(t *testing.T) {
	tests := []struct {
		name       string
		configured []string
	}{
		{"nothing on path", nil},
		{"configured missing", []string{"python3.99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.configured, system.NewMockExecutor())
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.GetExitCode(err); code != errors.ExitInterpreterNotFound {
				t.Errorf("exit code = %d, want %d", code, errors.ExitInterpreterNotFound)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("python3 --version", []byte("Python 3.12.1\n"), nil)

	v, err := New([]string{"python3"}, exec).Version(context.Background())
	if err != nil {
		t.Fatalf("Version error: %v", err)
	}
	if v != "Python 3.12.1" {
		t.Errorf("Version() = %q", v)
	}
}

func TestStandardModules(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("py -3 -", []byte("os\nsys\n_io\nsetuptools\n"), nil)

	std, err := New([]string{"py", "-3"}, exec).StandardModules(context.Background())
	if err != nil {
		t.Fatalf("StandardModules error: %v", err)
	}
	for _, name := range []string{"os", "sys", "_io", "setuptools"} {
		if !std.Contains(name) {
			t.Errorf("expected %q in set", name)
		}
	}

	cmd, _ := exec.LastCommand()
	if cmd.String() != "py -3 -" {
		t.Errorf("command = %q, want %q", cmd.String(), "py -3 -")
	}
	if !strings.Contains(cmd.Stdin, "pkgutil.iter_modules()") || !strings.Contains(cmd.Stdin, "sys.builtin_module_names") {
		t.Errorf("stdin script should enumerate modules, got:\n%s", cmd.Stdin)
	}
}

func TestStandardModules_Error(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("python3", nil, fmt.Errorf("exit status 1"))

	if _, err := New([]string{"python3"}, exec).StandardModules(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestCreateVenv(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"without prompt", "", "python3 -m venv .venv"},
		{"with prompt", "demo", "python3 -m venv .venv --prompt demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := system.NewMockExecutor()

			if err := New([]string{"python3"}, exec).CreateVenv(context.Background(), ".venv", tt.prompt); err != nil {
				t.Fatalf("CreateVenv error: %v", err)
			}

			cmd, _ := exec.LastCommand()
			if cmd.String() != tt.want {
				t.Errorf("command = %q, want %q", cmd.String(), tt.want)
			}
		})
	}
}

func TestCreateVenv_Error(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("python3 -m venv", nil, fmt.Errorf("exit status 1"))

	err := New([]string{"python3"}, exec).CreateVenv(context.Background(), ".venv", "")
	if code := errors.GetExitCode(err); code != errors.ExitVenvFailed {
		t.Errorf("exit code = %d, want %d", code, errors.ExitVenvFailed)
	}
}

func TestInstallRequirements(t *testing.T) {
	exec := system.NewMockExecutor()
	py := New([]string{".venv/bin/python"}, exec)

	err := py.InstallRequirements(context.Background(), "requirements.txt", PipOptions{
		IndexURL:  "https://pypi.example.com/simple",
		ExtraArgs: []string{"--no-cache-dir"},
	})
	if err != nil {
		t.Fatalf("InstallRequirements error: %v", err)
	}

	want := ".venv/bin/python -m pip install -r requirements.txt --index-url https://pypi.example.com/simple --no-cache-dir"
	cmd, _ := exec.LastCommand()
	if cmd.String() != want {
		t.Errorf("command = %q, want %q", cmd.String(), want)
	}
}

func TestInstallRequirements_Error(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.InteractiveErr = fmt.Errorf("exit status 1")

	err := New([]string{"python3"}, exec).InstallRequirements(context.Background(), "requirements.txt", PipOptions{})
	if code := errors.GetExitCode(err); code != errors.ExitInstallFailed {
		t.Errorf("exit code = %d, want %d", code, errors.ExitInstallFailed)
	}
}

func TestString(t *testing.T) {
	argv := []string{"/opt/my python/bin/python3", "-X", "utf8"}
	py := New(argv, nil)

	split, err := shellquote.Split(py.String())
	if err != nil {
		t.Fatalf("String() %q does not split: %v", py.String(), err)
	}
	if strings.Join(split, "|") != strings.Join(argv, "|") {
		t.Errorf("String() = %q, splits to %q", py.String(), split)
	}
}

func TestForVenv(t *testing.T) {
	layout := venv.Layout{Dir: "/proj/.venv", GOOS: "linux"}
	py := ForVenv(layout, system.NewMockExecutor())

	argv := py.Command()
	if len(argv) != 1 || argv[0] != "/proj/.venv/bin/python" {
		t.Errorf("Command() = %v, want [/proj/.venv/bin/python]", argv)
	}
}
