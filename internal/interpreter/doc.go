// Package interpreter locates the host Python interpreter and runs its
// environment-management sub-commands.
//
// Every operation goes through a system.CommandExecutor so tests can
// substitute system.MockExecutor:
//
//	py, err := interpreter.Resolve(argv, system.DefaultExecutor())
//	py.CreateVenv(ctx, ".venv", "demo")          // python -m venv .venv --prompt demo
//	py.InstallRequirements(ctx, "requirements.txt", interpreter.PipOptions{})
//	std, err := py.StandardModules(ctx)          // pkgutil + sys.builtin_module_names
//
// Resolution order: the configured command (shell-split by the config
// package), then python3 and python on PATH (python and py on Windows).
package interpreter
