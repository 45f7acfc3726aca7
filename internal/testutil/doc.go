// Package testutil provides a test environment for exercising pyforage
// commands without a real Python interpreter.
//
// NewTestEnv installs an app.App whose filesystem is the real OS rooted at
// a temporary working directory and whose executor is a
// system.MockExecutor. The mock resolves python3, answers --version and
// reports the stdlib_modules.txt fixture as the standard module listing.
//
//	env := testutil.NewTestEnv(t)
//	defer env.Cleanup()
//	env.WriteFile("main.py", testutil.SampleSource())
//
// Fixtures are embedded from the fixtures directory: TOML configs, a
// sample Python source and interpreter listing output.
package testutil
