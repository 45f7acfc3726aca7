// Package app provides the application context for pyforage.
// It allows dependency injection for testing.
package app
