// Package debounce collapses bursts of calls into a single invocation
// of the wrapped operation. Every caller inside the quiet window gets
// the same outcome once the window elapses.
package debounce
