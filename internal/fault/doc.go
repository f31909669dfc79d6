// Package fault defines the error taxonomy shared by the organizer engine and
// the CLI.
//
// Errors are tagged with one of the exported sentinels through Wrap so callers
// can classify failures with errors.Is while still reading a message that
// names the component and operation that failed.
package fault
