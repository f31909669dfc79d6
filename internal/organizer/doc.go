// Package organizer relocates files into folders named after their extension.
//
// The engine snapshots the candidate files under a target (Walk), derives a
// label for each one (Classify), picks the label folder according to the
// placement policy, and hands the move to a Relocator which asks a Resolver for
// a destination that does not collide with anything already on disk. Dry runs
// follow the same path but never touch the filesystem; the resolver reserves
// every simulated destination so previews match what a real run would do.
//
// A failed move is recorded on the Result and the run continues unless
// Options.StopOnError is set. Errors are tagged with the fault sentinels so the
// CLI can classify them.
package organizer
