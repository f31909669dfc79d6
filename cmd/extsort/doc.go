// Package main hosts the extsort CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, builds the run logger, takes
// the per-target lock and hands validated options to the organizer. Keep the
// commands thin: behaviour belongs in the internal packages.
package main
