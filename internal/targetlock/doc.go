// Package targetlock serializes organize runs against the same directory.
//
// Each target maps to a lock file under the state directory, named after a
// digest of its absolute path, so the organized tree never gains a stray lock
// file. Locks are advisory flock(2)-style locks and vanish with the process.
package targetlock
